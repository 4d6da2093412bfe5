package parser

import "github.com/ukaji3/xltables-go/pkg/xltables/models"

// IsRowEmpty reports whether every cell of the row is null or "".
func IsRowEmpty(row models.Row) bool {
	for _, cell := range row {
		if !models.IsBlank(cell) {
			return false
		}
	}
	return true
}

// Classify annotates every grid row, in order. Empty rows are never bold.
func Classify(grid models.Grid, bold BoldFunc) []models.RowClass {
	if bold == nil {
		bold = NeverBold
	}

	classes := make([]models.RowClass, len(grid.Rows))
	for i, row := range grid.Rows {
		empty := IsRowEmpty(row)
		classes[i] = models.RowClass{
			Index:   i,
			IsEmpty: empty,
			IsBold:  !empty && bold(grid, i),
		}
	}
	return classes
}

// NonEmptyRows returns copies of the rows that are not wholly blank.
func NonEmptyRows(grid models.Grid) []models.Row {
	var rows []models.Row
	for _, row := range grid.Rows {
		if IsRowEmpty(row) {
			continue
		}
		rows = append(rows, copyRow(row))
	}
	return rows
}

func copyRow(row models.Row) models.Row {
	out := make(models.Row, len(row))
	copy(out, row)
	return out
}
