package parser

import "github.com/ukaji3/xltables-go/pkg/xltables/models"

// UntitledTable is the title given to a table whose bold row starts blank.
const UntitledTable = "Untitled"

type segmentState int

const (
	seekTitle segmentState = iota
	seekHeaders
	collectData
)

// Segment walks classified rows top to bottom and groups them into tables.
//
// A bold, non-empty row opens a table and names it. The next non-empty row
// supplies the headers and every following non-empty row is data until an
// empty row closes the table. A table still open at the end of input is
// kept. classes must come from Classify over the same grid.
func Segment(grid models.Grid, classes []models.RowClass) []models.Table {
	var (
		tables  []models.Table
		current *models.Table
		state   = seekTitle
	)

	for _, class := range classes {
		row := grid.Rows[class.Index]

		switch state {
		case seekTitle:
			if class.IsEmpty || !class.IsBold {
				continue
			}
			current = &models.Table{
				Title:   titleOf(row),
				Headers: []string{},
				Rows:    []models.Row{},
			}
			state = seekHeaders

		case seekHeaders:
			if class.IsEmpty {
				continue
			}
			current.Headers = headersOf(row)
			state = collectData

		case collectData:
			if class.IsEmpty {
				tables = append(tables, *current)
				current = nil
				state = seekTitle
				continue
			}
			current.Rows = append(current.Rows, copyRow(row))
		}
	}

	if current != nil {
		tables = append(tables, *current)
	}
	return tables
}

func titleOf(row models.Row) string {
	if len(row) == 0 || models.IsBlank(row[0]) {
		return UntitledTable
	}
	return models.CellText(row[0])
}

func headersOf(row models.Row) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		headers[i] = models.CellText(cell)
	}
	return headers
}
