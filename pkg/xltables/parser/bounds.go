package parser

import (
	"fmt"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
	"github.com/xuri/excelize/v2"
)

// Bounds returns the used range of the grid's non-blank cells in A1
// notation, e.g. "A1:D10". It returns "" when the grid holds no values.
func Bounds(grid models.Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(grid.Rows)
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-blank cells.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if models.IsBlank(cell) {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
