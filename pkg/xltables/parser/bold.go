package parser

import "github.com/ukaji3/xltables-go/pkg/xltables/models"

// BoldFunc reports whether a grid row carries bold styling.
type BoldFunc func(grid models.Grid, row int) bool

// NeverBold is the BoldFunc for formats without styling, such as CSV.
func NeverBold(models.Grid, int) bool { return false }

// WorkbookBold returns a BoldFunc resolving cell styles of a workbook sheet.
// Only cells holding a value are inspected. Any lookup failure, including a
// missing style table, counts as not bold.
func WorkbookBold(wb Workbook, sheet string) BoldFunc {
	return func(grid models.Grid, row int) bool {
		if row < 0 || row >= len(grid.Rows) {
			return false
		}
		for col, cell := range grid.Rows[row] {
			if models.IsBlank(cell) {
				continue
			}
			idx, err := wb.StyleIndex(sheet, col, row)
			if err != nil {
				continue
			}
			if bold, err := wb.BoldStyle(idx); err == nil && bold {
				return true
			}
		}
		return false
	}
}
