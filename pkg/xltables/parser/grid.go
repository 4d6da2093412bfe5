package parser

import (
	"fmt"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
)

// LoadGrid reads the first sheet of a workbook into a grid together with
// the bold predicate for its rows.
// It returns ErrNoSheets when the workbook has no sheets and an empty grid
// sentinel when the first sheet has no cells.
func LoadGrid(wb Workbook) (models.Grid, BoldFunc, error) {
	sheets := wb.SheetList()
	if len(sheets) == 0 {
		return models.Grid{}, NeverBold, ErrNoSheets
	}
	sheet := sheets[0]

	rows, err := wb.Rows(sheet)
	if err != nil {
		return models.Grid{}, NeverBold, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return models.EmptyGrid(), NeverBold, nil
	}

	return models.NewGrid(rows), WorkbookBold(wb, sheet), nil
}
