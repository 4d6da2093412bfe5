package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
	"github.com/xuri/excelize/v2"
)

// fakeWorkbook is an in-memory Workbook. Bold cells are keyed by row, col.
type fakeWorkbook struct {
	sheets  []string
	rows    [][]models.Cell
	bold    map[[2]int]bool
	rowsErr error
	closed  bool
}

func (w *fakeWorkbook) SheetList() []string { return w.sheets }

func (w *fakeWorkbook) Rows(string) ([][]models.Cell, error) {
	return w.rows, w.rowsErr
}

// StyleIndex encodes bold cells as style 1 and everything else as 0.
func (w *fakeWorkbook) StyleIndex(_ string, col, row int) (int, error) {
	if w.bold[[2]int{row, col}] {
		return 1, nil
	}
	return 0, nil
}

func (w *fakeWorkbook) BoldStyle(idx int) (bool, error) {
	if idx > 1 {
		return false, errors.New("no style table")
	}
	return idx == 1, nil
}

func (w *fakeWorkbook) Close() error {
	w.closed = true
	return nil
}

// boldRows returns a BoldFunc that treats the listed row indexes as bold.
func boldRows(rows ...int) BoldFunc {
	set := make(map[int]bool, len(rows))
	for _, r := range rows {
		set[r] = true
	}
	return func(_ models.Grid, row int) bool {
		return set[row]
	}
}

// saveWorkbook writes an excelize file into a temp dir and reopens it.
func saveWorkbook(t *testing.T, f *excelize.File) *ExcelWorkbook {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	wb, err := OpenWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { wb.Close() })
	return wb
}
