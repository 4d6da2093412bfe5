// Package parser turns spreadsheet files into cell grids and segments the
// grids into tables.
package parser

import (
	"errors"
	"strconv"
	"sync"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("no sheets found")

// Workbook is the spreadsheet decoding collaborator used by the grid loader.
type Workbook interface {
	// SheetList returns sheet names in workbook order.
	SheetList() []string
	// Rows returns the typed cell values of a sheet, starting at A1.
	// Rows may be ragged; an empty result means the sheet has no range.
	Rows(sheet string) ([][]models.Cell, error)
	// StyleIndex returns the style index of a cell (0-based col and row).
	StyleIndex(sheet string, col, row int) (int, error)
	// BoldStyle reports whether the font of a style index is bold.
	BoldStyle(idx int) (bool, error)
	Close() error
}

// ExcelWorkbook is a Workbook backed by excelize.
type ExcelWorkbook struct {
	f *excelize.File

	mu   sync.Mutex
	bold map[int]bool
}

// OpenWorkbook opens a spreadsheet file for reading.
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewExcelWorkbook(f), nil
}

// NewExcelWorkbook wraps an already opened excelize file.
func NewExcelWorkbook(f *excelize.File) *ExcelWorkbook {
	return &ExcelWorkbook{f: f, bold: make(map[int]bool)}
}

// SheetList implements Workbook.
func (w *ExcelWorkbook) SheetList() []string {
	return w.f.GetSheetList()
}

// Rows implements Workbook.
func (w *ExcelWorkbook) Rows(sheet string) ([][]models.Cell, error) {
	raw, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([][]models.Cell, len(raw))
	for rowIdx, row := range raw {
		cells := make([]models.Cell, len(row))
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := w.f.GetCellType(sheet, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = typedValue(cellType, value)
		}
		rows[rowIdx] = cells
	}
	return rows, nil
}

// StyleIndex implements Workbook.
func (w *ExcelWorkbook) StyleIndex(sheet string, col, row int) (int, error) {
	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return 0, err
	}
	return w.f.GetCellStyle(sheet, cellName)
}

// BoldStyle implements Workbook. Results are memoized per style index.
func (w *ExcelWorkbook) BoldStyle(idx int) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if bold, ok := w.bold[idx]; ok {
		return bold, nil
	}
	style, err := w.f.GetStyle(idx)
	if err != nil {
		return false, err
	}
	bold := style != nil && style.Font != nil && style.Font.Bold
	w.bold[idx] = bold
	return bold, nil
}

// Close implements Workbook.
func (w *ExcelWorkbook) Close() error {
	return w.f.Close()
}

// typedValue converts a raw cell value according to its stored type.
// Cells without a type attribute are numbers in SpreadsheetML.
func typedValue(cellType excelize.CellType, value string) models.Cell {
	switch cellType {
	case excelize.CellTypeBool:
		return value == "1" || value == "TRUE" || value == "true"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		return value
	default:
		return value
	}
}
