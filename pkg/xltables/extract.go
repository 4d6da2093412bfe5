package xltables

import (
	"context"
	"errors"
	"os"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
	"github.com/ukaji3/xltables-go/pkg/xltables/parser"
)

// Messages carried by empty extraction results.
const (
	MsgNoSheets = "No sheets found in the Excel file"
	MsgEmpty    = "Worksheet is empty"
	MsgNoData   = "No data found in the sheet"
	MsgNoTables = "No tables detected"
)

// ExtractFile runs the extraction pipeline on a file.
// Non-spreadsheet files yield an empty result without error.
func ExtractFile(ctx context.Context, path string, opts Options) (*models.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, NewUnreadableError(path, err)
	}

	switch opts.ResolveKind(path) {
	case KindWorkbook:
		return extractWorkbook(ctx, path)
	case KindCSV:
		grid, err := LoadCSVFile(path)
		if err != nil {
			return nil, err
		}
		return ExtractGrid(ctx, grid, parser.NeverBold)
	default:
		return &models.ExtractionResult{Kind: models.ResultEmpty}, nil
	}
}

func extractWorkbook(ctx context.Context, path string) (*models.ExtractionResult, error) {
	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, NewUnreadableError(path, err)
	}
	defer wb.Close()

	result, err := Extract(ctx, wb)
	if err != nil && ctx.Err() == nil {
		return nil, NewUnreadableError(path, err)
	}
	return result, err
}

// Extract runs the pipeline over the first sheet of an open workbook.
func Extract(ctx context.Context, wb parser.Workbook) (*models.ExtractionResult, error) {
	grid, bold, err := parser.LoadGrid(wb)
	if errors.Is(err, parser.ErrNoSheets) {
		return emptyResult(MsgNoSheets), nil
	}
	if err != nil {
		return nil, err
	}
	return ExtractGrid(ctx, grid, bold)
}

// ExtractGrid segments a loaded grid into tables. When no table is found the
// non-blank rows are returned instead.
func ExtractGrid(ctx context.Context, grid models.Grid, bold parser.BoldFunc) (*models.ExtractionResult, error) {
	if grid.Empty {
		return emptyResult(MsgEmpty), nil
	}

	rows := parser.NonEmptyRows(grid)
	if len(rows) == 0 {
		return emptyResult(MsgNoData), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	usedRange := parser.Bounds(grid)
	tables := parser.Segment(grid, parser.Classify(grid, bold))
	if len(tables) == 0 {
		return &models.ExtractionResult{Kind: models.ResultRows, Rows: rows, Range: usedRange}, nil
	}
	return &models.ExtractionResult{Kind: models.ResultTables, Tables: tables, Range: usedRange}, nil
}

// LoadFileGrid loads the first sheet (or the CSV content) of a file as a
// grid. Non-spreadsheet files fail with ErrUnsupportedType.
func LoadFileGrid(path string, opts Options) (models.Grid, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return models.Grid{}, ErrFileNotFound
		}
		return models.Grid{}, NewUnreadableError(path, err)
	}

	switch opts.ResolveKind(path) {
	case KindWorkbook:
		wb, err := parser.OpenWorkbook(path)
		if err != nil {
			return models.Grid{}, NewUnreadableError(path, err)
		}
		defer wb.Close()

		grid, _, err := parser.LoadGrid(wb)
		if errors.Is(err, parser.ErrNoSheets) {
			return models.EmptyGrid(), nil
		}
		if err != nil {
			return models.Grid{}, NewUnreadableError(path, err)
		}
		return grid, nil
	case KindCSV:
		return LoadCSVFile(path)
	default:
		return models.Grid{}, ErrUnsupportedType
	}
}

// LoadCSVFile reads a CSV file into a grid.
func LoadCSVFile(path string) (models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Grid{}, NewUnreadableError(path, err)
	}
	defer f.Close()

	grid, err := parser.LoadCSV(f)
	if err != nil {
		return models.Grid{}, NewUnreadableError(path, err)
	}
	return grid, nil
}

func emptyResult(msg string) *models.ExtractionResult {
	return &models.ExtractionResult{Kind: models.ResultEmpty, Message: msg}
}
