// Package models defines data structures for spreadsheet table extraction.
package models

import "strconv"

// Cell is a single worksheet value: nil, string, float64 or bool.
type Cell = interface{}

// Row is an ordered sequence of cells.
type Row []Cell

// IsBlank reports whether a cell is null or the empty string.
// Zero, false and whitespace-only strings are not blank.
func IsBlank(c Cell) bool {
	switch v := c.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

// CellText renders a cell as text. Blank cells render as "".
func CellText(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
