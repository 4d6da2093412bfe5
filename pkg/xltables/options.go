// Package xltables extracts titled tables from spreadsheet and CSV files.
package xltables

import (
	"path/filepath"
	"strings"
)

// Kind represents how an input file is decoded.
type Kind string

const (
	// KindAuto picks the kind from the file extension.
	KindAuto Kind = "auto"
	// KindWorkbook decodes the file as a spreadsheet workbook.
	KindWorkbook Kind = "workbook"
	// KindCSV decodes the file as comma separated values.
	KindCSV Kind = "csv"
	// KindOther skips table extraction.
	KindOther Kind = "other"
)

var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
	".xls":  true,
}

// Options configures extraction behavior.
type Options struct {
	// Kind forces the decoder. Empty or KindAuto detects it from the path.
	Kind Kind
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Kind: KindAuto,
	}
}

// ResolveKind returns the decoder kind for path.
func (o Options) ResolveKind(path string) Kind {
	if o.Kind != "" && o.Kind != KindAuto {
		return o.Kind
	}
	return DetectKind(path)
}

// DetectKind classifies a path by its extension.
func DetectKind(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case workbookExts[ext]:
		return KindWorkbook
	case ext == ".csv":
		return KindCSV
	default:
		return KindOther
	}
}

// ParseKind parses a kind name as accepted on the command line.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(s)) {
	case "", KindAuto:
		return KindAuto, true
	case KindWorkbook:
		return KindWorkbook, true
	case KindCSV:
		return KindCSV, true
	case KindOther:
		return KindOther, true
	}
	return "", false
}
