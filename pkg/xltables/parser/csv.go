package parser

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadCSV reads comma separated values into a grid. A UTF-8 or UTF-16 byte
// order mark is honored. Rows may have differing field counts and are padded
// like any other grid. All fields stay strings; empty fields become nil.
func LoadCSV(r io.Reader) (models.Grid, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]models.Cell
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Grid{}, err
		}

		row := make([]models.Cell, len(record))
		for i, field := range record {
			if field != "" {
				row[i] = field
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return models.EmptyGrid(), nil
	}
	return models.NewGrid(rows), nil
}
