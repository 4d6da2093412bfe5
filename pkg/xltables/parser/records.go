package parser

import (
	"strconv"

	"github.com/ukaji3/xltables-go/pkg/xltables/models"
)

// Records converts a grid into header-keyed objects. The first non-empty
// row provides the keys; every later non-empty row becomes one record.
// Blank header cells are keyed __EMPTY, __EMPTY_1, ... and repeated keys
// get _1, _2 suffixes. Blank cells are omitted from a record.
func Records(grid models.Grid) []models.Record {
	rows := NonEmptyRows(grid)
	if len(rows) == 0 {
		return []models.Record{}
	}

	keys := recordKeys(rows[0])
	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(models.Record)
		for i, cell := range row {
			if i >= len(keys) || models.IsBlank(cell) {
				continue
			}
			record[keys[i]] = cell
		}
		records = append(records, record)
	}
	return records
}

func recordKeys(header models.Row) []string {
	keys := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, cell := range header {
		key := models.CellText(cell)
		if key == "" {
			key = "__EMPTY"
		}
		if n, ok := seen[key]; ok {
			seen[key] = n + 1
			key = key + "_" + strconv.Itoa(n+1)
		} else {
			seen[key] = 0
		}
		keys[i] = key
	}
	return keys
}
