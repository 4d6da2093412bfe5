package models

// Table is one logical table found in a worksheet.
type Table struct {
	// Title is the first cell of the bold row that opened the table.
	Title string `json:"title"`
	// Headers holds the row following the title, as text.
	Headers []string `json:"headers"`
	// Rows holds the data rows. Rows are not re-padded to len(Headers).
	Rows []Row `json:"rows"`
}
