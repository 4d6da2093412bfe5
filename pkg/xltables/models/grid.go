package models

// Grid is the raw cell grid of one worksheet. All rows have Width cells.
type Grid struct {
	// Rows holds the sheet rows starting at A1.
	Rows []Row `json:"rows"`
	// Width is the number of columns in every row.
	Width int `json:"width"`
	// Empty marks a sheet with no defined cell range.
	Empty bool `json:"-"`
}

// RowClass annotates a grid row with its emptiness and boldness.
type RowClass struct {
	Index   int  `json:"index"`
	IsEmpty bool `json:"is_empty"`
	IsBold  bool `json:"is_bold"`
}

// NewGrid builds a grid from ragged rows, padding every row with nil to the
// width of the widest one.
func NewGrid(rows [][]Cell) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := Grid{Rows: make([]Row, len(rows)), Width: width}
	for i, row := range rows {
		padded := make(Row, width)
		copy(padded, row)
		grid.Rows[i] = padded
	}
	return grid
}

// EmptyGrid returns the sentinel grid for a sheet without a cell range.
func EmptyGrid() Grid {
	return Grid{Empty: true}
}
