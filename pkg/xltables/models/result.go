package models

// ResultKind tags which content an ExtractionResult carries.
type ResultKind string

const (
	// ResultTables means at least one table was segmented.
	ResultTables ResultKind = "tables"
	// ResultRows means no table was found and the non-blank rows are returned.
	ResultRows ResultKind = "rows"
	// ResultEmpty means there is no content at all.
	ResultEmpty ResultKind = "empty"
)

// ExtractionResult is the outcome of running the extraction pipeline.
type ExtractionResult struct {
	Kind    ResultKind `json:"kind"`
	Tables  []Table    `json:"tables,omitempty"`
	Rows    []Row      `json:"rows,omitempty"`
	Message string     `json:"message,omitempty"`
	// Range is the used range of the sheet, e.g. "A1:D10".
	Range string `json:"range,omitempty"`
}

// Content returns the tables or the fallback rows, never nil.
func (r *ExtractionResult) Content() interface{} {
	switch r.Kind {
	case ResultTables:
		return r.Tables
	case ResultRows:
		return r.Rows
	default:
		return []interface{}{}
	}
}

// Len returns the number of content entries.
func (r *ExtractionResult) Len() int {
	switch r.Kind {
	case ResultTables:
		return len(r.Tables)
	case ResultRows:
		return len(r.Rows)
	default:
		return 0
	}
}

// Response is the JSON contract returned for a successful read.
type Response struct {
	Success  bool        `json:"success"`
	Filename string      `json:"filename"`
	Content  interface{} `json:"content"`
	Type     string      `json:"type"`
	Message  string      `json:"message"`
}

// ErrorResponse is the JSON contract returned for a failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Record is one data row keyed by header text.
type Record map[string]Cell
