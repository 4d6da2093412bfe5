package xltables

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnreadableFile indicates the spreadsheet parser could not open the file.
var ErrUnreadableFile = errors.New("unreadable file")

// ErrUnsupportedType indicates the file is not spreadsheet-typed.
var ErrUnsupportedType = errors.New("unsupported file type")

// UnreadableError wraps the parser failure for a file.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable file %q: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUnreadableFile) hold for every UnreadableError.
func (e *UnreadableError) Is(target error) bool {
	return target == ErrUnreadableFile
}

// NewUnreadableError creates a new UnreadableError.
func NewUnreadableError(path string, err error) *UnreadableError {
	return &UnreadableError{
		Path: path,
		Err:  err,
	}
}
