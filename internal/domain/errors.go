package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBrandUnknown        = errors.New("unknown brand")
	ErrEmptyDataset        = errors.New("dataset contains no rows")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrReadFailed          = errors.New("could not read workbook")
)

// SchemaError reports required columns that are absent from an uploaded
// dataset. It is fatal to the whole batch: no invoices are generated.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// CellError reports a non-empty cell that could not be read as a number.
// Row is the 1-based data row (excluding the header).
type CellError struct {
	Column string
	Row    int
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("column %q row %d: %q is not a number", e.Column, e.Row, e.Value)
}
