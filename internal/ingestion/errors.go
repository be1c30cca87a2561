package ingestion

import (
	"fmt"
	"path/filepath"
)

// UnsupportedFormatError indicates a file whose extension is not one of
// SupportedExtensions.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q (expected one of %v)",
		filepath.Ext(e.Filename), SupportedExtensions)
}

// ExtractionError wraps a decode failure for a specific file format.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s text: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
