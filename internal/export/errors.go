// Package export writes filtered recommendations to an xlsx workbook.
package export

import "fmt"

// WriteLockedError is returned when the output file cannot be written because it is
// locked by another program or permissions deny access.
type WriteLockedError struct {
	Path  string
	Cause error
}

func (e *WriteLockedError) Error() string {
	return fmt.Sprintf("failed to save the file %s: %v. Please ensure the file is not open in another program and you have write permissions to the directory and file", e.Path, e.Cause)
}

func (e *WriteLockedError) Unwrap() error {
	return e.Cause
}

// ExportError represents any other failure while building or saving the workbook
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
