// Package loader reads recommendation YAML documents from disk.
package loader

import (
	"fmt"
)

// LoadError represents an error during file I/O or YAML parsing
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ShapeError is returned when a document parses but is not a sequence of mappings
type ShapeError struct {
	Path string
	// Got describes what was found instead
	Got string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected data structure in %s: %s", e.Path, e.Got)
}
