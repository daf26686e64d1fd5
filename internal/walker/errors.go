// Package walker enumerates recommendations.yaml files below a resource root.
package walker

import "fmt"

// RootNotFoundError is returned when a root directory does not exist
type RootNotFoundError struct {
	Root  string
	Cause error
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("root directory not found: %s", e.Root)
}

func (e *RootNotFoundError) Unwrap() error {
	return e.Cause
}

// WalkError represents a failure while traversing a directory tree
type WalkError struct {
	Message string
	Cause   error
}

func (e *WalkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("walk error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("walk error: %s", e.Message)
}

func (e *WalkError) Unwrap() error {
	return e.Cause
}
