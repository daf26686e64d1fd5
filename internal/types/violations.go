package types

import "fmt"

// Violation represents a single field validation failure
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	// Index is the position of the record within its file, or -1 when unknown
	Index int `json:"index"`
}

func (v Violation) String() string {
	if v.Index < 0 {
		return fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("record %d: %s: %s", v.Index, v.Field, v.Message)
}

// Violations represents a collection of validation failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Empty reports whether no violations were recorded.
func (v Violations) Empty() bool {
	return len(v.Violations) == 0
}
