package types

// FileResult is the outcome of validating one recommendations file.
type FileResult struct {
	Path     string   `json:"path"`
	Problems []string `json:"problems,omitempty"`
}

// Passed reports whether the file had no problems.
func (r FileResult) Passed() bool {
	return len(r.Problems) == 0
}
