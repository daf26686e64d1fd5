// Package schemas provides schema validation for recommendation YAML documents.
package schemas

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/aprl-tools/internal/loader"
	schemafiles "github.com/jonathan/aprl-tools/schemas"
)

// ResolveSchemaPath locates a schema file. Absolute paths are used as given.
// A relative path is tried against the working directory first and then
// against each of searchDirs in order, so a schema kept at the top of a
// checked out library is found when only its resource roots are passed.
// Returns the absolute path of the first match, or "" when none exists.
func ResolveSchemaPath(path string, searchDirs ...string) string {
	if path == "" {
		return ""
	}

	candidates := []string{path}
	if !filepath.IsAbs(path) {
		for _, dir := range searchDirs {
			candidates = append(candidates, filepath.Join(dir, path))
		}
	}

	for _, candidate := range candidates {
		absPath, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
			return absPath
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Path   string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// DocumentError represents a document that could not be read or parsed
type DocumentError struct {
	Path  string
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid document %s: %v", e.Path, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Path != "" {
		sb.WriteString(fmt.Sprintf("validation failed for %s:\n", ve.Path))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Schema is a compiled schema, built once and reused for every document.
type Schema struct {
	source   string
	compiled *gojsonschema.Schema
}

// Source returns where the schema was loaded from.
func (s *Schema) Source() string {
	return s.source
}

// LoadSchema reads and compiles a YAML (or JSON) schema file.
func LoadSchema(path string) (*Schema, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, &SchemaLoadError{Path: absPath, Message: "schema file not found"}
	}

	content, err := loader.ReadFile(absPath)
	if err != nil {
		return nil, &SchemaLoadError{Path: absPath, Message: "failed to read schema", Cause: err}
	}

	return CompileSchema(absPath, content)
}

// DefaultSchema compiles the embedded recommendations schema.
func DefaultSchema() (*Schema, error) {
	return CompileSchema("(embedded) "+schemafiles.RecommendationSchemaFile, schemafiles.RecommendationSchema)
}

// CompileSchema compiles YAML or JSON schema content. source names it in errors and Source.
func CompileSchema(source string, content []byte) (*Schema, error) {
	doc, err := loader.Decode(content)
	if err != nil {
		return nil, &SchemaLoadError{Path: source, Message: "schema is not valid YAML", Cause: err}
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, &SchemaLoadError{Path: source, Message: "schema must be a mapping"}
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &SchemaLoadError{Path: source, Message: "schema compilation failed", Cause: err}
	}

	return &Schema{source: source, compiled: compiled}, nil
}

// Validate checks an already decoded document against the schema.
func (s *Schema) Validate(doc any) error {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &DocumentError{Path: "(document)", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// ValidateFile reads a YAML file and validates it against the schema.
// The decoded document is returned whenever the file could be parsed, so callers
// can run further checks without reading it again.
// Unreadable or malformed files yield a *DocumentError; schema violations a *ValidationError.
func (s *Schema) ValidateFile(path string) (any, error) {
	doc, err := loader.LoadDocument(path)
	if err != nil {
		return nil, &DocumentError{Path: path, Cause: err}
	}

	err = s.Validate(doc)
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		validationErr.Path = path
		return doc, validationErr
	}
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		docErr.Path = path
	}
	return doc, err
}
