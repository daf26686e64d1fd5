package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/aprl-tools/internal/types"
)

// ReadFile reads a UTF-8 file, dropping a leading byte-order mark if present.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	content, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return content, nil
}

// Decode parses a single YAML document into plain Go values.
// Mappings become map[string]any so the result can be marshaled as JSON.
// An empty document decodes to nil.
func Decode(content []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return normalize(doc), nil
}

// LoadDocument reads and decodes a YAML file.
func LoadDocument(path string) (any, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(content)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
	}
	return doc, nil
}

// LoadRecords reads a recommendations.yaml file holding a sequence of recommendation mappings.
// A document that is not a sequence of mappings yields a *ShapeError.
func LoadRecords(path string) ([]types.Record, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return ToRecords(path, doc)
}

// ToRecords converts a decoded document into records.
func ToRecords(path string, doc any) ([]types.Record, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, &ShapeError{Path: path, Got: describe(doc)}
	}

	records := make([]types.Record, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &ShapeError{Path: path, Got: fmt.Sprintf("item %d is %s", i, describe(item))}
		}
		records = append(records, types.Record(m))
	}
	return records, nil
}

// IsNotFound reports whether err was caused by a missing file.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "empty document"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// normalize converts yaml.v3 output into JSON-compatible values.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return val
	}
}
