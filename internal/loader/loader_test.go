package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recommendations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRecords_Sequence(t *testing.T) {
	path := writeTemp(t, `
- description: Enable zone redundancy
  aprlGuid: 11111111-1111-4111-8111-111111111111
  pgVerified: true
  learnMoreLink:
    - name: docs
      url: https://learn.microsoft.com
- description: Second
  aprlGuid: 22222222-2222-4222-9222-222222222222
`)

	records, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Enable zone redundancy", records[0].String("description", ""))
	assert.True(t, records[0].Bool("pgVerified", false))
	links, ok := records[0]["learnMoreLink"].([]any)
	require.True(t, ok)
	require.Len(t, links, 1)
	_, isMap := links[0].(map[string]any)
	assert.True(t, isMap)
	assert.Equal(t, "Second", records[1].String("description", ""))
}

func TestLoadRecords_ByteOrderMark(t *testing.T) {
	path := writeTemp(t, "\ufeff- description: with bom\n  aprlGuid: abc\n")

	records, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "with bom", records[0].String("description", ""))
}

func TestLoadRecords_NotASequence(t *testing.T) {
	path := writeTemp(t, "description: a mapping\n")

	records, err := LoadRecords(path)
	require.Error(t, err)
	assert.Nil(t, records)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "mapping", shapeErr.Got)
	assert.Contains(t, err.Error(), "unexpected data structure")
}

func TestLoadRecords_EmptyDocument(t *testing.T) {
	path := writeTemp(t, "")

	_, err := LoadRecords(path)
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "empty document", shapeErr.Got)
}

func TestLoadRecords_ItemNotMapping(t *testing.T) {
	path := writeTemp(t, "- just a string\n")

	_, err := LoadRecords(path)
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Contains(t, shapeErr.Got, "item 0")
}

func TestLoadRecords_Malformed(t *testing.T) {
	path := writeTemp(t, "- description: [unclosed\n")

	_, err := LoadRecords(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadRecords_NotFound(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDecode_NonStringKeys(t *testing.T) {
	doc, err := Decode([]byte("1: one\ntrue: yes\n"))
	require.NoError(t, err)

	m, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "one", m["1"])
	assert.Equal(t, "yes", m["true"])
}
