package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/aprl-tools/internal/types"
)

func sampleRows() []types.ExportRow {
	return []types.ExportRow{
		{
			RecommendationResourceType:  "Microsoft.Compute/virtualMachines",
			AprlGUID:                    "11111111-1111-4111-8111-111111111111",
			Description:                 "Deploy VMs across availability zones",
			RecommendationControl:       "HighAvailability",
			RecommendationImpact:        "High",
			RecommendationMetadataState: "Active",
			PgVerified:                  true,
			AprlURLForResource:          "https://example.com/compute/virtualMachines",
			RecommendationFilePath:      "/repo/compute/virtualMachines/recommendations.yaml",
		},
		{
			RecommendationResourceType:  "Microsoft.Web/sites",
			AprlGUID:                    "22222222-2222-4222-9222-222222222222",
			Description:                 "Use deployment slots",
			RecommendationControl:       "OtherBestPractices",
			RecommendationImpact:        "Medium",
			RecommendationMetadataState: "Active",
			AprlURLForResource:          "https://example.com/web/sites",
			RecommendationFilePath:      "/repo/web/sites/recommendations.yaml",
		},
	}
}

func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteWorkbook_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteWorkbook(sampleRows(), path))

	f := openWorkbook(t, path)
	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.ExportColumns, rows[0])
	assert.Equal(t, "11111111-1111-4111-8111-111111111111", rows[1][1])
	assert.Equal(t, "Use deployment slots", rows[2][2])

	tables, err := f.GetTables(SheetName)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "A1:L3", tables[0].Range)

	centered, err := f.GetColStyle(SheetName, "C")
	require.NoError(t, err)
	assert.NotZero(t, centered)
	plain, err := f.GetColStyle(SheetName, "B")
	require.NoError(t, err)
	assert.Zero(t, plain)

	pathWidth, err := f.GetColWidth(SheetName, "L")
	require.NoError(t, err)
	assert.Greater(t, pathWidth, float64(len("recommendationFilePath")))
}

func TestWriteWorkbook_NoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(nil, path))

	f := openWorkbook(t, path)
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.ExportColumns, rows[0])
}

func TestWriteWorkbook_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.xlsx")
	second := filepath.Join(dir, "second.xlsx")
	require.NoError(t, WriteWorkbook(sampleRows(), first))
	require.NoError(t, WriteWorkbook(sampleRows(), second))

	a, err := openWorkbook(t, first).GetRows(SheetName)
	require.NoError(t, err)
	b, err := openWorkbook(t, second).GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteWorkbook_CreatesOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.xlsx")
	require.NoError(t, WriteWorkbook(sampleRows(), path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteWorkbook_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.MkdirAll(dir, 0555))

	err := WriteWorkbook(sampleRows(), filepath.Join(dir, "out.xlsx"))
	require.Error(t, err)

	var lockedErr *WriteLockedError
	require.True(t, errors.As(err, &lockedErr))
	assert.Contains(t, err.Error(), "not open in another program")
}

func TestWriteWorkbook_OtherFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken.xlsx")
	require.NoError(t, os.MkdirAll(target, 0755))

	err := WriteWorkbook(sampleRows(), target)
	require.Error(t, err)

	var exportErr *ExportError
	assert.True(t, errors.As(err, &exportErr))
}

func TestWriteWorkbook_UnsupportedExtension(t *testing.T) {
	err := WriteWorkbook(sampleRows(), filepath.Join(t.TempDir(), "out.txt"))

	var exportErr *ExportError
	assert.True(t, errors.As(err, &exportErr))
}
