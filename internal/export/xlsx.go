package export

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/aprl-tools/internal/types"
)

const (
	// SheetName is the name of the single worksheet in the workbook.
	SheetName = "APRL Filtered Recommendations"
	// TableName names the table region covering the header and all rows.
	TableName = "APRLFilteredRecommendations"

	// centeredFromColumn is the first 1-based column that gets centered alignment.
	centeredFromColumn = 3
	minColumnWidth     = 8
	maxColumnWidth     = 120
)

// DefaultOutputFile is used when no output file name is given.
const DefaultOutputFile = "aprlFilteredRecommendations.xlsx"

// BuildWorkbook lays out rows on a single sheet with a header row, a table
// region, centered data columns after the first two, and sized column widths.
func BuildWorkbook(rows []types.ExportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		_ = f.Close()
		return nil, &ExportError{Message: "failed to name worksheet", Cause: err}
	}

	if err := fill(f, rows); err != nil {
		_ = f.Close()
		return nil, err
	}

	return f, nil
}

func fill(f *excelize.File, rows []types.ExportRow) error {
	columns := len(types.ExportColumns)
	widths := make([]int, columns)

	header := make([]any, columns)
	for i, name := range types.ExportColumns {
		header[i] = name
		widths[i] = utf8.RuneCountInString(name)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return &ExportError{Message: "failed to write header row", Cause: err}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return &ExportError{Message: "failed to address row", Cause: err}
		}
		values := row.Values()
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return &ExportError{Message: "failed to write row", Cause: err}
		}
		for i, s := range row.Strings() {
			widths[i] = max(widths[i], utf8.RuneCountInString(s))
		}
	}

	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return &ExportError{Message: "failed to address columns", Cause: err}
	}

	if columns >= centeredFromColumn {
		center, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "center"}})
		if err != nil {
			return &ExportError{Message: "failed to create center style", Cause: err}
		}
		firstCentered, err := excelize.ColumnNumberToName(centeredFromColumn)
		if err != nil {
			return &ExportError{Message: "failed to address columns", Cause: err}
		}
		if err := f.SetColStyle(SheetName, firstCentered+":"+lastCol, center); err != nil {
			return &ExportError{Message: "failed to center columns", Cause: err}
		}
	}

	if len(rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(columns, len(rows)+1)
		if err != nil {
			return &ExportError{Message: "failed to address table", Cause: err}
		}
		if err := f.AddTable(SheetName, &excelize.Table{
			Range:     "A1:" + lastCell,
			Name:      TableName,
			StyleName: "TableStyleMedium2",
		}); err != nil {
			return &ExportError{Message: "failed to add table", Cause: err}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return &ExportError{Message: "failed to address columns", Cause: err}
		}
		width := float64(min(max(w+2, minColumnWidth), maxColumnWidth))
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return &ExportError{Message: "failed to size columns", Cause: err}
		}
	}

	return nil
}

// WriteWorkbook builds the workbook and saves it to path.
// Permission failures yield a *WriteLockedError; anything else an *ExportError.
func WriteWorkbook(rows []types.ExportRow, path string) error {
	f, err := BuildWorkbook(rows)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return classify(path, "failed to create output directory", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return classify(path, "failed to save workbook", err)
	}
	return nil
}

func classify(path, message string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &WriteLockedError{Path: path, Cause: err}
	}
	return &ExportError{Message: message + " " + path, Cause: err}
}
