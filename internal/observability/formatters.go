// Package observability provides formatted console output for the aprl commands.
package observability

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jonathan/aprl-tools/internal/types"
	"github.com/jonathan/aprl-tools/internal/walker"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxProblemsPerFile is the number of problems listed for one failing file
	maxProblemsPerFile = 10
	// namespacePrefix is prepended to namespace directory names
	namespacePrefix = "Microsoft."
)

// Setting is one name/value line in the settings box.
type Setting struct {
	Name  string
	Value string
}

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrapLine(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrapLine splits line into chunks of at most width runes. Nothing is dropped.
func wrapLine(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}

	var parts []string
	for len(runes) > 0 {
		n := min(width, len(runes))
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}

// PrintSettings outputs the arguments in effect for a run.
func (p *Printer) PrintSettings(title string, settings []Setting) {
	var sb strings.Builder
	width := 0
	for _, s := range settings {
		width = max(width, len(s.Name)+1)
	}
	for _, s := range settings {
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", width, s.Name+":", s.Value))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// Coverage returns found/total as a percentage rounded to two decimals.
// The second result is false when total is zero.
func Coverage(found, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return math.Round(float64(found)/float64(total)*100*100) / 100, true
}

// PrintRepositorySummary outputs how many resource directories carry recommendations
// and which namespaces and resource types were found. The root is printed above the box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRepositorySummary(root string, summary walker.Summary, resourceDirs int) {
	fmt.Fprintf(p.out, "Root: %s\n", root)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d recommendations.yaml files out of %d resource directories\n", summary.Files, resourceDirs))
	if pct, ok := Coverage(summary.Files, resourceDirs); ok {
		sb.WriteString(fmt.Sprintf("Coverage: %.2f%%\n", pct))
	} else {
		sb.WriteString("Coverage: n/a\n")
	}

	sb.WriteString(fmt.Sprintf("\nResource provider namespaces (%d):\n", len(summary.Namespaces)))
	for i, ns := range summary.Namespaces {
		sb.WriteString(fmt.Sprintf("  %d: %s%s\n", i+1, namespacePrefix, ns))
	}

	sb.WriteString(fmt.Sprintf("\nResource types (%d):\n", len(summary.NamespacesAndTypes)))
	for i, pair := range summary.NamespacesAndTypes {
		sb.WriteString(fmt.Sprintf("  %d: %s%s\n", i+1, namespacePrefix, pair))
	}

	p.printBox("RECOMMENDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// Plural returns "1 file" or "N files" style counts.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// PrintValidationResults outputs one line per file and the problems of failing files.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationResults(results []types.FileResult) {
	failed := 0
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(p.out, "PASS  %s\n", r.Path)
			continue
		}
		failed++
		fmt.Fprintf(p.out, "FAIL  %s\n", r.Path)
		for i, problem := range r.Problems {
			if i == maxProblemsPerFile {
				fmt.Fprintf(p.out, "      ... and %d more\n", len(r.Problems)-maxProblemsPerFile)
				break
			}
			fmt.Fprintf(p.out, "      - %s\n", problem)
		}
	}

	if failed == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("Validation passed: %s checked", Plural(len(results), "file", "files")))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	p.printBox("VALIDATION FAILED", fmt.Sprintf("Found %s with errors out of %s checked",
		Plural(failed, "file", "files"), Plural(len(results), "file", "files")))
}

// PrintExportResult outputs where the workbook was written.
// The path goes on its own line outside the box so it can be copied whole.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportResult(path string, rows int) {
	p.printBox("EXPORT COMPLETE", fmt.Sprintf("Rows written: %d", rows))
	fmt.Fprintf(p.out, "XLSX file created successfully: %s\n", path)
}
