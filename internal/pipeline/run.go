// Package pipeline provides the high-level orchestration for the validate, report and export runs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/aprl-tools/internal/export"
	"github.com/jonathan/aprl-tools/internal/filter"
	"github.com/jonathan/aprl-tools/internal/types"
	"github.com/jonathan/aprl-tools/internal/walker"
)

// Step names reported through ProgressEvent.
const (
	StepSurvey   = "survey"
	StepValidate = "validate"
	StepFilter   = "filter"
	StepExport   = "export"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// emitProgress calls the progress callback if configured
func emitProgress(cb ProgressCallback, step, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// RootSurvey holds what was found below one root.
type RootSurvey struct {
	Root         string
	Files        []walker.ResourceFile
	Summary      walker.Summary
	ResourceDirs int
}

// Survey is the result of walking every requested root once.
type Survey struct {
	Roots []RootSurvey
	// Skipped lists roots that did not exist
	Skipped []string
}

// Files returns the files of all surveyed roots, in root order.
func (s Survey) Files() []walker.ResourceFile {
	var files []walker.ResourceFile
	for _, r := range s.Roots {
		files = append(files, r.Files...)
	}
	return files
}

// SurveyRoots walks each root once. Missing roots are logged and skipped;
// any other traversal failure stops the survey.
func SurveyRoots(ctx context.Context, roots []string, logger *zap.Logger, onProgress ProgressCallback) (Survey, error) {
	logger = nopIfNil(logger)
	var survey Survey

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return survey, err
		}

		files, err := walker.FindRecommendationFiles(root, logger)
		if err != nil {
			var notFound *walker.RootNotFoundError
			if errors.As(err, &notFound) {
				logger.Warn("skipping missing root directory", zap.String("root", root))
				survey.Skipped = append(survey.Skipped, root)
				continue
			}
			return survey, fmt.Errorf("failed to survey %s: %w", root, err)
		}

		_, resourceDirs, err := walker.CountResourceDirs(root, logger)
		if err != nil {
			return survey, fmt.Errorf("failed to count resource directories in %s: %w", root, err)
		}

		rs := RootSurvey{
			Root:         root,
			Files:        files,
			Summary:      walker.Summarize(files),
			ResourceDirs: resourceDirs,
		}
		survey.Roots = append(survey.Roots, rs)

		logger.Debug("surveyed root",
			zap.String("root", root),
			zap.Int("files", len(files)),
			zap.Int("resource_dirs", resourceDirs),
		)
		emitProgress(onProgress, StepSurvey,
			fmt.Sprintf("Found %d recommendations.yaml files in %s", len(files), root), rs)
	}

	return survey, nil
}

// ExportOptions holds configuration for an export run
type ExportOptions struct {
	Files      []walker.ResourceFile
	Filter     filter.Options
	OutputFile string
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// ExportResult describes a completed export
type ExportResult struct {
	Rows       []types.ExportRow
	Stats      filter.Stats
	OutputFile string
}

// RunExport filters the given files and writes the surviving records to the output workbook.
func RunExport(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	logger := nopIfNil(opts.Logger)

	emitProgress(opts.OnProgress, StepFilter,
		fmt.Sprintf("Filtering recommendations to impact level %s, include non-PG verified: %t",
			opts.Filter.ImpactLevel, opts.Filter.IncludeNonVerified), nil)

	results, stats, err := filter.Aggregate(ctx, opts.Files, opts.Filter, logger)
	if err != nil {
		return nil, fmt.Errorf("filtering interrupted: %w", err)
	}

	logger.Info("filtered recommendations",
		zap.Int("files_read", stats.FilesRead),
		zap.Int("files_skipped", stats.FilesSkipped),
		zap.Int("records_seen", stats.RecordsSeen),
		zap.Int("records_matched", stats.RecordsMatched),
		zap.Int("rows", results.Len()),
	)

	output := opts.OutputFile
	if output == "" {
		output = export.DefaultOutputFile
	}
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}

	rows := results.Rows()
	emitProgress(opts.OnProgress, StepExport, fmt.Sprintf("Writing %d rows to %s", len(rows), output), nil)

	if err := export.WriteWorkbook(rows, output); err != nil {
		return nil, err
	}

	return &ExportResult{Rows: rows, Stats: stats, OutputFile: output}, nil
}
