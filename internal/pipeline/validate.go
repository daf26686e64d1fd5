package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/aprl-tools/internal/loader"
	"github.com/jonathan/aprl-tools/internal/observability"
	"github.com/jonathan/aprl-tools/internal/schemas"
	"github.com/jonathan/aprl-tools/internal/types"
	"github.com/jonathan/aprl-tools/internal/validation"
	"github.com/jonathan/aprl-tools/internal/walker"
)

// ValidateOptions holds configuration for a validation run
type ValidateOptions struct {
	Files      []walker.ResourceFile
	Schema     *schemas.Schema
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// ValidateResult collects the outcome of every checked file
type ValidateResult struct {
	Files []types.FileResult
	// SkippedFiles were enumerated but could not be found when read
	SkippedFiles []string
	Failed       int
}

// FailureError is returned by ValidateResult.Err when any file failed
type FailureError struct {
	Failed int
}

func (e *FailureError) Error() string {
	return observability.Plural(e.Failed, "file", "files") + " failed validation"
}

// Err returns a *FailureError when at least one file failed, nil otherwise.
func (r *ValidateResult) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return &FailureError{Failed: r.Failed}
}

// RunValidate checks every file against the schema and the field validators.
// Every file is checked before the result is returned; failures never stop the run.
func RunValidate(ctx context.Context, opts ValidateOptions) (*ValidateResult, error) {
	if opts.Schema == nil {
		return nil, fmt.Errorf("a compiled schema is required")
	}
	logger := nopIfNil(opts.Logger)
	result := &ValidateResult{}

	for _, file := range opts.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		doc, err := opts.Schema.ValidateFile(file.AbsPath)
		if err != nil && loader.IsNotFound(err) {
			logger.Warn("file not found", zap.String("path", file.AbsPath))
			result.SkippedFiles = append(result.SkippedFiles, file.AbsPath)
			continue
		}

		fr := types.FileResult{Path: file.AbsPath}
		var docErr *schemas.DocumentError
		if errors.As(err, &docErr) {
			fr.Problems = append(fr.Problems, err.Error())
		} else {
			fr.Problems = append(fr.Problems, checkDocument(file.AbsPath, doc, err)...)
		}

		if fr.Passed() {
			logger.Debug("file passed validation", zap.String("path", file.AbsPath))
		} else {
			result.Failed++
			logger.Warn("file failed validation",
				zap.String("path", file.AbsPath),
				zap.Int("problems", len(fr.Problems)),
			)
		}
		result.Files = append(result.Files, fr)
	}

	emitProgress(opts.OnProgress, StepValidate,
		fmt.Sprintf("Checked %d files, %d failed", len(result.Files), result.Failed), result)

	return result, nil
}

// checkDocument turns schema violations into problems and then runs the per-record field validators.
func checkDocument(path string, doc any, schemaErr error) []string {
	var problems []string

	var validationErr *schemas.ValidationError
	if errors.As(schemaErr, &validationErr) {
		for _, fe := range validationErr.Errors {
			problems = append(problems, fmt.Sprintf("schema: %s: %s", fe.Field, fe.Message))
		}
	} else if schemaErr != nil {
		problems = append(problems, schemaErr.Error())
	}

	records, err := loader.ToRecords(path, doc)
	if err != nil {
		return append(problems, err.Error())
	}

	violations := validation.ValidateRecords(records)
	for _, v := range violations.Violations {
		problems = append(problems, v.String())
	}

	return problems
}
