package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/aprl-tools/internal/config"
	"github.com/jonathan/aprl-tools/internal/observability"
	"github.com/jonathan/aprl-tools/internal/pipeline"
	"github.com/jonathan/aprl-tools/internal/schemas"
)

// defaultValidatePaths are the library folders holding recommendations.yaml files.
var defaultValidatePaths = []string{"azure-resources", "azure-specialized-workloads", "azure-waf"}

func newValidateCmd(c *cli) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate recommendations.yaml files against the schema",
		Long: `Walks each --path, checks every recommendations.yaml against the schema and
the field rules, and prints a pass/fail line per file. All files are checked
before the command exits; it exits non-zero when any file failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runValidate(cmd, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.Paths, flagPath, "p", nil, "Root directory to validate (repeatable)")
	cmd.Flags().StringVarP(&flags.SchemaPath, flagSchema, "s", "", "Schema file (defaults to the built-in recommendation schema)")

	return cmd
}

// loadSchema returns the built-in schema when path is empty. A relative path is
// looked up in the working directory and then next to each validated root, so
// a schema at the top of a checked out library is found from anywhere.
func loadSchema(path string, roots []string) (*schemas.Schema, error) {
	if path == "" {
		return schemas.DefaultSchema()
	}

	searchDirs := make([]string, 0, len(roots))
	for _, root := range roots {
		searchDirs = append(searchDirs, filepath.Dir(filepath.Clean(root)))
	}
	if resolved := schemas.ResolveSchemaPath(path, searchDirs...); resolved != "" {
		path = resolved
	}
	return schemas.LoadSchema(path)
}

func (c *cli) runValidate(cmd *cobra.Command, flags config.Config) error {
	cfg, err := c.resolve(cmd, flags, config.Config{Paths: defaultValidatePaths})
	if err != nil {
		return err
	}

	schema, err := loadSchema(cfg.SchemaPath, cfg.Paths)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintSettings("VALIDATE", []observability.Setting{
		{Name: "Paths", Value: strings.Join(cfg.Paths, ", ")},
		{Name: "Schema", Value: schema.Source()},
	})

	survey, err := pipeline.SurveyRoots(cmd.Context(), cfg.Paths, c.logger, c.progress)
	if err != nil {
		return err
	}
	if len(survey.Roots) == 0 {
		return fmt.Errorf("none of the given paths exist: %s", strings.Join(cfg.Paths, ", "))
	}

	result, err := pipeline.RunValidate(cmd.Context(), pipeline.ValidateOptions{
		Files:      survey.Files(),
		Schema:     schema,
		Logger:     c.logger,
		OnProgress: c.progress,
	})
	if err != nil {
		return err
	}

	printer.PrintValidationResults(result.Files)
	return result.Err()
}
