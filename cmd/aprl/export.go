package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/aprl-tools/internal/config"
	"github.com/jonathan/aprl-tools/internal/export"
	"github.com/jonathan/aprl-tools/internal/filter"
	"github.com/jonathan/aprl-tools/internal/observability"
	"github.com/jonathan/aprl-tools/internal/pipeline"
)

func newExportCmd(c *cli) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered recommendations to an xlsx workbook",
		Long: `Walks --path, keeps recommendations matching --impact (and only PG verified
ones unless --include-non-verified is set), removes duplicate aprlGuids with the
last file read winning, and writes the rows to --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runExport(cmd, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.Paths, flagPath, "p", nil, "Root directory holding resource recommendations (repeatable)")
	cmd.Flags().StringVarP(&flags.ImpactLevel, flagImpact, "i", string(filter.ImpactHigh), "Impact level to export: High, Medium, Low or All")
	cmd.Flags().BoolVar(&flags.IncludeNonVerified, flagIncludeNonVerified, false, "Also export recommendations that are not PG verified")
	cmd.Flags().StringVarP(&flags.OutputFile, flagOut, "o", export.DefaultOutputFile, "Path to the xlsx file to write")
	cmd.Flags().StringVar(&flags.BaseURL, flagBaseURL, filter.DefaultBaseURL, "Documentation base URL used for aprlUrlForResource")

	return cmd
}

func (c *cli) runExport(cmd *cobra.Command, flags config.Config) error {
	cfg, err := c.resolve(cmd, flags, config.Config{
		Paths:       defaultResourcePaths,
		ImpactLevel: string(filter.ImpactHigh),
		OutputFile:  export.DefaultOutputFile,
		BaseURL:     filter.DefaultBaseURL,
	})
	if err != nil {
		return err
	}

	level, err := filter.ParseImpactLevel(cfg.ImpactLevel)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintSettings("EXPORT", []observability.Setting{
		{Name: "Paths", Value: strings.Join(cfg.Paths, ", ")},
		{Name: "Impact level", Value: string(level)},
		{Name: "Include non-PG verified", Value: fmt.Sprintf("%t", cfg.IncludeNonVerified)},
		{Name: "Output file", Value: cfg.OutputFile},
	})

	survey, err := pipeline.SurveyRoots(cmd.Context(), cfg.Paths, c.logger, c.progress)
	if err != nil {
		return err
	}
	if len(survey.Roots) == 0 {
		return fmt.Errorf("none of the given paths exist: %s", strings.Join(cfg.Paths, ", "))
	}
	for _, root := range survey.Roots {
		printer.PrintRepositorySummary(root.Root, root.Summary, root.ResourceDirs)
	}

	result, err := pipeline.RunExport(cmd.Context(), pipeline.ExportOptions{
		Files: survey.Files(),
		Filter: filter.Options{
			ImpactLevel:        level,
			IncludeNonVerified: cfg.IncludeNonVerified,
			BaseURL:            cfg.BaseURL,
		},
		OutputFile: cfg.OutputFile,
		Logger:     c.logger,
		OnProgress: c.progress,
	})
	if err != nil {
		return err
	}

	printer.PrintExportResult(result.OutputFile, len(result.Rows))
	return nil
}
