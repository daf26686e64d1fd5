package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/aprl-tools/internal/config"
	"github.com/jonathan/aprl-tools/internal/observability"
	"github.com/jonathan/aprl-tools/internal/pipeline"
)

// defaultResourcePaths is the library folder holding per-resource recommendations.
var defaultResourcePaths = []string{"azure-resources"}

func newReportCmd(c *cli) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize which resource types carry recommendations",
		Long: `Lists the resource provider namespaces and resource types that have a
recommendations.yaml, and the coverage against all resource directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runReport(cmd, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.Paths, flagPath, "p", nil, "Root directory to summarize (repeatable)")

	return cmd
}

func (c *cli) runReport(cmd *cobra.Command, flags config.Config) error {
	cfg, err := c.resolve(cmd, flags, config.Config{Paths: defaultResourcePaths})
	if err != nil {
		return err
	}

	survey, err := pipeline.SurveyRoots(cmd.Context(), cfg.Paths, c.logger, c.progress)
	if err != nil {
		return err
	}
	if len(survey.Roots) == 0 {
		return fmt.Errorf("none of the given paths exist: %s", strings.Join(cfg.Paths, ", "))
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, root := range survey.Roots {
		printer.PrintRepositorySummary(root.Root, root.Summary, root.ResourceDirs)
	}
	return nil
}
