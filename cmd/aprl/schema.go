package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	schemafiles "github.com/jonathan/aprl-tools/schemas"
)

func newSchemaCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Write the built-in recommendation schema to a file",
		Long:  "Writes the built-in recommendation schema so it can be edited and passed back to validate with --schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSchema(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&out, flagOut, "o", schemafiles.RecommendationSchemaFile, "Path to write the schema to")

	return cmd
}

func (c *cli) runSchema(cmd *cobra.Command, out string) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", out, err)
		}
	}
	if err := os.WriteFile(out, schemafiles.RecommendationSchema, 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	c.logger.Debug("wrote schema", zap.String("path", out))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", out)
	return nil
}
