// Package main implements the aprl CLI for validating, reporting on and exporting recommendations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/aprl-tools/internal/config"
)

// cli holds state shared by every subcommand of one invocation.
type cli struct {
	verbose    bool
	configPath string

	// fileConfig is the parsed --config file, nil when none was given
	fileConfig *config.Config

	logger *zap.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aprl",
		Short: "Validate and export resiliency recommendations",
		Long: `aprl works on a checked out recommendations library.

It validates every recommendations.yaml against the recommendation schema,
reports which resource types carry recommendations, and exports filtered
recommendations to an xlsx workbook.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.configPath != "" {
				cfg, err := config.LoadConfig(c.configPath)
				if err != nil {
					return err
				}
				c.fileConfig = cfg
				if !cmd.Flags().Changed("verbose") && cfg.Verbose {
					c.verbose = true
				}
			}

			// Tests inject their own logger
			if c.logger != nil {
				return nil
			}

			zapConfig := zap.NewProductionConfig()
			if c.verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a JSON or YAML config file (optional)")

	rootCmd.AddCommand(
		newValidateCmd(c),
		newReportCmd(c),
		newExportCmd(c),
		newSchemaCmd(c),
	)

	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
