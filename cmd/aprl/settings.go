package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/aprl-tools/internal/config"
	"github.com/jonathan/aprl-tools/internal/pipeline"
)

// Flag names shared by several subcommands.
const (
	flagPath               = "path"
	flagSchema             = "schema"
	flagImpact             = "impact"
	flagIncludeNonVerified = "include-non-verified"
	flagOut                = "out"
	flagBaseURL            = "base-url"
)

// resolve merges settings in precedence order: explicitly set flags, the
// config file, APRL_* environment variables, then the command's defaults.
func (c *cli) resolve(cmd *cobra.Command, flags, defaults config.Config) (config.Config, error) {
	var cfg config.Config
	if c.fileConfig != nil {
		cfg = *c.fileConfig
	}

	fs := cmd.Flags()
	if fs.Changed(flagPath) {
		cfg.Paths = flags.Paths
	}
	if fs.Changed(flagSchema) {
		cfg.SchemaPath = flags.SchemaPath
	}
	if fs.Changed(flagImpact) {
		cfg.ImpactLevel = flags.ImpactLevel
	}
	if fs.Changed(flagIncludeNonVerified) {
		cfg.IncludeNonVerified = flags.IncludeNonVerified
	}
	if fs.Changed(flagOut) {
		cfg.OutputFile = flags.OutputFile
	}
	if fs.Changed(flagBaseURL) {
		cfg.BaseURL = flags.BaseURL
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// progress logs pipeline progress events at debug level, shown with --verbose.
func (c *cli) progress(event pipeline.ProgressEvent) {
	c.logger.Debug(event.Message, zap.String("step", event.Step))
}
