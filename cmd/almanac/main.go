// Package main is the entry point for the almanac CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/almanac/almanac"
	"github.com/katalvlaran/almanac/internal/config"
	"github.com/katalvlaran/almanac/internal/logging"
	"github.com/katalvlaran/almanac/parser"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	envFile string
	input   string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "Seed-to-location almanac solver",
		Long: `almanac maps seeds through seven range-remapping stages
(seed → soil → fertilizer → water → light → temperature → humidity → location)
and searches for the smallest location reachable from the declared seed ranges.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "path to a .env file")
	cmd.PersistentFlags().StringVarP(&a.input, "input", "i", "", "almanac file (.txt or .yaml); overrides ALMANAC_INPUT")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(solveCmd(a))
	cmd.AddCommand(traceCmd(a))
	cmd.AddCommand(searchCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.input != "" {
		cfg.Input = a.input
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// load parses the configured input file.
func (a *app) load() (*almanac.Almanac, error) {
	al, err := parser.Load(a.cfg.Input)
	if err != nil {
		return nil, err
	}
	if al.Incomplete() {
		a.logger.Warn("incomplete seed pair ignored", zap.Int("seeds", len(al.Seeds())))
	}
	a.logger.Debug("almanac loaded",
		zap.String("input", a.cfg.Input),
		zap.Int("seeds", len(al.Seeds())),
		zap.Int("seed_ranges", len(al.SeedRanges())))

	return al, nil
}
