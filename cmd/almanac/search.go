package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/almanac/almanac"
)

// searchCmd runs only the seed-range search, with flags overriding the
// environment configuration.
func searchCmd(a *app) *cobra.Command {
	var (
		strategy  string
		ceiling   uint64
		workers   int
		blockSize uint64
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the minimal location whose inverted seed lies in a seed range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("strategy") {
				s, err := almanac.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				a.cfg.Strategy = s
			}
			if flags.Changed("ceiling") && ceiling > 0 {
				a.cfg.Ceiling = ceiling
			}
			if flags.Changed("workers") {
				a.cfg.Workers = workers
			}
			if flags.Changed("block-size") {
				a.cfg.BlockSize = blockSize
			}

			al, err := a.load()
			if err != nil {
				return err
			}
			a.logger.Info("searching",
				zap.Stringer("strategy", a.cfg.Strategy),
				zap.Uint64("ceiling", a.cfg.Ceiling))

			opts := append(a.cfg.SearchOptions(),
				almanac.WithContext(cmd.Context()),
				almanac.WithLogger(a.logger))
			loc, err := al.MinimalValidLocation(opts...)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)

			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "scan, parallel or interval")
	cmd.Flags().Uint64Var(&ceiling, "ceiling", 0, "largest location to consider (0: unbounded)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers")
	cmd.Flags().Uint64Var(&blockSize, "block-size", 0, "candidates per worker per batch")

	return cmd
}
