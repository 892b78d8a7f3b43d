package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/almanac/almanac"
)

// solveCmd prints both answers: the lowest location of the literal seeds
// and the minimal location reachable from the seed ranges.
func solveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print the lowest seed location and the minimal seed-range location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			best, ok := al.LowestLocation()
			if !ok {
				return errors.New("almanac has no seeds")
			}
			fmt.Fprintf(out, "Part 1: %d (%s)\n", best.Location, best)

			opts := append(a.cfg.SearchOptions(),
				almanac.WithContext(cmd.Context()),
				almanac.WithLogger(a.logger))
			loc, err := al.MinimalValidLocation(opts...)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			fmt.Fprintf(out, "Part 2: %d\n", loc)

			return nil
		},
	}
}
