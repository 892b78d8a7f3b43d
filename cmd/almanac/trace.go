package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// traceCmd prints every intermediate value for the given seeds, or for every
// declared seed when none are given.
func traceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace [seed...]",
		Short: "Show a seed's value at every pipeline stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := a.load()
			if err != nil {
				return err
			}
			seeds := al.Seeds()
			if len(args) > 0 {
				seeds = seeds[:0]
				for _, arg := range args {
					s, err := strconv.ParseUint(arg, 10, 64)
					if err != nil {
						return fmt.Errorf("invalid seed %q: %w", arg, err)
					}
					seeds = append(seeds, s)
				}
			}
			for _, s := range seeds {
				fmt.Fprintln(cmd.OutOrStdout(), al.Trace(s))
			}
			return nil
		},
	}
}
