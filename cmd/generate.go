package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garlicgarrison/blocky/board"
	"github.com/garlicgarrison/blocky/goal"
)

func newGenerateCmd() *cobra.Command {
	cfg := board.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random board and print its unit cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, err := board.Generate(nil, cfg)
			if err != nil {
				return err
			}
			logger.Debug("generated board", "size", cfg.Size, "max_depth", cfg.MaxDepth, "seed", cfg.Seed)

			grid := goal.Flatten(root)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderGrid(grid))
			fmt.Fprintln(out, renderLegend(grid))
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "board side length")
	cmd.Flags().IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "maximum block depth")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	return cmd
}
