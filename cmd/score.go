package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/garlicgarrison/blocky/board"
	"github.com/garlicgarrison/blocky/goal"
)

func newScoreCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Apply a scripted sequence of moves and score the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			script, err := loadScript(path)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(script.Board.Seed))
			root, err := board.Generate(rng, script.Board)
			if err != nil {
				return err
			}

			applied := 0
			for i, step := range script.Steps {
				move := step.Move(script.Goal.Colour)
				target := root.At(step.Location, step.Level)
				if target == nil {
					logger.Warn("no block at location", "step", i, "location", step.Location)
					continue
				}
				if !move.Apply(target, rng) {
					logger.Info("move rejected", "step", i, "move", move, "level", target.Level())
					continue
				}
				applied++
				logger.Debug("move applied", "step", i, "move", move, "location", target.Position(), "level", target.Level())
			}
			if err := root.Validate(); err != nil {
				return err
			}
			logger.Info("script finished", "steps", len(script.Steps), "applied", applied)

			grid := goal.Flatten(root)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderGrid(grid))
			fmt.Fprintln(out, renderLegend(grid))

			for _, kind := range []goal.Kind{goal.PERIMETER, goal.BLOB} {
				g, err := goal.New(kind, script.Goal.Colour)
				if err != nil {
					return err
				}
				label := string(kind)
				if kind == script.Goal.Kind {
					label += " (goal)"
				}
				fmt.Fprintf(out, "%s %s\n", styleTitle.Render(fmt.Sprintf("%-18s", label)), styleValue.Render(fmt.Sprint(g.ScoreGrid(grid))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "config/board.yaml", "script file")
	return cmd
}
