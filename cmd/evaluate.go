package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/garlicgarrison/blocky/board"
	"github.com/garlicgarrison/blocky/evalpool"
	"github.com/garlicgarrison/blocky/goal"
)

func newEvaluateCmd() *cobra.Command {
	var (
		path    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score every scripted move on its own copy of the starting board",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			script, err := loadScript(path)
			if err != nil {
				return err
			}
			root, err := board.Generate(nil, script.Board)
			if err != nil {
				return err
			}
			g, err := goal.New(script.Goal.Kind, script.Goal.Colour)
			if err != nil {
				return err
			}

			pool, err := evalpool.New(g, workers, logger)
			if err != nil {
				return err
			}

			candidates := make([]evalpool.Candidate, len(script.Steps))
			for i, step := range script.Steps {
				candidates[i] = evalpool.Candidate{
					Location: step.Location,
					Level:    step.Level,
					Move:     step.Move(script.Goal.Colour),
				}
			}

			results, err := pool.Evaluate(cmd.Context(), root, candidates, script.Board.Seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(g.Description()))
			fmt.Fprintf(out, "%s %s\n", styleDim.Render("current score"), styleValue.Render(fmt.Sprint(g.Score(root))))
			for i, res := range results {
				score := styleDim.Render("invalid")
				if res.Valid {
					score = styleValue.Render(fmt.Sprint(res.Score))
				}
				fmt.Fprintf(out, "%2d  %-28s %-12s level %d  %s\n", i, res.Move, res.Location, res.Level, score)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "config/board.yaml", "script file")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of concurrent scorers")
	return cmd
}
