package goal

import (
	"fmt"

	"github.com/garlicgarrison/blocky/board"
)

// PerimeterGoal rewards target-colour unit cells on the outer ring of the
// board. Corner cells sit on two edges and count twice.
type PerimeterGoal struct {
	colour board.Colour
}

func (g PerimeterGoal) Kind() Kind           { return PERIMETER }
func (g PerimeterGoal) Colour() board.Colour { return g.colour }

func (g PerimeterGoal) Score(root *board.Block) int {
	return g.ScoreGrid(Flatten(root))
}

// ScoreGrid walks the top and bottom rows and the first and last cell of every
// row. Each edge is walked in full, so corners are visited twice and a lone
// cell is all four corners at once.
func (g PerimeterGoal) ScoreGrid(grid Grid) int {
	n := grid.Len()
	if n == 0 {
		return 0
	}

	score := 0
	for _, c := range grid[0] {
		score += g.matches(c)
	}
	for _, c := range grid[n-1] {
		score += g.matches(c)
	}
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		score += g.matches(row[0]) + g.matches(row[len(row)-1])
	}
	return score
}

func (g PerimeterGoal) matches(c board.Colour) int {
	if c == g.colour {
		return 1
	}
	return 0
}

func (g PerimeterGoal) Description() string {
	c := g.colour.Name()
	return fmt.Sprintf("Put as many %s unit cells as possible on the outer perimeter of the board. "+
		"Your score is the number of %s cells on the perimeter; corner cells count twice.", c, c)
}
