package goal

import (
	"github.com/garlicgarrison/blocky/board"
)

// Grid holds unit-cell colours row by row: grid[row][col], with (0, 0) the
// top-left cell of the board.
type Grid [][]board.Colour

func (g Grid) Len() int {
	return len(g)
}

// InBounds reports whether (row, col) names a cell. Rows may differ in length.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(g) && col < len(g[row])
}

/*
	Flatten expands a board into its 2^maxDepth by 2^maxDepth unit cells. A
	leaf paints its whole square of cells; an internal block hands each
	quadrant of its square to the matching child.
*/
func Flatten(root *board.Block) Grid {
	n := root.UnitSpan()
	cells := make([]board.Colour, n*n)
	grid := make(Grid, n)
	for row := range grid {
		grid[row] = cells[row*n : (row+1)*n]
	}

	fill(grid, root, 0, 0)
	return grid
}

func fill(grid Grid, b *board.Block, row, col int) {
	span := b.UnitSpan()
	if c, ok := b.Colour(); ok {
		for r := row; r < row+span; r++ {
			for k := col; k < col+span; k++ {
				grid[r][k] = c
			}
		}
		return
	}

	half := span / 2
	fill(grid, b.Child(board.UpperRight), row, col+half)
	fill(grid, b.Child(board.UpperLeft), row, col)
	fill(grid, b.Child(board.LowerLeft), row+half, col)
	fill(grid, b.Child(board.LowerRight), row+half, col+half)
}
