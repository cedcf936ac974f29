package goal

import (
	"fmt"

	"github.com/garlicgarrison/blocky/board"
)

type visit int8

const (
	unvisited visit = iota - 1
	visitedOther
	visitedMatch
)

type cell struct {
	row int
	col int
}

var neighbours = []cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// BlobGoal rewards the largest group of target-colour unit cells connected
// through shared sides. Touching corners do not connect.
type BlobGoal struct {
	colour board.Colour
}

func (g BlobGoal) Kind() Kind           { return BLOB }
func (g BlobGoal) Colour() board.Colour { return g.colour }

func (g BlobGoal) Score(root *board.Block) int {
	return g.ScoreGrid(Flatten(root))
}

func (g BlobGoal) ScoreGrid(grid Grid) int {
	visited := newVisited(grid)

	best := 0
	for row := range grid {
		for col := range grid[row] {
			if size := g.undiscoveredBlobSize(row, col, grid, visited); size > best {
				best = size
			}
		}
	}
	return best
}

// newVisited returns an all-unvisited grid shaped like grid.
func newVisited(grid Grid) [][]visit {
	visited := make([][]visit, len(grid))
	for row := range grid {
		visited[row] = make([]visit, len(grid[row]))
		for col := range visited[row] {
			visited[row][col] = unvisited
		}
	}
	return visited
}

/*
	undiscoveredBlobSize returns the size of the blob of the goal colour that
	contains (row, col), counting only cells never visited before. Every cell it
	looks at is marked in visited, so a later call never counts it again. Cells
	out of bounds, already visited, or of another colour contribute 0.
*/
func (g BlobGoal) undiscoveredBlobSize(row, col int, grid Grid, visited [][]visit) int {
	if !grid.InBounds(row, col) || visited[row][col] != unvisited {
		return 0
	}
	if grid[row][col] != g.colour {
		visited[row][col] = visitedOther
		return 0
	}

	size := 0
	visited[row][col] = visitedMatch
	stack := []cell{{row, col}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		for _, d := range neighbours {
			r, c := cur.row+d.row, cur.col+d.col
			if !grid.InBounds(r, c) || visited[r][c] != unvisited {
				continue
			}
			if grid[r][c] != g.colour {
				visited[r][c] = visitedOther
				continue
			}
			visited[r][c] = visitedMatch
			stack = append(stack, cell{r, c})
		}
	}
	return size
}

func (g BlobGoal) Description() string {
	c := g.colour.Name()
	return fmt.Sprintf("Build the largest blob of %s. A blob is a group of cells connected by "+
		"shared sides; touching corners does not count. Your score is the number of unit cells "+
		"in the largest %s blob.", c, c)
}
