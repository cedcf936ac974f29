package goal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/garlicgarrison/blocky/board"
)

var (
	RR = board.RealRed
	OO = board.OldOlive
	MM = board.MelonMambo
	TT = board.TemptingTurquoise
	DD = board.DaffodilDelight
	BL = board.Black

	// placeholder for quadrants that get subdivided right after
	XX = board.White
)

func root(t *testing.T, size, maxDepth int) *board.Block {
	t.Helper()
	b, err := board.NewRoot(size, maxDepth, XX)
	require.NoError(t, err)
	return b
}

func split(t *testing.T, b *board.Block, colours ...board.Colour) {
	t.Helper()
	require.Len(t, colours, 4)
	require.NoError(t, b.Subdivide([4]board.Colour{colours[0], colours[1], colours[2], colours[3]}))
}

func loneBlock(t *testing.T, c board.Colour) *board.Block {
	t.Helper()
	b, err := board.NewRoot(1, 0, c)
	require.NoError(t, err)
	return b
}

func fourChildren(t *testing.T) *board.Block {
	b := root(t, 16, 1)
	split(t, b, TT, MM, RR, OO)
	return b
}

func sixteenGrandkids(t *testing.T) *board.Block {
	b := root(t, 16, 2)
	split(t, b, XX, XX, XX, XX)
	for _, child := range b.Children() {
		split(t, child, TT, MM, RR, OO)
	}
	return b
}

func mixedDepth3(t *testing.T) *board.Block {
	b := root(t, 64, 3)
	split(t, b, TT, DD, MM, OO)
	split(t, b.Child(board.UpperRight), TT, MM, RR, TT)
	split(t, b.Child(board.UpperLeft), TT, MM, RR, TT)
	split(t, b.Child(board.UpperLeft).Child(board.LowerRight), OO, OO, RR, OO)
	return b
}

func complicatedDepth2(t *testing.T) *board.Block {
	b := root(t, 16, 2)
	split(t, b, RR, XX, OO, BL)
	split(t, b.Child(board.UpperLeft), RR, OO, MM, BL)
	return b
}

func complicatedDepth3(t *testing.T) *board.Block {
	b := root(t, 64, 3)
	split(t, b, XX, XX, XX, XX)

	ur := b.Child(board.UpperRight)
	ul := b.Child(board.UpperLeft)
	ll := b.Child(board.LowerLeft)
	lr := b.Child(board.LowerRight)

	split(t, ur, TT, OO, RR, MM)
	split(t, ul, OO, MM, RR, XX)
	split(t, ul.Child(board.LowerRight), TT, MM, MM, RR)
	split(t, ll, OO, TT, OO, XX)
	split(t, ll.Child(board.LowerRight), RR, RR, TT, TT)
	split(t, lr, XX, OO, MM, TT)
	split(t, lr.Child(board.UpperRight), TT, RR, MM, RR)
	return b
}
