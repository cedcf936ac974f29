package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoot(t *testing.T, size, maxDepth int, colour Colour) *Block {
	t.Helper()
	b, err := NewRoot(size, maxDepth, colour)
	require.NoError(t, err)
	return b
}

func mustSubdivide(t *testing.T, b *Block, colours ...Colour) {
	t.Helper()
	require.Len(t, colours, 4)
	require.NoError(t, b.Subdivide([4]Colour{colours[0], colours[1], colours[2], colours[3]}))
}

// fourChildren is a depth-1 board: UR turquoise, UL mambo, LL red, LR olive.
func fourChildren(t *testing.T) *Block {
	b := mustRoot(t, 16, 1, Black)
	mustSubdivide(t, b, TemptingTurquoise, MelonMambo, RealRed, OldOlive)
	return b
}

// nestedDepth2 has a subdivided upper-left quadrant.
func nestedDepth2(t *testing.T) *Block {
	b := mustRoot(t, 16, 2, Black)
	mustSubdivide(t, b, RealRed, White, OldOlive, Black)
	mustSubdivide(t, b.Child(UpperLeft), RealRed, OldOlive, MelonMambo, Black)
	return b
}

func walk(b *Block, fn func(*Block)) {
	fn(b)
	for _, child := range b.Children() {
		walk(child, fn)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		size     int
		level    int
		maxDepth int
		wantErr  bool
	}{
		{"single cell", Position{}, 1, 0, 0, false},
		{"root depth 3", Position{}, 64, 0, 3, false},
		{"child at offset", Position{32, 32}, 32, 1, 3, false},
		{"negative x", Position{-1, 0}, 8, 0, 1, true},
		{"negative level", Position{}, 8, -1, 1, true},
		{"negative depth", Position{}, 8, 0, -1, true},
		{"level past depth", Position{}, 8, 3, 2, true},
		{"zero size", Position{}, 0, 0, 0, true},
		{"indivisible size", Position{}, 750, 0, 3, true},
		{"depth too large", Position{}, 8, 0, 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.pos, tt.size, tt.level, tt.maxDepth, RealRed)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBlock)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.True(t, b.IsLeaf())
			c, ok := b.Colour()
			assert.True(t, ok)
			assert.Equal(t, RealRed, c)
			assert.NoError(t, b.Validate())
		})
	}
}

func TestSubdivide(t *testing.T) {
	b := fourChildren(t)
	require.NoError(t, b.Validate())

	_, ok := b.Colour()
	assert.False(t, ok, "internal block must not report a colour")

	want := []Position{{8, 0}, {0, 0}, {0, 8}, {8, 8}}
	for i, child := range b.Children() {
		assert.Equal(t, want[i], child.Position())
		assert.Equal(t, 8, child.Size())
		assert.Equal(t, 1, child.Level())
		assert.Equal(t, 1, child.MaxDepth())
	}

	assert.ErrorIs(t, b.Subdivide([4]Colour{}), ErrInvalidBlock, "already subdivided")
	assert.ErrorIs(t, b.Child(UpperRight).Subdivide([4]Colour{}), ErrInvalidBlock, "at max depth")
}

func TestChildrenReturnsCopy(t *testing.T) {
	b := fourChildren(t)
	children := b.Children()
	children[0] = nil
	assert.NotNil(t, b.Child(UpperRight))
	assert.Nil(t, b.Child(Quadrant(7)))
	assert.Nil(t, b.Child(UpperRight).Children())
}

func TestCopy(t *testing.T) {
	b := nestedDepth2(t)
	c := b.Copy()

	require.True(t, b.Equal(c))
	assert.NotSame(t, b, c)
	for i, child := range b.Children() {
		assert.True(t, child.Equal(c.Children()[i]))
		assert.NotSame(t, child, c.Children()[i])
	}

	unit := c.Child(UpperLeft).Child(UpperRight)
	require.True(t, unit.Paint(DaffodilDelight))

	orig, _ := b.Child(UpperLeft).Child(UpperRight).Colour()
	assert.Equal(t, RealRed, orig, "painting the copy must not reach the original")
	assert.False(t, b.Equal(c))
}

func TestEqual(t *testing.T) {
	a := nestedDepth2(t)
	b := nestedDepth2(t)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	var nilBlock *Block
	assert.True(t, nilBlock.Equal(nil))

	b.Child(LowerRight).colour = White
	assert.False(t, a.Equal(b))

	shallow := mustRoot(t, 16, 2, Black)
	deep := mustRoot(t, 16, 3, Black)
	assert.False(t, shallow.Equal(deep), "max depth is part of equality")
}

func TestValidateDetectsBrokenTiling(t *testing.T) {
	b := fourChildren(t)
	b.children[0].position = Position{1, 1}
	assert.ErrorIs(t, b.Validate(), ErrInvalidBlock)

	b = fourChildren(t)
	b.children = b.children[:3]
	assert.ErrorIs(t, b.Validate(), ErrInvalidBlock)
}

func TestLeafIffColour(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		b, err := Generate(rng, Config{Size: 64, MaxDepth: 4})
		require.NoError(t, err)

		walk(b, func(n *Block) {
			_, hasColour := n.Colour()
			assert.Equal(t, n.IsLeaf(), hasColour)
			if !n.IsLeaf() {
				assert.Len(t, n.Children(), 4)
			}
		})
	}
}
