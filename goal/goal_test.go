package goal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/blocky/board"
)

func TestNew(t *testing.T) {
	p, err := New(PERIMETER, RR)
	require.NoError(t, err)
	assert.Equal(t, PERIMETER, p.Kind())
	assert.Equal(t, RR, p.Colour())
	assert.IsType(t, PerimeterGoal{}, p)

	b, err := New(BLOB, OO)
	require.NoError(t, err)
	assert.Equal(t, BLOB, b.Kind())
	assert.IsType(t, BlobGoal{}, b)

	_, err = New("diagonal", OO)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Blob ")
	require.NoError(t, err)
	assert.Equal(t, BLOB, k)

	_, err = ParseKind("corners")
	assert.ErrorIs(t, err, ErrUnknownKind)

	var out struct {
		Kind Kind `yaml:"kind"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("kind: perimeter\n"), &out))
	assert.Equal(t, PERIMETER, out.Kind)
	assert.ErrorIs(t, yaml.Unmarshal([]byte("kind: nope\n"), &out), ErrUnknownKind)
}

func TestDescriptionMentionsColour(t *testing.T) {
	for _, kind := range []Kind{PERIMETER, BLOB} {
		g, err := New(kind, board.DaffodilDelight)
		require.NoError(t, err)
		assert.Contains(t, g.Description(), "Daffodil Delight")
	}

	p, _ := New(PERIMETER, RR)
	assert.Contains(t, p.Description(), "corner")
	b, _ := New(BLOB, RR)
	assert.Contains(t, b.Description(), "touching corners does not count")
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for n := 0; n <= len(board.Palette); n++ {
		goals, err := Generate(rng, n)
		require.NoError(t, err)
		require.Len(t, goals, n)

		seen := make(map[board.Colour]bool)
		for _, g := range goals {
			assert.Equal(t, goals[0].Kind(), g.Kind(), "all goals share one kind")
			assert.Contains(t, board.Palette, g.Colour())
			assert.False(t, seen[g.Colour()], "colours are distinct")
			seen[g.Colour()] = true
		}
	}

	_, err := Generate(rng, len(board.Palette)+1)
	assert.ErrorIs(t, err, ErrTooManyGoals)
	_, err = Generate(nil, -1)
	assert.ErrorIs(t, err, ErrTooManyGoals)
}

func TestScoreDoesNotMutate(t *testing.T) {
	b := complicatedDepth3(t)
	before := b.Copy()
	for _, kind := range []Kind{PERIMETER, BLOB} {
		for _, c := range []board.Colour{RR, OO, MM, TT} {
			g, err := New(kind, c)
			require.NoError(t, err)
			first := g.Score(b)
			assert.GreaterOrEqual(t, first, 0)
			assert.Equal(t, first, g.Score(b))
			assert.Equal(t, first, g.ScoreGrid(Flatten(b)))
		}
	}
	assert.True(t, before.Equal(b))
}
