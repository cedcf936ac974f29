package goal

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/garlicgarrison/blocky/board"
)

var (
	ErrUnknownKind  = errors.New("unknown goal kind")
	ErrTooManyGoals = errors.New("more goals than palette colours")
)

type Kind string

const (
	PERIMETER Kind = "perimeter"
	BLOB      Kind = "blob"
)

var kinds = []Kind{PERIMETER, BLOB}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// A Goal scores a board for one target colour. Scores are never negative and
// scoring never modifies the board.
type Goal interface {
	Kind() Kind
	Colour() board.Colour
	Score(root *board.Block) int
	ScoreGrid(grid Grid) int
	Description() string
}

func New(kind Kind, colour board.Colour) (Goal, error) {
	switch kind {
	case PERIMETER:
		return PerimeterGoal{colour: colour}, nil
	case BLOB:
		return BlobGoal{colour: colour}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

/*
	Generate returns n goals of a single randomly chosen kind, each with a
	different palette colour.
*/
func Generate(rng *rand.Rand, n int) ([]Goal, error) {
	if n < 0 || n > len(board.Palette) {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrTooManyGoals, n, len(board.Palette))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	kind := kinds[rng.Intn(len(kinds))]
	colours := make([]board.Colour, len(board.Palette))
	copy(colours, board.Palette)
	rng.Shuffle(len(colours), func(i, j int) {
		colours[i], colours[j] = colours[j], colours[i]
	})

	goals := make([]Goal, 0, n)
	for _, c := range colours[:n] {
		g, err := New(kind, c)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}
