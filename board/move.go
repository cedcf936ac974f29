package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action")

type Action string

const (
	RotateClockwise        Action = "rotate_clockwise"
	RotateCounterClockwise Action = "rotate_counter_clockwise"
	SwapHorizontal         Action = "swap_horizontal"
	SwapVertical           Action = "swap_vertical"
	SmashAction            Action = "smash"
	PaintAction            Action = "paint"
	CombineAction          Action = "combine"
	Pass                   Action = "pass"
)

var actions = []Action{
	RotateClockwise,
	RotateCounterClockwise,
	SwapHorizontal,
	SwapVertical,
	SmashAction,
	PaintAction,
	CombineAction,
}

// Actions lists every action that edits the board, i.e. all but Pass.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if a == Pass {
		return a, nil
	}
	for _, known := range actions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a *Action) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Move is one structural edit. Colour is only read by PaintAction.
type Move struct {
	Action Action `yaml:"action"`
	Colour Colour `yaml:"colour"`
}

func (m Move) String() string {
	if m.Action == PaintAction {
		return fmt.Sprintf("%s %s", m.Action, m.Colour)
	}
	return string(m.Action)
}

// Valid reports whether Apply would succeed on b, without touching b.
func (m Move) Valid(b *Block) bool {
	switch m.Action {
	case RotateClockwise, RotateCounterClockwise, SwapHorizontal, SwapVertical:
		return b.Rotatable()
	case SmashAction:
		return b.Smashable()
	case PaintAction:
		return b.Paintable(m.Colour)
	case CombineAction:
		return b.Combinable()
	case Pass:
		return true
	default:
		return false
	}
}

// Apply performs the move on b and reports whether it succeeded. A failed
// move leaves b unchanged.
func (m Move) Apply(b *Block, rng *rand.Rand) bool {
	switch m.Action {
	case RotateClockwise:
		return b.Rotate(Clockwise)
	case RotateCounterClockwise:
		return b.Rotate(CounterClockwise)
	case SwapHorizontal:
		return b.Swap(Horizontal)
	case SwapVertical:
		return b.Swap(Vertical)
	case SmashAction:
		return b.Smash(rng)
	case PaintAction:
		return b.Paint(m.Colour)
	case CombineAction:
		return b.Combine()
	case Pass:
		return true
	default:
		return false
	}
}
