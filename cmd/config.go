package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/blocky/board"
	"github.com/garlicgarrison/blocky/goal"
)

var ErrInvalidScript = errors.New("invalid script")

type GoalConfig struct {
	Kind   goal.Kind    `yaml:"kind"`
	Colour board.Colour `yaml:"colour"`
}

// Step aims one move at the block found at Location and Level. A paint step
// without a colour paints with the goal colour.
type Step struct {
	Location board.Position `yaml:"location"`
	Level    int            `yaml:"level"`
	Action   board.Action   `yaml:"action"`
	Colour   *board.Colour  `yaml:"colour"`
}

func (s Step) Move(goalColour board.Colour) board.Move {
	m := board.Move{Action: s.Action, Colour: goalColour}
	if s.Colour != nil {
		m.Colour = *s.Colour
	}
	return m
}

type Script struct {
	Board board.Config `yaml:"board"`
	Goal  GoalConfig   `yaml:"goal"`
	Steps []Step       `yaml:"steps"`
}

func defaultScript() Script {
	return Script{
		Board: board.DefaultConfig(),
		Goal: GoalConfig{
			Kind:   goal.BLOB,
			Colour: board.RealRed,
		},
	}
}

func parseScript(data []byte) (Script, error) {
	script := defaultScript()
	if err := yaml.UnmarshalStrict(data, &script); err != nil {
		return Script{}, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := script.Board.Validate(); err != nil {
		return Script{}, err
	}
	for i, step := range script.Steps {
		if step.Action == "" {
			return Script{}, fmt.Errorf("%w: step %d has no action", ErrInvalidScript, i)
		}
		if step.Level < 0 || step.Level > script.Board.MaxDepth {
			return Script{}, fmt.Errorf("%w: step %d level %d outside 0..%d", ErrInvalidScript, i, step.Level, script.Board.MaxDepth)
		}
	}
	return script, nil
}

func loadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	return parseScript(data)
}
