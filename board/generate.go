package board

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var ErrInvalidConfig = errors.New("invalid board config")

// SplitDecay controls how quickly random boards stop subdividing: a block at
// level L splits with probability exp(-SplitDecay * L).
const SplitDecay = 0.25

type Config struct {
	Size     int   `yaml:"size"`
	MaxDepth int   `yaml:"max_depth"`
	Seed     int64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Size:     256,
		MaxDepth: 3,
		Seed:     1,
	}
}

func (cfg Config) Validate() error {
	if err := checkGeometry(Position{}, cfg.Size, 0, cfg.MaxDepth); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

/*
	Generate builds a random board. Starting from the root, a block that is not
	yet at max depth splits into four with probability exp(-SplitDecay * level),
	so the root always splits and deeper blocks split less and less often. Every
	leaf gets a random palette colour.
*/
func Generate(rng *rand.Rand, cfg Config) (*Block, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	root := &Block{
		size:     cfg.Size,
		maxDepth: cfg.MaxDepth,
	}
	grow(root, rng)
	return root, nil
}

func grow(b *Block, rng *rand.Rand) {
	if b.level < b.maxDepth && rng.Float64() < math.Exp(-SplitDecay*float64(b.level)) {
		b.children = b.newChildren([4]Colour{})
		for _, child := range b.children {
			grow(child, rng)
		}
		return
	}
	b.colour = randomColour(rng)
}
