package board

import (
	"math/rand"
)

type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Rotatable reports whether Rotate and Swap can act on b.
func (b *Block) Rotatable() bool {
	return !b.IsLeaf()
}

// Smashable reports whether b is a leaf with room for two more levels below it.
func (b *Block) Smashable() bool {
	return b.IsLeaf() && b.level < b.maxDepth-1
}

// Paintable reports whether b is a unit cell whose colour would change.
func (b *Block) Paintable(colour Colour) bool {
	return b.IsLeaf() && b.level == b.maxDepth && b.colour != colour
}

// Combinable reports whether all four children of b are leaves.
func (b *Block) Combinable() bool {
	if b.IsLeaf() {
		return false
	}
	for _, child := range b.children {
		if !child.IsLeaf() {
			return false
		}
	}
	return true
}

/*
	Rotate turns the four children of b one quarter turn. Only the arrangement
	at this level changes: each child subtree keeps its contents and is moved
	to the quadrant it lands in.
*/
func (b *Block) Rotate(dir Direction) bool {
	if !b.Rotatable() {
		return false
	}

	c := b.children
	switch dir {
	case Clockwise:
		b.children = []*Block{c[UpperLeft], c[LowerLeft], c[LowerRight], c[UpperRight]}
	case CounterClockwise:
		b.children = []*Block{c[LowerRight], c[UpperRight], c[UpperLeft], c[LowerLeft]}
	default:
		return false
	}

	b.moveTo(b.position)
	return true
}

// Swap mirrors the children of b. Horizontal trades the top pair with the
// bottom pair, Vertical trades the left pair with the right pair.
func (b *Block) Swap(axis Axis) bool {
	if !b.Rotatable() {
		return false
	}

	c := b.children
	switch axis {
	case Horizontal:
		b.children = []*Block{c[LowerRight], c[LowerLeft], c[UpperLeft], c[UpperRight]}
	case Vertical:
		b.children = []*Block{c[UpperLeft], c[UpperRight], c[LowerRight], c[LowerLeft]}
	default:
		return false
	}

	b.moveTo(b.position)
	return true
}

// Smash splits a leaf into four children with random palette colours. A nil
// rng draws from the math/rand package source.
func (b *Block) Smash(rng *rand.Rand) bool {
	if !b.Smashable() {
		return false
	}

	var colours [4]Colour
	for i := range colours {
		colours[i] = randomColour(rng)
	}
	b.children = b.newChildren(colours)
	b.colour = Colour{}
	return true
}

// Paint recolours a unit cell. It fails on blocks above the unit level and when
// the cell already has colour, leaving b unchanged.
func (b *Block) Paint(colour Colour) bool {
	if !b.Paintable(colour) {
		return false
	}

	b.colour = colour
	return true
}

// Combine collapses four leaf children into one leaf of their most common
// colour. Ties go to the colour that appears first in quadrant order.
func (b *Block) Combine() bool {
	if !b.Combinable() {
		return false
	}

	counts := make(map[Colour]int, 4)
	for _, child := range b.children {
		counts[child.colour]++
	}

	best := b.children[0].colour
	for _, child := range b.children {
		if counts[child.colour] > counts[best] {
			best = child.colour
		}
	}

	b.colour = best
	b.children = nil
	return true
}

func randomColour(rng *rand.Rand) Colour {
	if rng == nil {
		return Palette[rand.Intn(len(Palette))]
	}
	return Palette[rng.Intn(len(Palette))]
}
