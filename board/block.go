package board

import (
	"errors"
	"fmt"
)

var ErrInvalidBlock = errors.New("invalid block")

// maxSupportedDepth keeps 1<<depth inside an int on every platform.
const maxSupportedDepth = 30

type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

type Quadrant int

// Children are always stored in this order.
const (
	UpperRight Quadrant = iota
	UpperLeft
	LowerLeft
	LowerRight
)

/*
	A Block is one square of the board. A leaf carries a colour; an internal
	block carries exactly four children, one per quadrant, each half the size
	and one level deeper. Every node of a tree shares the same maxDepth.
*/
type Block struct {
	position Position
	size     int
	level    int
	maxDepth int
	colour   Colour
	children []*Block
}

// New builds a leaf block. Arguments that break the board invariants are a
// caller defect and are reported as ErrInvalidBlock.
func New(pos Position, size, level, maxDepth int, colour Colour) (*Block, error) {
	if err := checkGeometry(pos, size, level, maxDepth); err != nil {
		return nil, err
	}

	return &Block{
		position: pos,
		size:     size,
		level:    level,
		maxDepth: maxDepth,
		colour:   colour,
	}, nil
}

// NewRoot builds a single-colour board of the given size with its top-left
// corner at the origin.
func NewRoot(size, maxDepth int, colour Colour) (*Block, error) {
	return New(Position{}, size, 0, maxDepth, colour)
}

func checkGeometry(pos Position, size, level, maxDepth int) error {
	switch {
	case pos.X < 0 || pos.Y < 0:
		return fmt.Errorf("%w: negative position %s", ErrInvalidBlock, pos)
	case level < 0 || maxDepth < 0:
		return fmt.Errorf("%w: negative level %d or max depth %d", ErrInvalidBlock, level, maxDepth)
	case maxDepth > maxSupportedDepth:
		return fmt.Errorf("%w: max depth %d exceeds %d", ErrInvalidBlock, maxDepth, maxSupportedDepth)
	case level > maxDepth:
		return fmt.Errorf("%w: level %d deeper than max depth %d", ErrInvalidBlock, level, maxDepth)
	case size <= 0:
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidBlock, size)
	case size%(1<<(maxDepth-level)) != 0:
		return fmt.Errorf("%w: size %d not divisible by 2^%d", ErrInvalidBlock, size, maxDepth-level)
	}
	return nil
}

func (b *Block) Position() Position { return b.position }
func (b *Block) Size() int          { return b.size }
func (b *Block) Level() int         { return b.level }
func (b *Block) MaxDepth() int      { return b.maxDepth }

// Colour returns the colour of a leaf. The second result is false for
// internal blocks, which have no colour of their own.
func (b *Block) Colour() (Colour, bool) {
	if !b.IsLeaf() {
		return Colour{}, false
	}
	return b.colour, true
}

func (b *Block) IsLeaf() bool {
	return len(b.children) == 0
}

// Children returns the four children in quadrant order, or nil for a leaf.
// The slice is a copy; the blocks are not.
func (b *Block) Children() []*Block {
	if b.IsLeaf() {
		return nil
	}
	children := make([]*Block, len(b.children))
	copy(children, b.children)
	return children
}

func (b *Block) Child(q Quadrant) *Block {
	if b.IsLeaf() || q < UpperRight || q > LowerRight {
		return nil
	}
	return b.children[q]
}

// UnitSpan is the side length of the block measured in unit cells.
func (b *Block) UnitSpan() int {
	return 1 << (b.maxDepth - b.level)
}

func (b *Block) childSize() int {
	return b.size / 2
}

func (b *Block) childPositions() [4]Position {
	x, y := b.position.X, b.position.Y
	half := b.childSize()
	return [4]Position{
		UpperRight: {x + half, y},
		UpperLeft:  {x, y},
		LowerLeft:  {x, y + half},
		LowerRight: {x + half, y + half},
	}
}

func (b *Block) newChildren(colours [4]Colour) []*Block {
	positions := b.childPositions()
	children := make([]*Block, 4)
	for i := range children {
		children[i] = &Block{
			position: positions[i],
			size:     b.childSize(),
			level:    b.level + 1,
			maxDepth: b.maxDepth,
			colour:   colours[i],
		}
	}
	return children
}

// Subdivide turns a leaf into an internal block whose four leaf children take
// the given colours in quadrant order. It is meant for building boards; moves
// go through Smash instead.
func (b *Block) Subdivide(colours [4]Colour) error {
	if !b.IsLeaf() {
		return fmt.Errorf("%w: block at %s already has children", ErrInvalidBlock, b.position)
	}
	if b.level >= b.maxDepth {
		return fmt.Errorf("%w: block at %s is at max depth %d", ErrInvalidBlock, b.position, b.maxDepth)
	}

	b.children = b.newChildren(colours)
	b.colour = Colour{}
	return nil
}

// moveTo places the block at pos and drags its whole subtree along.
func (b *Block) moveTo(pos Position) {
	b.position = pos
	if b.IsLeaf() {
		return
	}
	positions := b.childPositions()
	for i, child := range b.children {
		child.moveTo(positions[i])
	}
}

// Copy returns a deep copy that shares no nodes with b.
func (b *Block) Copy() *Block {
	c := &Block{
		position: b.position,
		size:     b.size,
		level:    b.level,
		maxDepth: b.maxDepth,
		colour:   b.colour,
	}
	if b.IsLeaf() {
		return c
	}

	c.children = make([]*Block, len(b.children))
	for i, child := range b.children {
		c.children[i] = child.Copy()
	}
	return c
}

// Equal reports structural equality: same geometry, depth, colour and
// recursively equal children.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.position != other.position ||
		b.size != other.size ||
		b.level != other.level ||
		b.maxDepth != other.maxDepth ||
		len(b.children) != len(other.children) {
		return false
	}

	if b.IsLeaf() {
		return b.colour == other.colour
	}
	for i := range b.children {
		if !b.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Validate walks the tree and returns the first broken invariant.
func (b *Block) Validate() error {
	if err := checkGeometry(b.position, b.size, b.level, b.maxDepth); err != nil {
		return err
	}
	if b.IsLeaf() {
		return nil
	}
	if len(b.children) != 4 {
		return fmt.Errorf("%w: block at %s has %d children", ErrInvalidBlock, b.position, len(b.children))
	}

	positions := b.childPositions()
	for i, child := range b.children {
		if child == nil {
			return fmt.Errorf("%w: block at %s has a nil child", ErrInvalidBlock, b.position)
		}
		if child.position != positions[i] ||
			child.size != b.childSize() ||
			child.level != b.level+1 ||
			child.maxDepth != b.maxDepth {
			return fmt.Errorf("%w: child %d of block at %s does not tile its quadrant", ErrInvalidBlock, i, b.position)
		}
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}
