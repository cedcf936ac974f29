package board

// Contains reports whether loc lies in b. Top and left edges belong to the
// block, bottom and right edges do not.
func (b *Block) Contains(loc Position) bool {
	return b.position.X <= loc.X && loc.X < b.position.X+b.size &&
		b.position.Y <= loc.Y && loc.Y < b.position.Y+b.size
}

// At returns the block at the given level that contains loc. When the tree is
// shallower than level at loc, the deepest block containing loc is returned.
// It returns nil when loc is outside b.
func (b *Block) At(loc Position, level int) *Block {
	if !b.Contains(loc) {
		return nil
	}

	cur := b
	for cur.level < level && !cur.IsLeaf() {
		var next *Block
		for _, child := range cur.children {
			if child.Contains(loc) {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
