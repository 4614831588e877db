package huffcode

import (
	"cmp"
	"fmt"
	"strconv"
)

// InvalidChar is returned by Node.Char for internal nodes.
const InvalidChar = rune(-1)

// Node is a node of a Huffman code tree.  A Node is either a leaf, holding a
// character, or an internal node, holding exactly two children.  Nodes are
// immutable once built.
type Node struct {
	char  rune
	count int
	total int
	left  *Node
	right *Node
}

func newLeaf(ch rune, count int, total int) *Node {
	return &Node{char: ch, count: count, total: total}
}

func newInternal(left *Node, right *Node) *Node {
	return &Node{
		char:  InvalidChar,
		count: left.count + right.count,
		total: left.total,
		left:  left,
		right: right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Char returns the character held by a leaf, or InvalidChar for an internal
// node.
func (n *Node) Char() rune {
	return n.char
}

// Count returns the number of occurrences covered by this node's subtree.
func (n *Node) Count() int {
	return n.count
}

// Freq returns the normalized frequency of this node, in (0, 1].
func (n *Node) Freq() float64 {
	return float64(n.count) / float64(n.total)
}

// Left returns the left child ("0" branch), or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child ("1" branch), or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// LeftSpineLeaf returns the leaf reached by always following the left child.
func (n *Node) LeftSpineLeaf() *Node {
	for !n.IsLeaf() {
		n = n.left
	}
	return n
}

// String returns a short representation of this node.
func (n *Node) String() string {
	freq := strconv.FormatFloat(n.Freq(), 'g', -1, 64)
	if n.IsLeaf() {
		return fmt.Sprintf("(%q, %s)", n.char, freq)
	}
	return fmt.Sprintf("(*, %s)", freq)
}

var _ fmt.Stringer = (*Node)(nil)

// CompareNodes is the total order used to build code trees.  Lower
// frequency sorts first.  On a frequency tie, two leaves sort by character
// code, a leaf sorts before an internal node, and two internal nodes sort by
// their left-spine leaves.  Frequencies are compared exactly, as ratios of
// occurrence counts, so two nodes tie only when their counts are equal.
//
// All nodes compared must come from the same alphabet.
func CompareNodes(a, b *Node) int {
	// Counts share one denominator, so comparing them compares the
	// frequencies exactly.
	if c := cmp.Compare(a.count, b.count); c != 0 {
		return c
	}

	aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
	switch {
	case aLeaf && bLeaf:
		return cmp.Compare(a.char, b.char)
	case aLeaf:
		return -1
	case bLeaf:
		return 1
	default:
		return CompareNodes(a.LeftSpineLeaf(), b.LeftSpineLeaf())
	}
}
