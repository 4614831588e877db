package huffcode

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huffcode/minheap"
)

// BuildTree builds the Huffman code tree for alpha and returns its root.
//
// Each step merges the two smallest nodes under CompareNodes; the smaller one
// becomes the left child.
func BuildTree(alpha Alphabet) (*Node, error) {
	if err := alpha.Validate(); err != nil {
		return nil, err
	}

	total := alpha.Total()
	q := minheap.NewFunc[*Node, *Node](CompareNodes)
	for _, ch := range alpha.Symbols() {
		leaf := newLeaf(ch, alpha[ch], total)
		err := q.Insert(leaf, leaf)
		assert.Assertf(err == nil, "Insert leaf %v: %v", leaf, err)
	}

	for q.Len() > 1 {
		a, err := q.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin: %v", err)
		b, err := q.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin: %v", err)

		parent := newInternal(a, b)
		err = q.Insert(parent, parent)
		assert.Assertf(err == nil, "Insert internal %v: %v", parent, err)
	}

	root, err := q.ExtractMin()
	assert.Assertf(err == nil, "ExtractMin: %v", err)
	assert.Assertf(root.count == total, "root count %d != total %d", root.count, total)
	return root, nil
}
