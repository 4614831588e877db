package huffcode

import (
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encode returns the code for a single character.
func (c *Coder) Encode(ch rune) (Code, error) {
	hc, found := c.codes[ch]
	if !found {
		return "", errors.Wrapf(ErrInvalidArgument, "character %q is not in the alphabet", ch)
	}
	return hc, nil
}

// Compress encodes text as the concatenation of the codes of its characters.
// text must be valid UTF-8, and every character of it must be in the
// alphabet.
//
// On success the running totals grow by the number of characters in text and
// the number of bits returned.  Compress("") returns "" and still counts as a
// call.
func (c *Coder) Compress(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", errors.Wrap(ErrInvalidArgument, "text is not valid UTF-8")
	}

	var buf strings.Builder
	var numChars int64
	for _, ch := range text {
		hc, found := c.codes[ch]
		if !found {
			return "", errors.Wrapf(ErrInvalidArgument, "character %q is not in the alphabet", ch)
		}
		buf.WriteString(string(hc))
		numChars++
	}

	out := buf.String()
	c.totals.record(numChars, int64(len(out)))
	return out, nil
}

// buildCodes walks the tree rooted at root and returns the root-first path to
// every leaf.  We also compute minSize and maxSize while we're here.
func buildCodes(root *Node, numSymbols int) (codes map[rune]Code, minSize int, maxSize int) {
	assert.Assertf(!root.IsLeaf(), "code tree root is a leaf")

	codes = make(map[rune]Code, numSymbols)

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed.  path always holds the code of the
	// node most recently descended into.

	type stackItem struct {
		node *Node
		x    byte
	}

	stack := make([]stackItem, 0, log2int(numSymbols))
	var path Code
	var hasMinMax bool

	processChild := func(child *Node, bit byte) {
		assert.Assertf(child != nil, "internal node is missing a child")
		path = path.push(bit)
		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child})
			return
		}

		codes[child.char] = path
		size := path.Len()
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		path = path.pop()
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, '0')
		case 1:
			processChild(top.node.right, '1')
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			path = path.pop()
		}
	}

	assert.Assertf(path.Len() == 0, "unbalanced tree walk: leftover path %s", path)
	return codes, minSize, maxSize
}
