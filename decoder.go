package huffcode

import (
	"strings"

	"github.com/pkg/errors"
)

// Decompress decodes a string of '0' and '1' symbols produced by Compress on
// a Coder with the same alphabet.
//
// Decompress fails with ErrInvalidArgument if bits holds any other symbol,
// follows a path that leaves the tree, or ends in the middle of a code.
func (c *Coder) Decompress(bits string) (string, error) {
	var buf strings.Builder
	cursor := c.root
	for i := 0; i < len(bits); i++ {
		var next *Node
		switch bits[i] {
		case '0':
			next = cursor.left
		case '1':
			next = cursor.right
		default:
			return "", errors.Wrapf(ErrInvalidArgument, "symbol %q at offset %d is not '0' or '1'", bits[i], i)
		}
		if next == nil {
			return "", errors.Wrapf(ErrInvalidArgument, "undecodable path at offset %d", i)
		}

		cursor = next
		if cursor.IsLeaf() {
			buf.WriteRune(cursor.char)
			cursor = c.root
		}
	}

	if cursor != c.root {
		return "", errors.Wrapf(ErrInvalidArgument, "bit string ends in the middle of a code after %d symbols", len(bits))
	}
	return buf.String(), nil
}
