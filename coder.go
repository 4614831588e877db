package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Coder compresses and decompresses text with a fixed Huffman code.
//
// The alphabet and code tree never change after construction; only the
// running totals reported by CompressionRatio are updated, by Compress.
// Coder is not safe for concurrent use; see SyncCoder.
type Coder struct {
	alpha   Alphabet
	root    *Node
	codes   map[rune]Code
	minSize int
	maxSize int
	totals  Totals
}

// NewFromSeed constructs a Coder whose alphabet and frequencies are taken
// from the characters of seed.
func NewFromSeed(seed string) (*Coder, error) {
	alpha, err := AlphabetFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return newCoder(alpha)
}

// NewFromAlphabet constructs a Coder from a frequency table.  The table is
// copied; later changes to alpha do not affect the Coder.
func NewFromAlphabet(alpha Alphabet) (*Coder, error) {
	if err := alpha.Validate(); err != nil {
		return nil, err
	}
	return newCoder(alpha.Clone())
}

func newCoder(alpha Alphabet) (*Coder, error) {
	root, err := BuildTree(alpha)
	if err != nil {
		return nil, err
	}

	c := &Coder{alpha: alpha, root: root}
	c.codes, c.minSize, c.maxSize = buildCodes(root, len(alpha))
	return c, nil
}

// Root returns the root of the code tree.
func (c *Coder) Root() *Node {
	return c.root
}

// Alphabet returns a copy of the frequency table this Coder was built from.
func (c *Coder) Alphabet() Alphabet {
	return c.alpha.Clone()
}

// NumSymbols returns the number of characters in the alphabet.
func (c *Coder) NumSymbols() int {
	return len(c.alpha)
}

// MinCodeLen is the bit length of the shortest code.
func (c *Coder) MinCodeLen() int {
	return c.minSize
}

// MaxCodeLen is the bit length of the longest code.
func (c *Coder) MaxCodeLen() int {
	return c.maxSize
}

// CodeLengths returns the bit length of each character's code, which is also
// the depth of its leaf in the code tree.
func (c *Coder) CodeLengths() map[rune]int {
	out := make(map[rune]int, len(c.codes))
	for ch, hc := range c.codes {
		out[ch] = hc.Len()
	}
	return out
}

// String returns a one-line summary of this Coder.
func (c *Coder) String() string {
	return fmt.Sprintf("(Huffman coder with %d symbols, with coded lengths of %d .. %d bits)", len(c.alpha), c.minSize, c.maxSize)
}

var _ fmt.Stringer = (*Coder)(nil)

// Dump writes a programmer-readable debugging dump of the Coder's current
// state to the given writer.
func (c *Coder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Coder{\n")
	fmt.Fprintf(&buf, "\tMinCodeLen() = %d\n", c.minSize)
	fmt.Fprintf(&buf, "\tMaxCodeLen() = %d\n", c.maxSize)
	fmt.Fprintf(&buf, "\tExpectedEncodingLength() = %s\n", strconv.FormatFloat(c.ExpectedEncodingLength(), 'g', 6, 64))
	for _, ch := range c.alpha.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", ch, c.codes[ch])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
