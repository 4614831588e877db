package huffcode

import (
	"math"

	"github.com/pkg/errors"
)

// NaiveBitsPerChar is the width of one uncompressed character, used as the
// baseline by CompressionRatio.
const NaiveBitsPerChar = 16

// Totals holds the running aggregates over all successful Compress calls on
// one Coder.
type Totals struct {
	// Calls is the number of successful Compress calls.
	Calls int64

	// InputChars is the total number of characters compressed.
	InputChars int64

	// OutputBits is the total number of '0'/'1' symbols produced.
	OutputBits int64
}

func (t *Totals) record(inputChars int64, outputBits int64) {
	t.Calls++
	t.InputChars += inputChars
	t.OutputBits += outputBits
}

// Totals returns the running totals so far.
func (c *Coder) Totals() Totals {
	return c.totals
}

// Reset zeroes the running totals.  The code itself is unaffected.
func (c *Coder) Reset() {
	c.totals = Totals{}
}

// CompressionRatio returns the total number of bits produced by Compress so
// far divided by NaiveBitsPerChar times the total number of characters
// compressed.
//
// CompressionRatio fails with ErrIllegalState if Compress has not yet
// succeeded.  If every call so far compressed the empty string, the ratio is
// undefined and NaN is returned.
func (c *Coder) CompressionRatio() (float64, error) {
	t := c.totals
	if t.Calls == 0 {
		return 0, errors.Wrap(ErrIllegalState, "no calls to Compress")
	}
	if t.InputChars == 0 {
		return math.NaN(), nil
	}
	return float64(t.OutputBits) / (NaiveBitsPerChar * float64(t.InputChars)), nil
}

// ExpectedEncodingLength returns the expected code length, in bits, of a
// character drawn from the alphabet's distribution: the sum over all
// characters of probability times code length.
func (c *Coder) ExpectedEncodingLength() float64 {
	total := float64(c.alpha.Total())
	var sum float64
	for _, ch := range c.alpha.Symbols() {
		sum += float64(c.alpha[ch]) / total * float64(c.codes[ch].Len())
	}
	return sum
}
