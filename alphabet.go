package huffcode

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Alphabet maps each character to its number of occurrences.
type Alphabet map[rune]int

// AlphabetFromSeed counts the characters of seed.  The seed must contain at
// least two distinct characters.
func AlphabetFromSeed(seed string) (Alphabet, error) {
	if seed == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "seed is empty")
	}
	if !utf8.ValidString(seed) {
		return nil, errors.Wrap(ErrInvalidArgument, "seed is not valid UTF-8")
	}

	alpha := make(Alphabet)
	for _, ch := range seed {
		alpha[ch]++
	}

	if len(alpha) < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "seed %q creates an alphabet of 1 character", seed)
	}
	return alpha, nil
}

// Validate checks that alpha is usable for building a code: it must hold at
// least two valid characters, each with a positive count.
func (alpha Alphabet) Validate() error {
	if alpha == nil {
		return errors.Wrap(ErrInvalidArgument, "alphabet is nil")
	}
	if len(alpha) < 2 {
		return errors.Wrapf(ErrInvalidArgument, "alphabet has %d characters, need at least 2", len(alpha))
	}
	for _, ch := range alpha.Symbols() {
		if !utf8.ValidRune(ch) {
			return errors.Wrapf(ErrInvalidArgument, "%U is not a valid character", ch)
		}
		if count := alpha[ch]; count <= 0 {
			return errors.Wrapf(ErrInvalidArgument, "character %q has non-positive count %d", ch, count)
		}
	}
	return nil
}

// Total returns the sum of all counts.
func (alpha Alphabet) Total() int {
	var total int
	for _, count := range alpha {
		total += count
	}
	return total
}

// Symbols returns the characters of alpha in ascending order.
func (alpha Alphabet) Symbols() []rune {
	out := make([]rune, 0, len(alpha))
	for ch := range alpha {
		out = append(out, ch)
	}
	slices.Sort(out)
	return out
}

// Probability returns the normalized frequency of ch, or 0 if ch is not in
// the alphabet.
func (alpha Alphabet) Probability(ch rune) float64 {
	total := alpha.Total()
	if total == 0 {
		return 0
	}
	return float64(alpha[ch]) / float64(total)
}

// Clone returns a copy of alpha.
func (alpha Alphabet) Clone() Alphabet {
	if alpha == nil {
		return nil
	}
	out := make(Alphabet, len(alpha))
	for ch, count := range alpha {
		out[ch] = count
	}
	return out
}
