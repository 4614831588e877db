package huffcode

import (
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffcode/minheap"
)

var (
	// ErrInvalidArgument is returned when an input is rejected, e.g. a
	// degenerate alphabet or a bit string that is not a valid
	// concatenation of codes.
	ErrInvalidArgument = minheap.ErrInvalidArgument

	// ErrEmptyCollection is returned by minheap.Queue operations on an
	// empty queue.
	ErrEmptyCollection = minheap.ErrEmptyCollection

	// ErrIllegalState is returned by CompressionRatio before any call to
	// Compress has succeeded.
	ErrIllegalState = errors.New("illegal state")
)
