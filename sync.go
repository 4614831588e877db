package huffcode

import (
	"sync"
)

// SyncCoder wraps a Coder with a mutex so that it may be shared between
// goroutines.
type SyncCoder struct {
	mu sync.Mutex
	c  *Coder
}

// NewSyncCoder wraps c.  The caller must not use c directly afterward.
func NewSyncCoder(c *Coder) *SyncCoder {
	return &SyncCoder{c: c}
}

// Compress is Coder.Compress under the lock.
func (sc *SyncCoder) Compress(text string) (string, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.c.Compress(text)
}

// Decompress is Coder.Decompress under the lock.
func (sc *SyncCoder) Decompress(bits string) (string, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.c.Decompress(bits)
}

// CompressionRatio is Coder.CompressionRatio under the lock.
func (sc *SyncCoder) CompressionRatio() (float64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.c.CompressionRatio()
}

// ExpectedEncodingLength is Coder.ExpectedEncodingLength.
func (sc *SyncCoder) ExpectedEncodingLength() float64 {
	// The alphabet and codes are immutable, so no lock is needed.
	return sc.c.ExpectedEncodingLength()
}

// Totals is Coder.Totals under the lock.
func (sc *SyncCoder) Totals() Totals {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.c.Totals()
}
