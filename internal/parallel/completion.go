package parallel

import (
	"math/bits"
	"sync/atomic"
)

// CompletionSet records which of a fixed number of items have finished,
// using an atomic bitmap with one bit per item.
//
// All methods are safe for concurrent use without external synchronization.
type CompletionSet struct {
	// Bit i of word i/64 is item i.
	words []atomic.Uint64
	n     int
}

// NewCompletionSet creates a set for n items, none of them complete.
// Returns nil if n is not positive.
func NewCompletionSet(n int) *CompletionSet {
	if n <= 0 {
		return nil
	}
	return &CompletionSet{
		words: make([]atomic.Uint64, (n+63)/64),
		n:     n,
	}
}

// Mark records item i as complete. Out-of-range indices are ignored.
func (s *CompletionSet) Mark(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.words[i/64].Or(1 << (i & 63))
}

// IsComplete reports whether item i has been marked.
func (s *CompletionSet) IsComplete(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i/64].Load()&(1<<(i&63)) != 0
}

// Count returns the number of complete items.
func (s *CompletionSet) Count() int {
	count := 0
	for i := range s.words {
		count += bits.OnesCount64(s.words[i].Load())
	}
	return count
}

// All reports whether every item is complete.
func (s *CompletionSet) All() bool {
	return s.Count() == s.n
}

// Len returns the number of items tracked.
func (s *CompletionSet) Len() int {
	return s.n
}

// Bools returns the set as one flag per item.
func (s *CompletionSet) Bools() []bool {
	out := make([]bool, s.n)
	for i := range out {
		out[i] = s.IsComplete(i)
	}
	return out
}
