// Package bits provides a growable membership bitmap over non-negative ints.
package bits

import "math/bits"

const wordBits = 64

// Set is a bitmap of non-negative integers. The zero value is an empty set.
// A Set is not safe for concurrent mutation.
type Set struct {
	words []uint64
}

// NewSet returns a set with room for values in [0, capacity) before growing.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{words: make([]uint64, 0, (capacity+wordBits-1)/wordBits)}
}

// Add inserts v. Negative values are ignored.
func (s *Set) Add(v int) {
	if v < 0 {
		return
	}
	w := v / wordBits
	for len(s.words) <= w {
		s.words = append(s.words, 0)
	}
	s.words[w] |= 1 << uint(v%wordBits)
}

// Contains reports whether v is in the set. Negative values never are.
func (s *Set) Contains(v int) bool {
	if v < 0 {
		return false
	}
	w := v / wordBits
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<uint(v%wordBits)) != 0
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}
