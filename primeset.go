package primesieve

import (
	"iter"
	"math"
	"slices"

	intbits "github.com/tamirms/primesieve/internal/bits"
)

// PrimeSet is the ordered collection of primes discovered by a sieve run.
//
// Primes are kept in strictly increasing insertion order, which doubles as
// discovery rank order: At(0) is 2, At(1) is 3, and so on. A companion bitmap
// answers membership queries in constant time. Only the sieve driver inserts;
// a returned PrimeSet is never mutated again and may be read concurrently.
type PrimeSet struct {
	primes []int
	member *intbits.Set
}

// newPrimeSet creates an empty set sized for primes up to max.
func newPrimeSet(max int) *PrimeSet {
	return &PrimeSet{
		primes: make([]int, 0, estimatePrimeCount(max)),
		member: intbits.NewSet(max + 1),
	}
}

// estimatePrimeCount returns a capacity hint for the number of primes up to
// n, based on the upper bound n/(ln n - 1.1).
func estimatePrimeCount(n int) int {
	if n < 2 {
		return 0
	}
	if n < 100 {
		return 25
	}
	return int(float64(n)/(math.Log(float64(n))-1.1)) + 1
}

// add appends p. The caller guarantees p is prime and larger than every
// element already present.
func (s *PrimeSet) add(p int) {
	s.primes = append(s.primes, p)
	s.member.Add(p)
}

// Len returns the number of primes in the set. Immediately after an insert
// this is the discovery rank of the newest prime.
func (s *PrimeSet) Len() int {
	return len(s.primes)
}

// Contains reports whether n is in the set.
func (s *PrimeSet) Contains(n int) bool {
	return s.member.Contains(n)
}

// At returns the prime with 0-based index i (discovery rank i+1).
// It panics if i is out of range.
func (s *PrimeSet) At(i int) int {
	return s.primes[i]
}

// Last returns the largest prime in the set, or 0 if the set is empty.
func (s *PrimeSet) Last() int {
	if len(s.primes) == 0 {
		return 0
	}
	return s.primes[len(s.primes)-1]
}

// All iterates the primes in increasing order.
func (s *PrimeSet) All() iter.Seq[int] {
	return slices.Values(s.primes)
}

// Values returns a copy of the primes in increasing order.
func (s *PrimeSet) Values() []int {
	return slices.Clone(s.primes)
}

// Equal reports whether both sets hold the same primes.
func (s *PrimeSet) Equal(other *PrimeSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return slices.Equal(s.primes, other.primes)
}
