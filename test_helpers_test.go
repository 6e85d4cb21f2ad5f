package primesieve

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns an RNG seeded from the test name, so each test draws a
// stable sequence independent of test ordering.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// isPrimeNaive is the ground-truth primality test: odd divisors up to sqrt(n).
func isPrimeNaive(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// primesUpTo lists the primes in [2, max] with isPrimeNaive.
func primesUpTo(max int) []int {
	var out []int
	for n := 2; n <= max; n++ {
		if isPrimeNaive(n) {
			out = append(out, n)
		}
	}
	return out
}

// collect runs Sieve and returns the set together with the emissions.
func collect(max int, filter Filter, opts ...SieveOption) (*PrimeSet, []int) {
	var emitted []int
	primes := Sieve(max, filter, func(p int) { emitted = append(emitted, p) }, opts...)
	return primes, emitted
}
