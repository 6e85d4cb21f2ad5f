package bits

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

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

func TestZeroValueIsEmpty(t *testing.T) {
	var s Set
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	for _, v := range []int{-1, 0, 1, 63, 64, 1 << 20} {
		if s.Contains(v) {
			t.Errorf("empty set contains %d", v)
		}
	}
}

// TestAgainstMap verifies Add/Contains/Len agree with a map for random values,
// including values that straddle word boundaries.
func TestAgainstMap(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 5000

	s := NewSet(128)
	want := make(map[int]struct{})
	for i := 0; i < iterations; i++ {
		v := rng.IntN(10_000)
		s.Add(v)
		want[v] = struct{}{}
	}

	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for v := 0; v < 10_100; v++ {
		_, ok := want[v]
		if got := s.Contains(v); got != ok {
			t.Fatalf("Contains(%d) = %v, want %v", v, got, ok)
		}
	}
}

func TestWordBoundaries(t *testing.T) {
	s := NewSet(0)
	for _, v := range []int{0, 63, 64, 127, 128} {
		s.Add(v)
		s.Add(v) // idempotent
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	for _, v := range []int{1, 62, 65, 126, 129} {
		if s.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
}

func TestNegativeIgnored(t *testing.T) {
	s := NewSet(-10)
	s.Add(-6)
	if s.Len() != 0 || s.Contains(-6) {
		t.Fatal("negative value should be ignored")
	}
}
