package primesieve

import (
	"encoding/binary"
	"fmt"
	"hash"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	sieveerrors "github.com/tamirms/primesieve/errors"
)

// HashAlgorithm identifies the 64-bit hash used to fingerprint primes and
// emission sequences.
type HashAlgorithm uint16

const (
	// HashXXH64 uses xxHash64.
	HashXXH64 HashAlgorithm = 0

	// HashXXH3 uses xxHash3-64.
	HashXXH3 HashAlgorithm = 1

	// HashMurmur3 uses the low 64 bits of MurmurHash3 x64-128.
	HashMurmur3 HashAlgorithm = 2
)

// String returns the algorithm name.
func (a HashAlgorithm) String() string {
	switch a {
	case HashXXH64:
		return "xxh64"
	case HashXXH3:
		return "xxh3"
	case HashMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// ParseHashAlgorithm maps a name returned by HashAlgorithm.String back to
// the algorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	switch name {
	case "xxh64", "xxhash":
		return HashXXH64, nil
	case "xxh3":
		return HashXXH3, nil
	case "murmur3":
		return HashMurmur3, nil
	default:
		return 0, fmt.Errorf("%w: %q (use xxh64, xxh3 or murmur3)", sieveerrors.ErrUnknownHash, name)
	}
}

// newHash returns a fresh streaming hasher for algo.
func newHash(algo HashAlgorithm) (hash.Hash64, error) {
	switch algo {
	case HashXXH64:
		return xxhash.New(), nil
	case HashXXH3:
		return xxh3.New(), nil
	case HashMurmur3:
		return murmur3.New64(), nil
	default:
		return nil, fmt.Errorf("%w: id %d", sieveerrors.ErrUnknownHash, algo)
	}
}

// writeInt folds v into h as 8 little-endian bytes.
func writeInt(h hash.Hash64, buf *[8]byte, v int) {
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, _ = h.Write(buf[:]) // hash.Hash.Write never returns an error
}

// Recorder is a Sink that keeps every emitted prime in order and a running
// digest of the sequence. Two runs with the same arguments produce the same
// Sum64; a reordered or different sequence almost surely does not.
//
// A Recorder is NOT safe for concurrent use.
type Recorder struct {
	algo   HashAlgorithm
	h      hash.Hash64
	buf    [8]byte
	values []int
}

// NewRecorder creates an empty recorder that digests with algo.
func NewRecorder(algo HashAlgorithm) (*Recorder, error) {
	h, err := newHash(algo)
	if err != nil {
		return nil, err
	}
	return &Recorder{algo: algo, h: h}, nil
}

// Sink returns the recorder as a Sink.
func (r *Recorder) Sink() Sink {
	return r.record
}

func (r *Recorder) record(p int) {
	r.values = append(r.values, p)
	writeInt(r.h, &r.buf, p)
}

// Algorithm returns the hash the recorder digests with.
func (r *Recorder) Algorithm() HashAlgorithm {
	return r.algo
}

// Count returns the number of emissions recorded.
func (r *Recorder) Count() int {
	return len(r.values)
}

// Values returns a copy of the recorded emissions in emission order.
func (r *Recorder) Values() []int {
	return slices.Clone(r.values)
}

// Sum64 returns the digest of the emissions recorded so far.
func (r *Recorder) Sum64() uint64 {
	return r.h.Sum64()
}

// SetFingerprint digests the primes of set in increasing order.
func SetFingerprint(set *PrimeSet, algo HashAlgorithm) (uint64, error) {
	h, err := newHash(algo)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	for p := range set.All() {
		writeInt(h, &buf, p)
	}
	return h.Sum64(), nil
}

// Fingerprint summarizes one sieve run.
type Fingerprint struct {
	Primes    int    // number of primes found
	Emitted   int    // number of sink calls
	SetSum    uint64 // digest of the prime set
	EmitSum   uint64 // digest of the emission sequence
	Algorithm HashAlgorithm
}

// fingerprintRun performs one sieve run with a fresh recorder.
func fingerprintRun(max int, filter Filter, algo HashAlgorithm, opts ...SieveOption) (Fingerprint, *PrimeSet, *Recorder, error) {
	rec, err := NewRecorder(algo)
	if err != nil {
		return Fingerprint{}, nil, nil, err
	}
	primes := Sieve(max, filter, rec.Sink(), opts...)
	setSum, err := SetFingerprint(primes, algo)
	if err != nil {
		return Fingerprint{}, nil, nil, err
	}
	fp := Fingerprint{
		Primes:    primes.Len(),
		Emitted:   rec.Count(),
		SetSum:    setSum,
		EmitSum:   rec.Sum64(),
		Algorithm: algo,
	}
	return fp, primes, rec, nil
}

// VerifyDeterministic runs the sieve twice with independent state and checks
// that both runs return the same primes and emit the same sequence. It
// returns the fingerprint of the first run, or ErrFingerprintMismatch.
func VerifyDeterministic(max int, filter Filter, algo HashAlgorithm, opts ...SieveOption) (Fingerprint, error) {
	first, firstSet, firstRec, err := fingerprintRun(max, filter, algo, opts...)
	if err != nil {
		return Fingerprint{}, err
	}
	second, secondSet, secondRec, err := fingerprintRun(max, filter, algo, opts...)
	if err != nil {
		return Fingerprint{}, err
	}
	if first != second || !firstSet.Equal(secondSet) || !slices.Equal(firstRec.values, secondRec.values) {
		return first, fmt.Errorf("%w: max=%d filter=%s: %016x/%016x vs %016x/%016x",
			sieveerrors.ErrFingerprintMismatch, max, filter,
			first.SetSum, first.EmitSum, second.SetSum, second.EmitSum)
	}
	return first, nil
}
