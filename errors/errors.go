// Package errors defines all exported error sentinels for the primesieve library.
//
// This is the single source of truth for error values. The top-level
// primesieve package and both commands import from here, so errors.Is
// checks work across package boundaries.
package errors

import "errors"

// Classification errors
var (
	ErrNotPositive   = errors.New("primesieve: number is neither happy nor unhappy (must be positive)")
	ErrNegativeBound = errors.New("primesieve: upper bound must not be negative")
)

// Fingerprint errors
var (
	ErrUnknownHash         = errors.New("primesieve: unknown hash algorithm")
	ErrFingerprintMismatch = errors.New("primesieve: repeated sieve produced a different fingerprint")
)

// Batch errors
var (
	ErrNoJobs         = errors.New("primesieve: batch has no jobs")
	ErrInvalidWorkers = errors.New("primesieve: worker count must be positive")
)
