// Package primesieve enumerates primes up to a bound with an incremental
// trial-division sieve and classifies each prime as it is discovered.
//
// Three independent filters can be enabled for a run: super primes (the
// 1-based discovery rank is itself prime), happy primes (the iterated sum of
// squared decimal digits reaches 1) and sexy primes (the prime differs by 6
// from another prime). Primes that satisfy every enabled filter are handed to
// a caller-supplied Sink. The returned PrimeSet always holds every prime up
// to the bound, whatever the filters.
//
// # Basic Usage
//
// Collecting all primes:
//
//	primes := primesieve.Sieve(600, primesieve.Filter{}, nil)
//	fmt.Println(primes.Len()) // 109
//
// Printing only the super primes:
//
//	primesieve.Sieve(600, primesieve.Filter{Super: true}, func(p int) {
//	    fmt.Println(p)
//	})
//
// Recording and fingerprinting the emitted sequence:
//
//	rec, err := primesieve.NewRecorder(primesieve.HashXXH3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	primesieve.Sieve(600, primesieve.Filter{Sexy: true}, rec.Sink())
//	fmt.Printf("%d primes, fingerprint %016x\n", rec.Count(), rec.Sum64())
//
// # Emission Order
//
// With the sexy filter enabled, a prime p whose partner p-6 was not emitted
// as the right member of an earlier pair causes p-6 to be emitted just before
// p. Emissions can therefore arrive out of increasing numeric order. When the
// sexy filter is combined with the super or happy filters the catch-up
// emission bypasses those filters for p-6, so the combined result is not the
// plain intersection of the single-filter results.
//
// # Package Structure
//
//   - Public API: sieve.go (Sieve, Filter, Sink), primeset.go (PrimeSet)
//   - Predicates: happy.go (IsHappy), classify.go (super and sexy checks)
//   - Configuration: options.go (SieveOption, BatchOption, With* functions)
//   - Fingerprints: fingerprint.go (HashAlgorithm, Recorder, VerifyDeterministic)
//   - Concurrency: batch.go (RunBatch over independent runs)
//   - Membership bitmap: internal/bits/
//   - Errors: errors/ (sentinels shared with the commands)
package primesieve
