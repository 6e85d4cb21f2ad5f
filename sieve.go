package primesieve

import (
	"strings"

	"go.uber.org/zap"
)

// Sink receives the primes a sieve run emits, in emission order.
// It is called synchronously from the goroutine running the sieve.
type Sink func(prime int)

// Filter selects which primes are emitted. Enabled switches are combined
// with AND; the zero value emits every prime.
type Filter struct {
	// Super emits only primes whose discovery rank is prime.
	Super bool
	// Happy emits only happy primes.
	Happy bool
	// Sexy emits only primes p for which p-6 is also prime, and catches up
	// on the left partner p-6 when it was skipped earlier.
	Sexy bool
}

// String returns the enabled switches joined with "+", or "none".
func (f Filter) String() string {
	var parts []string
	if f.Super {
		parts = append(parts, "super")
	}
	if f.Happy {
		parts = append(parts, "happy")
	}
	if f.Sexy {
		parts = append(parts, "sexy")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Sieve finds every prime in [2, max] by trial division against the primes
// found so far, and calls sink for each prime that passes filter.
//
// Candidates are tested in increasing order against the known primes in
// insertion order. A candidate no known prime divides is prime and is added
// to the set before the filters run, so the returned set is complete
// regardless of filter. Filters are checked super, then happy, then sexy.
//
// A max below 2 (including zero and negative bounds) yields an empty set and
// no emissions. A nil sink discards emissions.
//
// Sieve runs to completion without suspension; each call owns its own set, so
// concurrent calls are independent.
func Sieve(max int, filter Filter, sink Sink, opts ...SieveOption) *PrimeSet {
	cfg := defaultSieveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	emitted := 0
	emit := func(p int) {
		emitted++
		if sink != nil {
			sink(p)
		}
	}

	primes := newPrimeSet(max)

nextCandidate:
	for candidate := 2; candidate <= max; candidate++ {
		for _, p := range primes.primes {
			if candidate%p == 0 {
				continue nextCandidate
			}
		}
		primes.add(candidate)

		if filter.Super && !isSuper(primes) {
			continue
		}
		if filter.Happy {
			// candidate >= 2, so IsHappy cannot fail here.
			if happy, _ := IsHappy(candidate); !happy {
				continue
			}
		}
		if filter.Sexy {
			pairing := pairSexy(primes, candidate)
			if !pairing.sexy {
				continue
			}
			if pairing.catchUp {
				emit(candidate - 6)
			}
		}
		emit(candidate)
	}

	cfg.logger.Debug("sieve complete",
		zap.Int("max", max),
		zap.Stringer("filter", filter),
		zap.Int("primes", primes.Len()),
		zap.Int("emitted", emitted))

	return primes
}
