package primesieve

// isSuper reports whether the prime just inserted into set is a super prime,
// i.e. whether its discovery rank (the set's current size) is itself prime.
func isSuper(set *PrimeSet) bool {
	return set.Contains(set.Len())
}

// sexyPairing describes how a newly inserted prime p pairs with p-6.
type sexyPairing struct {
	// sexy is true when p-6 is a known prime.
	sexy bool
	// catchUp is true when p-6 must be emitted before p: p-6 was not
	// itself the right member of a pair (p-12 is not prime), so it was
	// skipped when it was first discovered.
	catchUp bool
}

// pairSexy checks the prime p, just inserted into set, against its left
// partner. The sieve is monotonic, so if p-6 is prime it is already present.
func pairSexy(set *PrimeSet, p int) sexyPairing {
	if !set.Contains(p - 6) {
		return sexyPairing{}
	}
	return sexyPairing{
		sexy:    true,
		catchUp: p > 6 && !set.Contains(p-12),
	}
}
