package primesieve

import (
	"fmt"

	sieveerrors "github.com/tamirms/primesieve/errors"
)

// IsHappy reports whether n is a happy number: repeatedly replacing n with
// the sum of the squares of its decimal digits ends at 1.
//
// Every unhappy number falls into the single cycle
// 4 → 16 → 37 → 58 → 89 → 145 → 42 → 20 → 4, and no happy chain passes through
// 4, so reaching 4 is enough to stop. Zero and negative numbers have no
// classification and return ErrNotPositive.
func IsHappy(n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: %d", sieveerrors.ErrNotPositive, n)
	}
	for {
		switch n {
		case 1:
			return true, nil
		case 4:
			return false, nil
		}
		n = digitSquareSum(n)
	}
}

// digitSquareSum returns the sum of the squares of the decimal digits of n.
func digitSquareSum(n int) int {
	sum := 0
	for n > 0 {
		d := n % 10
		sum += d * d
		n /= 10
	}
	return sum
}
