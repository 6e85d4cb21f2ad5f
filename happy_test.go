package primesieve

import (
	"errors"
	"testing"

	sieveerrors "github.com/tamirms/primesieve/errors"
)

func TestIsHappy(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{2, false}, // 2 → 4
		{4, false},
		{7, true}, // 7 → 49 → 97 → 130 → 10 → 1
		{10, true},
		{16, false},
		{19, true},
		{20, false},
		{89, false},
		{100, true},
		{7777777, true},
	}
	for _, tt := range tests {
		got, err := IsHappy(tt.n)
		if err != nil {
			t.Fatalf("IsHappy(%d): %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("IsHappy(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIsHappyRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -5, -100} {
		_, err := IsHappy(n)
		if !errors.Is(err, sieveerrors.ErrNotPositive) {
			t.Errorf("IsHappy(%d) error = %v, want ErrNotPositive", n, err)
		}
	}
}

// isHappyCycle classifies n by tracking every value seen, with no shortcut.
func isHappyCycle(n int) bool {
	seen := make(map[int]bool)
	for n != 1 && !seen[n] {
		seen[n] = true
		n = digitSquareSum(n)
	}
	return n == 1
}

// TestIsHappyAgreesWithCycleDetection checks the stop-at-4 shortcut against
// full cycle detection.
func TestIsHappyAgreesWithCycleDetection(t *testing.T) {
	for n := 1; n <= 20000; n++ {
		got, err := IsHappy(n)
		if err != nil {
			t.Fatalf("IsHappy(%d): %v", n, err)
		}
		if want := isHappyCycle(n); got != want {
			t.Fatalf("IsHappy(%d) = %v, cycle detection says %v", n, got, want)
		}
	}
}

func TestHappyNumbersBelow50(t *testing.T) {
	var got []int
	for n := 1; n < 50; n++ {
		if ok, _ := IsHappy(n); ok {
			got = append(got, n)
		}
	}
	want := []int{1, 7, 10, 13, 19, 23, 28, 31, 32, 44, 49}
	if len(got) != len(want) {
		t.Fatalf("happy numbers below 50 = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("happy numbers below 50 = %v, want %v", got, want)
		}
	}
}

func TestDigitSquareSum(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{7, 49},
		{49, 97},
		{97, 130},
		{130, 10},
		{10, 1},
		{999, 243},
	}
	for _, tt := range tests {
		if got := digitSquareSum(tt.n); got != tt.want {
			t.Errorf("digitSquareSum(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
