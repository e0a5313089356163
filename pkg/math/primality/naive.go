package primality

import (
	"fmt"

	"github.com/taurusgroup/primality/pkg/math/arith"
)

// TrialDivision reports whether x is prime, by checking every possible divisor.
//
// This is only practical for small x, and serves as a reference for the
// probabilistic tests.
func TrialDivision(x uint64) bool {
	if x < 2 {
		return false
	}
	if x < 4 {
		return true
	}
	if x%2 == 0 {
		return false
	}
	for d := uint64(3); d <= x/d; d += 2 {
		if x%d == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly larger than x, for x ≥ 1.
//
// An error wrapping arith.ErrInvalidArgument is returned if x = 0, or if no
// prime larger than x fits in a uint64.
func NextPrime(x uint64) (uint64, error) {
	if x == 0 {
		return 0, fmt.Errorf("primality.NextPrime: %w", arith.ErrInvalidArgument)
	}
	// candidate wraps around to 0 past math.MaxUint64
	for candidate := x + 1; candidate > x; candidate++ {
		if TrialDivision(candidate) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("primality.NextPrime: no prime above %d fits in 64 bits: %w", x, arith.ErrInvalidArgument)
}
