package arith

import (
	"fmt"
	"math/big"
)

// GCD returns the greatest common divisor of two positive integers p and q,
// using the Euclidean algorithm.
//
// The inputs are not modified. An error wrapping ErrInvalidArgument is returned
// if p ≤ 0 or q ≤ 0.
func GCD(p, q *big.Int) (*big.Int, error) {
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return nil, fmt.Errorf("arith.GCD: gcd(%v, %v): inputs must be positive: %w", p, q, ErrInvalidArgument)
	}
	a, b := new(big.Int).Set(p), new(big.Int).Set(q)
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	r := new(big.Int).Mod(a, b)
	for r.Sign() != 0 {
		// (a, b) = (b, a mod b)
		a, b, r = b, r, a
		r.Mod(a, b)
	}
	return b, nil
}

// IsCoprime returns true if gcd(a,b) = 1.
//
// Non positive inputs are never coprime.
func IsCoprime(a, b *big.Int) bool {
	gcd, err := GCD(a, b)
	if err != nil {
		return false
	}
	return gcd.Cmp(one) == 0
}
