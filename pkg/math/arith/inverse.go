package arith

import (
	"fmt"
	"math/big"
)

// MultiplicativeInverse returns y ∈ [1, m-1] such that x⋅y = 1 (mod m).
//
// The search is exhaustive and only meant for small moduli. An error wrapping
// ErrNotInvertible is returned when gcd(x, m) ≠ 1, and ErrInvalidArgument when m < 2.
func MultiplicativeInverse(x, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("arith.MultiplicativeInverse: modulus %v must be at least 2: %w", m, ErrInvalidArgument)
	}
	xm := new(big.Int).Mod(x, m)
	var prod big.Int
	for y := big.NewInt(1); y.Cmp(m) < 0; y.Add(y, one) {
		prod.Mul(xm, y)
		if prod.Mod(&prod, m).Cmp(one) == 0 {
			return y, nil
		}
	}
	return nil, fmt.Errorf("arith.MultiplicativeInverse: %v mod %v: %w", x, m, ErrNotInvertible)
}
