package arith

import (
	"fmt"
	"math/big"
)

// Jacobi returns the Jacobi symbol (a/b), for odd b ≥ 1 and 1 ≤ a ≤ b.
//
// The result is 1 or -1 whenever gcd(a, b) = 1, and 0 when a and b share a factor.
// An error wrapping ErrInvalidArgument is returned if b is even, a < 1 or a > b.
//
// The symbol is reduced with the rules
//
//	(1/b)  = 1
//	(2a/b) = (a/b)⋅(-1)^((b²-1)/8)
//	(a/b)  = (b mod a / a)⋅(-1)^((a-1)(b-1)/4)   for odd a
//
// where the signs are derived from the parity of halves of a and b, so that
// neither b² nor (a-1)(b-1) is ever formed.
func Jacobi(a, b *big.Int) (int, error) {
	if b.Sign() <= 0 || b.Bit(0) == 0 {
		return 0, fmt.Errorf("arith.Jacobi: (%v/%v): modulus must be odd and positive: %w", a, b, ErrInvalidArgument)
	}
	if a.Sign() <= 0 || a.Cmp(b) > 0 {
		return 0, fmt.Errorf("arith.Jacobi: (%v/%v): need 1 ≤ a ≤ b: %w", a, b, ErrInvalidArgument)
	}

	x, y := new(big.Int).Set(a), new(big.Int).Set(b)
	r := new(big.Int)
	sign := 1
	// invariant: 0 ≤ x ≤ y, y odd, and (a/b) = sign⋅(x/y)
	for {
		switch {
		case x.Sign() == 0:
			return 0, nil
		case x.Cmp(one) == 0:
			return sign, nil
		case x.Bit(0) == 0:
			x.Rsh(x, 1)
			sign *= signEven(y)
		default:
			sign *= signOdd(x, y)
			r.Mod(y, x)
			// (x, y) = (y mod x, x)
			x, y, r = r, x, y
		}
	}
}

// signEven returns (-1)^((b²-1)/8) for odd b.
//
// (b+1)/2 and (b-1)/2 are consecutive integers whose product is (b²-1)/4,
// so halving the even one leaves two factors whose product is (b²-1)/8.
// That product is odd iff both factors are.
func signEven(b *big.Int) int {
	part1 := new(big.Int).Add(b, one)
	part1.Rsh(part1, 1)
	part2 := new(big.Int).Rsh(b, 1) // (b-1)/2, since b is odd
	if part1.Bit(0) == 0 {
		part1.Rsh(part1, 1)
	} else {
		part2.Rsh(part2, 1)
	}
	if part1.Bit(0) == 1 && part2.Bit(0) == 1 {
		return -1
	}
	return 1
}

// signOdd returns (-1)^((a-1)(b-1)/4) for odd a and b.
//
// (a-1)(b-1)/4 = ((a-1)/2)⋅((b-1)/2) is odd iff both halves are odd, which for
// odd a is the second bit of a.
func signOdd(a, b *big.Int) int {
	if a.Bit(1) == 1 && b.Bit(1) == 1 {
		return -1
	}
	return 1
}
