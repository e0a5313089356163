package arith

import "math/big"

var one = big.NewInt(1)

// ModExp returns Mᵉ (mod n), for M ≥ 0, e ≥ 0 and n ≥ 1.
//
// The exponent is scanned from its most significant bit down, squaring the
// accumulator at every bit and multiplying by M when the bit is set.
// Every intermediate value is reduced mod n, so the accumulator never grows
// beyond n².
//
// When e = 0 no bit is scanned and the result is 1 (mod n), which is 0 when n = 1.
func ModExp(M, e, n *big.Int) *big.Int {
	m := new(big.Int).Mod(M, n)
	c := new(big.Int).Mod(one, n)
	for i := e.BitLen() - 1; i >= 0; i-- {
		// c = c² (mod n)
		c.Mul(c, c)
		c.Mod(c, n)
		if e.Bit(i) == 1 {
			// c = c⋅M (mod n)
			c.Mul(c, m)
			c.Mod(c, n)
		}
	}
	return c
}
