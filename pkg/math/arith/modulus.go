package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus and enables faster modular exponentiation when
// the factorization is known, as is the case for an RSA modulus right after
// its primes have been generated.
// When n = p⋅q, xᵉ (mod n) can be computed with only two exponentiations
// with p and q respectively.
type Modulus struct {
	// represents modulus n
	*saferith.Modulus
	// n = p⋅q
	p, q *saferith.Modulus
	// pInv = p⁻¹ (mod q)
	pNat, pInv *saferith.Nat
}

// ModulusFromN creates a simple wrapper around a given modulus n.
func ModulusFromN(n *big.Int) *Modulus {
	return &Modulus{
		Modulus: saferith.ModulusFromNat(new(saferith.Nat).SetBig(n, n.BitLen())),
	}
}

// ModulusFromFactors creates the necessary cached values to accelerate
// exponentiation mod n = p⋅q.
//
// p and q must be distinct primes.
func ModulusFromFactors(p, q *big.Int) *Modulus {
	pNat := new(saferith.Nat).SetBig(p, p.BitLen())
	qNat := new(saferith.Nat).SetBig(q, q.BitLen())
	nNat := new(saferith.Nat).Mul(pNat, qNat, -1)
	qMod := saferith.ModulusFromNat(qNat)
	return &Modulus{
		Modulus: saferith.ModulusFromNat(nNat),
		p:       saferith.ModulusFromNat(pNat),
		q:       qMod,
		pNat:    pNat,
		pInv:    new(saferith.Nat).ModInverse(pNat, qMod),
	}
}

// N returns the modulus as a big.Int.
func (n *Modulus) N() *big.Int {
	return n.Modulus.Big()
}

// Exp returns xᵉ (mod n), for x, e ≥ 0.
//
// The result is the same as ModExp(x, e, n.N()), but the computation runs in
// time independent of the values of x and e.
func (n *Modulus) Exp(x, e *big.Int) *big.Int {
	xNat := new(saferith.Nat).SetBig(x, x.BitLen())
	eNat := new(saferith.Nat).SetBig(e, e.BitLen())
	if n.hasFactorization() {
		var xp, xq saferith.Nat
		xp.Mod(xNat, n.p)
		xq.Mod(xNat, n.q)
		xp.Exp(&xp, eNat, n.p) // x₁ = xᵉ (mod p)
		xq.Exp(&xq, eNat, n.q) // x₂ = xᵉ (mod q)
		// r = x₁ + p⋅[p⁻¹ (mod q)]⋅[x₂ - x₁] (mod n)
		r := xq.ModSub(&xq, &xp, n.Modulus)
		r.ModMul(r, n.pInv, n.Modulus)
		r.ModMul(r, n.pNat, n.Modulus)
		r.ModAdd(r, &xp, n.Modulus)
		return r.Big()
	}
	xNat.Mod(xNat, n.Modulus)
	return new(saferith.Nat).Exp(xNat, eNat, n.Modulus).Big()
}

func (n Modulus) hasFactorization() bool {
	return n.p != nil && n.q != nil && n.pNat != nil && n.pInv != nil
}
