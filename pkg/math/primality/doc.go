// Package primality implements the Solovay–Strassen probabilistic primality test,
// together with the small helpers needed to generate RSA primes with it.
//
// A candidate b is tested by drawing witnesses a ∈ [3, b-1] and checking Euler's criterion
//
//	(a/b) = a⁽ᵇ⁻¹⁾ᐟ² (mod b)
//
// where (a/b) is the Jacobi symbol. A prime passes every round. A composite fails
// each round with probability at least 1/2, either because a shares a factor with b,
// or because the criterion does not hold.
package primality
