package primality

import (
	"fmt"
	"io"
	"math/big"
	"sync/atomic"

	"github.com/taurusgroup/primality/internal/params"
	"github.com/taurusgroup/primality/pkg/math/arith"
	"github.com/taurusgroup/primality/pkg/math/sample"
	"github.com/taurusgroup/primality/pkg/pool"
)

// maxPrimeIterations is the number of candidates tried before giving up on Prime.
const maxPrimeIterations = 100_000

// ErrMaxPrimeIterations is returned when Prime fails to find a prime.
var ErrMaxPrimeIterations = fmt.Errorf("primality: failed to generate prime after %d candidates", maxPrimeIterations)

// Prime returns a random prime of exactly bits bits, such as a factor of an RSA modulus.
//
// Candidates come from sample.Candidate, and are accepted once they pass trials
// rounds of the Solovay–Strassen test. The search is spread over the workers of pl,
// which may be nil.
func Prime(rand io.Reader, bits, trials int, pl *pool.Pool) (*big.Int, error) {
	if bits < 3 {
		return nil, fmt.Errorf("primality.Prime: %d bits: %w", bits, arith.ErrInvalidArgument)
	}
	if trials < 1 {
		return nil, fmt.Errorf("primality.Prime: %d trials: %w", trials, arith.ErrInvalidArgument)
	}
	reader := pool.NewLockedReader(rand)
	attempts := int64(0)

	results := pl.Search(1, func() any {
		if atomic.AddInt64(&attempts, 1) > maxPrimeIterations {
			return ErrMaxPrimeIterations
		}
		p, err := sample.Candidate(reader, bits)
		if err != nil {
			return fmt.Errorf("primality.Prime: %w", err)
		}
		ok, err := SolovayStrassen(reader, p, trials)
		if err != nil {
			return fmt.Errorf("primality.Prime: %w", err)
		}
		if !ok {
			return nil
		}
		return p
	})
	switch r := results[0].(type) {
	case *big.Int:
		return r, nil
	case error:
		return nil, r
	default:
		return nil, fmt.Errorf("primality.Prime: unexpected search result %T", r)
	}
}

// Batch tests every candidate with SolovayStrassen, spreading the work over the
// workers of pl, which may be nil.
//
// All workers draw their witnesses from rand. The first error encountered, in
// the order of candidates, is returned.
func Batch(rand io.Reader, candidates []*big.Int, trials int, pl *pool.Pool) ([]bool, error) {
	reader := pool.NewLockedReader(rand)
	results := pl.Parallelize(len(candidates), func(i int) any {
		ok, err := SolovayStrassen(reader, candidates[i], trials)
		if err != nil {
			return fmt.Errorf("primality.Batch: candidate %d: %w", i, err)
		}
		return ok
	})
	out := make([]bool, len(candidates))
	for i, r := range results {
		switch r := r.(type) {
		case bool:
			out[i] = r
		case error:
			return nil, r
		}
	}
	return out, nil
}

// RSA generates two distinct primes p, q of bits bits each, using
// params.RSATrials rounds, and returns them with the modulus n = p⋅q.
//
// The returned Modulus knows its factorization, and exponentiates with the CRT.
func RSA(rand io.Reader, bits int, pl *pool.Pool) (p, q *big.Int, n *arith.Modulus, err error) {
	// below 5 bits, sample.Candidate can only produce a single prime
	if bits < 5 {
		return nil, nil, nil, fmt.Errorf("primality.RSA: %d bits: %w", bits, arith.ErrInvalidArgument)
	}
	for {
		if p, err = Prime(rand, bits, params.RSATrials, pl); err != nil {
			return nil, nil, nil, err
		}
		if q, err = Prime(rand, bits, params.RSATrials, pl); err != nil {
			return nil, nil, nil, err
		}
		if p.Cmp(q) != 0 {
			break
		}
	}
	return p, q, arith.ModulusFromFactors(p, q), nil
}
