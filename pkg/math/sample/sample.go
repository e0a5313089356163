package sample

import (
	"fmt"
	"io"
	"math/big"

	"github.com/taurusgroup/primality/internal/params"
	"golang.org/x/crypto/sha3"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

// ErrRangeEmpty is returned when asked to sample from an empty range.
var ErrRangeEmpty = fmt.Errorf("sample: range is empty")

// readBits fills buf from rand, retrying failed reads.
func readBits(rand io.Reader, buf []byte) error {
	var err error
	for i := 0; i < maxIterations; i++ {
		if _, err = io.ReadFull(rand, buf); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: last read error: %v", ErrMaxIterations, err)
}

// IntervalN returns a uniformly random integer in [0, n), for n ≥ 1.
//
// Values are drawn on exactly n.BitLen() bits and rejected until they fall
// below n, so fewer than two draws are needed on average.
func IntervalN(rand io.Reader, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("sample.IntervalN: [0, %v): %w", n, ErrRangeEmpty)
	}
	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8)
	// mask the excess bits of the most significant byte
	topMask := byte(0xFF >> (8*len(buf) - bits))
	out := new(big.Int)
	for i := 0; i < maxIterations; i++ {
		if err := readBits(rand, buf); err != nil {
			return nil, err
		}
		buf[0] &= topMask
		out.SetBytes(buf)
		if out.Cmp(n) < 0 {
			return out, nil
		}
	}
	return nil, ErrMaxIterations
}

// Witness returns a uniformly random witness for the candidate b, in [params.MinWitness, b-1].
//
// 1 is a trivial witness, and 2 is excluded along with it.
func Witness(rand io.Reader, b *big.Int) (*big.Int, error) {
	// there are b - MinWitness values in [MinWitness, b-1]
	minWitness := big.NewInt(params.MinWitness)
	width := new(big.Int).Sub(b, minWitness)
	if width.Sign() <= 0 {
		return nil, fmt.Errorf("sample.Witness: [%d, %v - 1]: %w", params.MinWitness, b, ErrRangeEmpty)
	}
	a, err := IntervalN(rand, width)
	if err != nil {
		return nil, fmt.Errorf("sample.Witness: %w", err)
	}
	return a.Add(a, minWitness), nil
}

// Seeded returns a deterministic stream of bytes derived from seed.
//
// The stream is the output of SHAKE256, so identical seeds always produce the
// same sequence of witnesses, while distinct seeds give independent looking ones.
func Seeded(seed []byte) io.Reader {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte("primality/sample.Seeded"))
	_, _ = h.Write(seed)
	return h
}
