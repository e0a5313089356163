package sample

import (
	"errors"
	"io"
	"math"
	"math/big"
	"sync"

	"github.com/taurusgroup/primality/internal/params"
)

// primes generates an array containing all the odd prime numbers < below.
func primes(below uint32) []uint32 {
	sieve := make([]bool, below)
	// Initially, all numbers starting from 2 are considered prime
	for i := 2; i < len(sieve); i++ {
		sieve[i] = true
	}
	// Now, we remove the multiples of every prime number we encounter
	for p := 2; p*p < len(sieve); p++ {
		if !sieve[p] {
			continue
		}
		for i := p * p; i < len(sieve); i += p {
			sieve[i] = false
		}
	}
	// There are approximately N / log N primes below N
	nF := float64(below)
	out := make([]uint32, 0, int(nF/math.Log(nF)))
	for p := uint32(3); p < below; p++ {
		if sieve[p] {
			out = append(out, p)
		}
	}
	return out
}

// The small primes are only sieved the first time they're needed.
var (
	thePrimes  []uint32
	initPrimes sync.Once
)

// SmallPrimes returns the odd primes below params.SieveBound.
//
// The returned slice is shared and must not be modified.
func SmallPrimes() []uint32 {
	initPrimes.Do(func() {
		thePrimes = primes(params.SieveBound)
	})
	return thePrimes
}

// Candidate generates a candidate prime of exactly bits bits.
//
// The candidate is odd, has its two most significant bits set, and has no
// factor among SmallPrimes, but has not undergone any probabilistic test.
//
// Setting the top two bits, rather than just the top bit, means that the
// product of two such candidates is never one bit short of 2⋅bits.
func Candidate(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("sample.Candidate: prime size must be at least 2-bit")
	}
	smallPrimes := SmallPrimes()

	// The number of significant bits in the first byte of our number
	lastBits := uint(bits % 8)
	if lastBits == 0 {
		lastBits = 8
	}
	bytes := make([]byte, (bits+7)/8)
	p := new(big.Int)
	scratch := new(big.Int)
	// We store the remainder for each small prime, so that we can then adjust
	// these values with deltas, instead of recalculating them from p.
	mods := make([]uint64, len(smallPrimes))
	small := bits < 32

	for i := 0; i < maxIterations; i++ {
		if err := readBits(rand, bytes); err != nil {
			return nil, err
		}
		// Clear bits in the first byte to make sure the candidate has a size <= bits.
		bytes[0] &= uint8(int(1<<lastBits) - 1)
		if lastBits >= 2 {
			bytes[0] |= 0b11 << (lastBits - 2)
		} else {
			// Here lastBits == 1, because lastBits cannot be zero.
			bytes[0] |= 1
			if len(bytes) > 1 {
				bytes[1] |= 0b1000_0000
			}
		}
		bytes[len(bytes)-1] |= 1
		p.SetBytes(bytes)

		for j, prime := range smallPrimes {
			scratch.SetUint64(uint64(prime))
			mods[j] = scratch.Mod(p, scratch).Uint64()
		}
		// This is a heuristic cap used by OpenSSL.
		maxDelta := (uint64(1) << 32) - uint64(smallPrimes[len(smallPrimes)-1])
	NextDelta:
		// We add 2 each iteration, to remain odd.
		for delta := uint64(0); delta < maxDelta; delta += 2 {
			for j, prime := range smallPrimes {
				if (mods[j]+delta)%uint64(prime) != 0 {
					continue
				}
				// a small candidate may be one of the sieving primes itself
				if small && p.Uint64()+delta == uint64(prime) {
					continue
				}
				continue NextDelta
			}
			scratch.SetUint64(delta)
			p.Add(p, scratch)

			// By adding delta, we may have made the number one bit too long.
			if p.BitLen() == bits {
				return p, nil
			}
			break
		}
	}
	return nil, ErrMaxIterations
}
