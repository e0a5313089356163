package primality

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/taurusgroup/primality/internal/params"
	"github.com/taurusgroup/primality/pkg/math/arith"
	"github.com/taurusgroup/primality/pkg/math/sample"
)

var one = big.NewInt(1)

// Trial is the record of a single Solovay–Strassen round.
type Trial struct {
	// Index is the position of this trial, starting at 0.
	Index int
	// Witness is the value a ∈ [3, b-1] this trial was run with.
	Witness *big.Int
	// GCD is gcd(a, b).
	GCD *big.Int
	// Jacobi is the symbol (a/b), left at 0 when GCD ≠ 1.
	Jacobi int
	// Euler is a⁽ᵇ⁻¹⁾ᐟ² (mod b), nil when GCD ≠ 1.
	Euler *big.Int
	// Passed is true when a is not a witness to the compositeness of b.
	Passed bool
}

// Tester runs the Solovay–Strassen probabilistic primality test.
//
// The zero value is ready to use, with crypto/rand as its source of
// witnesses and params.Trials rounds.
//
// A Tester holds no state between calls, and can be used concurrently
// as long as Rand can.
type Tester struct {
	// Rand is the source of randomness for the witnesses.
	// If nil, crypto/rand.Reader is used.
	Rand io.Reader
	// Trials is the number of rounds to run. If 0, params.Trials is used.
	Trials int
	// Observer, if set, is called after every completed trial.
	Observer func(Trial)
}

// SolovayStrassen reports whether the odd integer b is probably prime, after
// at most trials rounds with witnesses drawn from rand.
//
// A prime always passes, and a composite passes with probability at most 2⁻ᵗʳⁱᵃˡˢ.
// An error wrapping arith.ErrInvalidArgument is returned if b is even,
// if b < 5, or if trials < 1.
func SolovayStrassen(rand io.Reader, b *big.Int, trials int) (bool, error) {
	if trials < 1 {
		return false, fmt.Errorf("primality.SolovayStrassen: %d trials: %w", trials, arith.ErrInvalidArgument)
	}
	t := Tester{Rand: rand, Trials: trials}
	return t.Test(context.Background(), b)
}

// IsProbablyPrime runs SolovayStrassen with params.Trials rounds, using crypto/rand.
func IsProbablyPrime(b *big.Int) (bool, error) {
	return SolovayStrassen(rand.Reader, b, params.Trials)
}

// Test reports whether b is probably prime.
//
// ctx is checked before each trial. If it is done, ctx.Err() is returned.
func (t Tester) Test(ctx context.Context, b *big.Int) (bool, error) {
	tr, err := t.Run(ctx, b)
	if err != nil {
		return false, err
	}
	return tr.Prime, nil
}

// Run tests b like Test, and returns the record of every trial that was run.
//
// The test stops at the first failed trial, which is then the last one
// in the transcript.
func (t Tester) Run(ctx context.Context, b *big.Int) (*Transcript, error) {
	trials, err := t.trials()
	if err != nil {
		return nil, err
	}
	if err = validateCandidate(b); err != nil {
		return nil, err
	}
	rnd := t.Rand
	if rnd == nil {
		rnd = rand.Reader
	}

	tr := &Transcript{
		Candidate: new(big.Int).Set(b),
		Trials:    make([]Trial, 0, trials),
		Prime:     true,
	}
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := sample.Witness(rnd, b)
		if err != nil {
			return nil, fmt.Errorf("primality.Tester: trial %d: %w", i, err)
		}
		trial, err := runTrial(i, a, b)
		if err != nil {
			return nil, fmt.Errorf("primality.Tester: trial %d: %w", i, err)
		}
		tr.Trials = append(tr.Trials, trial)
		if t.Observer != nil {
			t.Observer(trial)
		}
		if !trial.Passed {
			tr.Prime = false
			break
		}
	}
	return tr, nil
}

func (t Tester) trials() (int, error) {
	switch {
	case t.Trials == 0:
		return params.Trials, nil
	case t.Trials < 0:
		return 0, fmt.Errorf("primality.Tester: %d trials: %w", t.Trials, arith.ErrInvalidArgument)
	default:
		return t.Trials, nil
	}
}

func validateCandidate(b *big.Int) error {
	if b == nil {
		return fmt.Errorf("primality: nil candidate: %w", arith.ErrInvalidArgument)
	}
	if b.Sign() <= 0 || b.Bit(0) == 0 {
		return fmt.Errorf("primality: candidate %v is not odd and positive: %w", b, arith.ErrInvalidArgument)
	}
	if b.Cmp(big.NewInt(params.MinCandidate)) < 0 {
		return fmt.Errorf("primality: candidate %v is too small to draw witnesses from [%d, %v - 1]: %w",
			b, params.MinWitness, b, arith.ErrInvalidArgument)
	}
	return nil
}

// runTrial checks a against Euler's criterion for b:
//
//	(a/b) = a⁽ᵇ⁻¹⁾ᐟ² (mod b)
//
// which holds for every a coprime to a prime b. A common factor of a and b
// proves b composite right away.
func runTrial(index int, a, b *big.Int) (Trial, error) {
	trial := Trial{Index: index, Witness: a}
	gcd, err := arith.GCD(a, b)
	if err != nil {
		return trial, err
	}
	trial.GCD = gcd
	if gcd.Cmp(one) != 0 {
		return trial, nil
	}

	j, err := arith.Jacobi(a, b)
	if err != nil {
		return trial, err
	}
	trial.Jacobi = j

	// b is odd, so (b - 1) / 2 = b >> 1
	e := new(big.Int).Rsh(b, 1)
	trial.Euler = arith.ModExp(a, e, b)

	jMod := new(big.Int).Mod(big.NewInt(int64(j)), b)
	trial.Passed = jMod.Cmp(trial.Euler) == 0
	return trial, nil
}
