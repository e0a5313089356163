package primality

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/primality/internal/hash"
	"github.com/taurusgroup/primality/internal/params"
	"github.com/taurusgroup/primality/pkg/math/arith"
)

// Transcript records the trials of a Solovay–Strassen run, so that a verdict
// can be stored and checked again later without the original randomness.
type Transcript struct {
	Candidate *big.Int
	Trials    []Trial
	// Prime is true when every trial passed.
	Prime bool
}

var ErrTranscriptMismatch = errors.New("primality: transcript does not match recomputed trial")

// Verify recomputes every recorded trial from its witness, and checks that the
// recorded values and the verdict agree with the recomputation.
func (t *Transcript) Verify() error {
	if err := validateCandidate(t.Candidate); err != nil {
		return err
	}
	if len(t.Trials) == 0 {
		return fmt.Errorf("%w: no trials", ErrTranscriptMismatch)
	}
	prime := true
	for i, recorded := range t.Trials {
		if recorded.Index != i {
			return fmt.Errorf("%w: trial %d has index %d", ErrTranscriptMismatch, i, recorded.Index)
		}
		if recorded.Witness == nil || recorded.Witness.Cmp(big.NewInt(params.MinWitness)) < 0 || recorded.Witness.Cmp(t.Candidate) >= 0 {
			return fmt.Errorf("%w: trial %d: witness out of range", ErrTranscriptMismatch, i)
		}
		trial, err := runTrial(i, recorded.Witness, t.Candidate)
		if err != nil {
			return fmt.Errorf("primality.Transcript: trial %d: %w", i, err)
		}
		if !trial.equal(recorded) {
			return fmt.Errorf("%w: trial %d", ErrTranscriptMismatch, i)
		}
		if !trial.Passed {
			prime = false
			if i != len(t.Trials)-1 {
				return fmt.Errorf("%w: trial %d failed but was not the last one", ErrTranscriptMismatch, i)
			}
		}
	}
	if prime != t.Prime {
		return fmt.Errorf("%w: verdict", ErrTranscriptMismatch)
	}
	return nil
}

// Digest returns a BLAKE3 fingerprint of the transcript.
func (t *Transcript) Digest() ([]byte, error) {
	h := hash.New("primality.Transcript")
	if err := h.WriteAny(t.Candidate, len(t.Trials)); err != nil {
		return nil, err
	}
	for _, trial := range t.Trials {
		if err := h.WriteAny(trial.Witness); err != nil {
			return nil, err
		}
	}
	verdict := 0
	if t.Prime {
		verdict = 1
	}
	if err := h.WriteAny(verdict); err != nil {
		return nil, err
	}
	return h.Sum(), nil
}

func (t Trial) equal(other Trial) bool {
	return t.Index == other.Index &&
		equalInt(t.Witness, other.Witness) &&
		equalInt(t.GCD, other.GCD) &&
		t.Jacobi == other.Jacobi &&
		equalInt(t.Euler, other.Euler) &&
		t.Passed == other.Passed
}

func equalInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

type trialMarshal struct {
	Witness []byte
	GCD     []byte
	Jacobi  int
	Euler   []byte
	Passed  bool
}

type transcriptMarshal struct {
	Candidate []byte
	Trials    []trialMarshal
	Prime     bool
}

// MarshalBinary implements encoding.BinaryMarshaler, encoding the transcript with CBOR.
func (t *Transcript) MarshalBinary() ([]byte, error) {
	if t.Candidate == nil {
		return nil, errors.New("primality.Transcript: nil candidate")
	}
	tm := transcriptMarshal{
		Candidate: t.Candidate.Bytes(),
		Trials:    make([]trialMarshal, 0, len(t.Trials)),
		Prime:     t.Prime,
	}
	for _, trial := range t.Trials {
		tm.Trials = append(tm.Trials, trialMarshal{
			Witness: intBytes(trial.Witness),
			GCD:     intBytes(trial.GCD),
			Jacobi:  trial.Jacobi,
			Euler:   intBytes(trial.Euler),
			Passed:  trial.Passed,
		})
	}
	return cbor.Marshal(&tm)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// The decoded transcript is not verified, see Verify.
func (t *Transcript) UnmarshalBinary(data []byte) error {
	var tm transcriptMarshal
	if err := cbor.Unmarshal(data, &tm); err != nil {
		return fmt.Errorf("primality.Transcript: %w", err)
	}
	t.Candidate = new(big.Int).SetBytes(tm.Candidate)
	t.Prime = tm.Prime
	t.Trials = make([]Trial, 0, len(tm.Trials))
	for i, trial := range tm.Trials {
		if trial.Jacobi < -1 || trial.Jacobi > 1 {
			return fmt.Errorf("primality.Transcript: trial %d: Jacobi symbol %d: %w", i, trial.Jacobi, arith.ErrInvalidArgument)
		}
		t.Trials = append(t.Trials, Trial{
			Index:   i,
			Witness: bytesInt(trial.Witness),
			GCD:     bytesInt(trial.GCD),
			Jacobi:  trial.Jacobi,
			Euler:   bytesInt(trial.Euler),
			Passed:  trial.Passed,
		})
	}
	return nil
}

// intBytes encodes a non negative integer, keeping nil apart from 0.
func intBytes(x *big.Int) []byte {
	if x == nil {
		return nil
	}
	return append([]byte{0}, x.Bytes()...)
}

func bytesInt(b []byte) *big.Int {
	if len(b) == 0 {
		return nil
	}
	return new(big.Int).SetBytes(b[1:])
}
