package primality

import (
	"context"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/primality/pkg/math/sample"
)

func runTranscript(t *testing.T, b int64, trials int) *Transcript {
	tester := Tester{Rand: mrand.New(mrand.NewSource(0)), Trials: trials}
	tr, err := tester.Run(context.Background(), big.NewInt(b))
	require.NoError(t, err)
	return tr
}

func TestTranscript_Verify(t *testing.T) {
	prime := runTranscript(t, 65537, 10)
	assert.True(t, prime.Prime)
	assert.Len(t, prime.Trials, 10)
	assert.NoError(t, prime.Verify())

	composite := runTranscript(t, 41041, 40)
	assert.False(t, composite.Prime)
	assert.NoError(t, composite.Verify())
}

func TestTranscript_VerifyTampered(t *testing.T) {
	for name, tamper := range map[string]func(*Transcript){
		"verdict": func(tr *Transcript) { tr.Prime = false },
		"jacobi":  func(tr *Transcript) { tr.Trials[2].Jacobi = -tr.Trials[2].Jacobi },
		"euler":   func(tr *Transcript) { tr.Trials[0].Euler.Add(tr.Trials[0].Euler, big.NewInt(1)) },
		"index":   func(tr *Transcript) { tr.Trials[1].Index = 5 },
		"witness": func(tr *Transcript) { tr.Trials[3].Witness = big.NewInt(2) },
		"empty":   func(tr *Transcript) { tr.Trials = nil },
		"failure": func(tr *Transcript) {
			// a failed trial may only end the transcript
			tr.Trials[0], _ = runTrial(0, big.NewInt(3), big.NewInt(65537*3))
		},
	} {
		t.Run(name, func(t *testing.T) {
			tr := runTranscript(t, 65537, 10)
			tamper(tr)
			assert.Error(t, tr.Verify())
		})
	}
}

func TestTranscript_MarshalBinary(t *testing.T) {
	for _, tr := range []*Transcript{
		runTranscript(t, 65537, 10),
		runTranscript(t, 41041, 40),
	} {
		data, err := tr.MarshalBinary()
		require.NoError(t, err)

		var decoded Transcript
		require.NoError(t, decoded.UnmarshalBinary(data))
		assert.NoError(t, decoded.Verify())
		assert.Equal(t, 0, tr.Candidate.Cmp(decoded.Candidate))
		assert.Equal(t, tr.Prime, decoded.Prime)
		require.Len(t, decoded.Trials, len(tr.Trials))
		for i := range tr.Trials {
			assert.True(t, tr.Trials[i].equal(decoded.Trials[i]), "trial %d", i)
		}

		d1, err := tr.Digest()
		require.NoError(t, err)
		d2, err := decoded.Digest()
		require.NoError(t, err)
		assert.Equal(t, d1, d2)
	}

	var decoded Transcript
	assert.Error(t, decoded.UnmarshalBinary([]byte{0xff, 0x00}))
}

func TestTranscript_Digest(t *testing.T) {
	run := func(seed string) []byte {
		tr, err := Tester{Rand: sample.Seeded([]byte(seed))}.Run(context.Background(), big.NewInt(65537))
		require.NoError(t, err)
		d, err := tr.Digest()
		require.NoError(t, err)
		return d
	}
	assert.Equal(t, run("a"), run("a"))
	assert.NotEqual(t, run("a"), run("b"))
}
