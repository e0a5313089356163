package arith

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	for _, tc := range []struct{ p, q, expected int64 }{
		{4, 20, 4},
		{5, 20, 5},
		{35, 20, 5},
		{1, 1, 1},
		{17, 17, 17},
		{1, 99, 1},
		{120, 56, 8},
		{8191, 65537, 1},
	} {
		gcd, err := GCD(big.NewInt(tc.p), big.NewInt(tc.q))
		require.NoError(t, err)
		assert.Equal(t, tc.expected, gcd.Int64(), "gcd(%d, %d)", tc.p, tc.q)
	}
}

func TestGCD_InvalidArgument(t *testing.T) {
	for _, tc := range []struct{ p, q int64 }{
		{0, 5},
		{5, 0},
		{0, 0},
		{-4, 20},
		{4, -20},
	} {
		_, err := GCD(big.NewInt(tc.p), big.NewInt(tc.q))
		assert.ErrorIs(t, err, ErrInvalidArgument, "gcd(%d, %d)", tc.p, tc.q)
	}
}

func TestGCD_Properties(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	bound := new(big.Int).Lsh(one, 300)
	for i := 0; i < 200; i++ {
		p := new(big.Int).Rand(r, bound)
		q := new(big.Int).Rand(r, bound)
		// force a common factor every so often
		if i%2 == 0 {
			f := new(big.Int).Rand(r, big.NewInt(1<<20))
			p.Mul(p, f)
			q.Mul(q, f)
		}
		p.Add(p, one)
		q.Add(q, one)

		pq, err := GCD(p, q)
		require.NoError(t, err)
		qp, err := GCD(q, p)
		require.NoError(t, err)
		assert.Equal(t, 0, pq.Cmp(qp), "gcd should not depend on the order of its inputs")

		assert.Zero(t, new(big.Int).Mod(p, pq).Sign(), "gcd should divide p")
		assert.Zero(t, new(big.Int).Mod(q, pq).Sign(), "gcd should divide q")
		assert.Equal(t, 0, new(big.Int).GCD(nil, nil, p, q).Cmp(pq), "no larger common divisor should exist")
	}
}

func TestGCD_DoesNotModifyInputs(t *testing.T) {
	p, q := big.NewInt(35), big.NewInt(20)
	_, err := GCD(p, q)
	require.NoError(t, err)
	assert.Equal(t, int64(35), p.Int64())
	assert.Equal(t, int64(20), q.Int64())
}

func TestIsCoprime(t *testing.T) {
	assert.True(t, IsCoprime(big.NewInt(3), big.NewInt(20)))
	assert.False(t, IsCoprime(big.NewInt(4), big.NewInt(20)))
	assert.False(t, IsCoprime(big.NewInt(0), big.NewInt(20)))
}
