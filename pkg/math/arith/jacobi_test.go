package arith

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJacobi(t *testing.T) {
	for _, tc := range []struct {
		a, b     int64
		expected int
	}{
		{1, 1, 1},
		{1, 3, 1},
		{2, 3, -1},
		{2, 5, -1},
		{2, 7, 1},
		{3, 5, -1},
		{4, 5, 1},
		{5, 9, 1},
		{2, 15, 1},
		{7, 15, -1},
		{19, 45, 1},
		{8, 21, -1},
		{1001, 9907, -1},
		{3, 3, 0},
		{6, 9, 0},
	} {
		j, err := Jacobi(big.NewInt(tc.a), big.NewInt(tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.expected, j, "(%d/%d)", tc.a, tc.b)
	}
}

func TestJacobi_InvalidArgument(t *testing.T) {
	for _, tc := range []struct{ a, b int64 }{
		{1, 4},
		{3, 0},
		{0, 5},
		{-1, 5},
		{7, 5},
		{1, -3},
	} {
		_, err := Jacobi(big.NewInt(tc.a), big.NewInt(tc.b))
		assert.ErrorIs(t, err, ErrInvalidArgument, "(%d/%d)", tc.a, tc.b)
	}
}

func TestJacobi_SmallTable(t *testing.T) {
	for b := int64(1); b < 300; b += 2 {
		bInt := big.NewInt(b)
		for a := int64(1); a <= b; a++ {
			aInt := big.NewInt(a)
			j, err := Jacobi(aInt, bInt)
			require.NoError(t, err)
			require.Equal(t, big.Jacobi(aInt, bInt), j, "(%d/%d)", a, b)
			if IsCoprime(aInt, bInt) {
				assert.Contains(t, []int{-1, 1}, j, "(%d/%d) should be ±1 for coprime inputs", a, b)
			}
		}
	}
}

func TestJacobi_Large(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	bound := new(big.Int).Lsh(one, 1024)
	for i := 0; i < 100; i++ {
		b := new(big.Int).Rand(r, bound)
		b.SetBit(b, 0, 1)
		a := new(big.Int).Rand(r, b)
		a.Add(a, one)

		j, err := Jacobi(a, b)
		require.NoError(t, err)
		assert.Equal(t, big.Jacobi(a, b), j)
	}
}

func TestJacobi_EulerCriterion(t *testing.T) {
	primes := []int64{3, 5, 7, 11, 13, 101, 8191, 65537}
	r := mrand.New(mrand.NewSource(0))
	for _, p := range primes {
		b := big.NewInt(p)
		e := new(big.Int).Rsh(b, 1)
		for i := 0; i < 50; i++ {
			a := new(big.Int).Rand(r, new(big.Int).Sub(b, one))
			a.Add(a, one)

			j, err := Jacobi(a, b)
			require.NoError(t, err)
			lhs := new(big.Int).Mod(big.NewInt(int64(j)), b)
			rhs := ModExp(a, e, b)
			assert.Equal(t, 0, lhs.Cmp(rhs), "Euler's criterion should hold for a=%v, b=%v", a, b)
		}
	}
}

func TestJacobi_DoesNotModifyInputs(t *testing.T) {
	a, b := big.NewInt(1001), big.NewInt(9907)
	_, err := Jacobi(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), a.Int64())
	assert.Equal(t, int64(9907), b.Int64())
}

func TestSignEven(t *testing.T) {
	for b := int64(1); b < 1000; b += 2 {
		// (-1)^((b²-1)/8) is -1 exactly when b = ±3 (mod 8)
		expected := 1
		if b%8 == 3 || b%8 == 5 {
			expected = -1
		}
		assert.Equal(t, expected, signEven(big.NewInt(b)), "b = %d", b)
	}
}

func TestSignOdd(t *testing.T) {
	for a := int64(1); a < 100; a += 2 {
		for b := int64(1); b < 100; b += 2 {
			expected := 1
			if ((a-1)*(b-1)/4)%2 == 1 {
				expected = -1
			}
			assert.Equal(t, expected, signOdd(big.NewInt(a), big.NewInt(b)), "a = %d, b = %d", a, b)
		}
	}
}

var resultJacobi int

func BenchmarkJacobi(b *testing.B) {
	r := mrand.New(mrand.NewSource(0))
	n := new(big.Int).Rand(r, new(big.Int).Lsh(one, 2048))
	n.SetBit(n, 0, 1)
	a := new(big.Int).Rand(r, n)
	a.Add(a, one)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resultJacobi, _ = Jacobi(a, n)
	}
}
