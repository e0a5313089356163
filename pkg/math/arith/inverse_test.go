package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplicativeInverse(t *testing.T) {
	for _, tc := range []struct{ x, m, expected int64 }{
		{3, 20, 7},
		{7, 20, 3},
		{1, 20, 1},
		{17, 3120, 2753},
		{23, 20, 7},
	} {
		y, err := MultiplicativeInverse(big.NewInt(tc.x), big.NewInt(tc.m))
		require.NoError(t, err)
		assert.Equal(t, tc.expected, y.Int64(), "%d⁻¹ (mod %d)", tc.x, tc.m)
	}
}

func TestMultiplicativeInverse_Errors(t *testing.T) {
	_, err := MultiplicativeInverse(big.NewInt(4), big.NewInt(20))
	assert.ErrorIs(t, err, ErrNotInvertible)
	_, err = MultiplicativeInverse(big.NewInt(5), big.NewInt(20))
	assert.ErrorIs(t, err, ErrNotInvertible)
	_, err = MultiplicativeInverse(big.NewInt(3), big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
