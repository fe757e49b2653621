package gf2_test

import (
	"testing"

	"github.com/katalvlaran/ldpc/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert_Identity(t *testing.T) {
	id := gf2.Matrix{{1, 0}, {0, 1}}
	inv, err := gf2.Invert(id)
	require.NoError(t, err)
	assert.Equal(t, id, inv)
}

func TestInvert_RoundTrip(t *testing.T) {
	c := gf2.Matrix{
		{1, 1, 0},
		{0, 1, 1},
		{1, 1, 1},
	}
	inv, err := gf2.Invert(c)
	require.NoError(t, err)

	product, err := gf2.MatMul(c, inv)
	require.NoError(t, err)
	assert.Equal(t, gf2.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, product)
}

func TestInvert_Singular(t *testing.T) {
	c := gf2.Matrix{
		{1, 1},
		{1, 1},
	}
	_, err := gf2.Invert(c)
	assert.ErrorIs(t, err, gf2.ErrSingular)
}

func TestInvert_NonSquare(t *testing.T) {
	_, err := gf2.Invert(gf2.Matrix{{1, 0, 1}})
	assert.ErrorIs(t, err, gf2.ErrNonSquare)
}

func TestMatMulVec(t *testing.T) {
	a := gf2.Matrix{
		{1, 1, 0},
		{0, 1, 1},
	}
	out, err := gf2.MatMulVec(a, []byte{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1}, out)
}

func TestMatMul_DimensionMismatch(t *testing.T) {
	_, err := gf2.MatMul(gf2.Matrix{{1, 0}}, gf2.Matrix{{1, 0}})
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

func TestMatMulVec_DimensionMismatch(t *testing.T) {
	_, err := gf2.MatMulVec(gf2.Matrix{{1, 0}}, []byte{1, 0, 1})
	assert.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}
