package phi_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ldpc/phi"
	"github.com/stretchr/testify/assert"
)

// reference reimplements the textbook definition directly, without the
// package's clamps, for comparison against phi.Phi inside the unsaturated
// band.
func reference(x float64) float64 {
	k := math.Exp(-x)

	return math.Log((1 + k) / (1 - k))
}

func TestPhi_MatchesDefinition(t *testing.T) {
	for _, x := range []float64{1e-4, 1e-3, 1e-2, 0.1, 0.5, 1, 2, 5, 9, 10} {
		assert.InDelta(t, reference(x), phi.Phi(x), 1e-9, "x=%v", x)
	}
}

func TestPhi_LowSaturation(t *testing.T) {
	assert.Equal(t, 12.0, phi.Phi(1e-5))
	assert.Equal(t, 12.0, phi.Phi(1e-6))
	assert.Equal(t, 12.0, phi.Phi(0))
}

func TestPhi_HighSaturation(t *testing.T) {
	assert.Equal(t, 0.0, phi.Phi(12))
	assert.Equal(t, 0.0, phi.Phi(100))
}

func TestPhi_Involutive(t *testing.T) {
	for _, x := range []float64{1e-4, 1e-3, 0.01, 0.37, 1, 3, 7, 10} {
		assert.InDelta(t, x, phi.Phi(phi.Phi(x)), 1e-6, "x=%v", x)
	}
}

func TestPhi_Involutive_MidRange(t *testing.T) {
	assert.InDelta(t, 0.37, phi.Phi(phi.Phi(0.37)), 1e-6)
}

func TestVector_MatchesScalar(t *testing.T) {
	xs := []float64{1e-6, 1e-4, 0.5, 1, 5, 11, 13}
	got := phi.Vector(xs)
	for i, x := range xs {
		assert.Equal(t, phi.Phi(x), got[i])
	}
}

func TestVector_DoesNotMutateInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	cp := append([]float64(nil), xs...)
	_ = phi.Vector(xs)
	assert.Equal(t, cp, xs)
}
