package decoder

import (
	"errors"

	"github.com/katalvlaran/ldpc/spmatrix"
)

// Sentinel errors for decoder construction and use.
var (
	// ErrTooFewIterations indicates maxIterations < 1.
	ErrTooFewIterations = errors.New("decoder: maxIterations must be >= 1")

	// ErrWrongVectorLength indicates Decode was called with a received
	// vector whose length does not equal H's column count.
	ErrWrongVectorLength = errors.New("decoder: received vector length != n")
)

// Result is the outcome of one Decode call. On success, Bits holds the
// recovered k-bit message and Iterations the number of iterations it took
// (>= 1). On failure (parity never cleared within maxIterations), Success
// is false, Bits is nil, and Iterations == maxIterations.
//
// Failed is the idiomatic replacement for the literal NaN-vector failure
// sentinel of the collaborator contract this decoder implements: callers
// that only need to know whether decoding converged call Failed() rather
// than scanning Bits for NaN.
type Result struct {
	Success    bool
	Bits       []byte
	Iterations int
}

// Failed reports whether decoding did not converge.
func (r Result) Failed() bool { return !r.Success }

// Decoder holds H and the reusable per-edge message tables for repeated
// Decode calls against the same (H, sigma, maxIterations) configuration.
// Not safe for concurrent use by multiple goroutines; each goroutine
// should construct its own Decoder sharing the same *spmatrix.Matrix
// (immutable, safe to share read-only).
type Decoder struct {
	h             *spmatrix.Matrix
	sigma         float64
	maxIterations int
	k             int

	// message tables, length NumEdges(), reused across Decode calls.
	r []float64
	e []float64

	// scratch buffers, length h.Cols(), reused across Decode calls.
	lambda []float64
	mu     []float64
	chat   []byte
}
