package decoder

import (
	"github.com/katalvlaran/ldpc/channel"
	"github.com/katalvlaran/ldpc/phi"
	"github.com/katalvlaran/ldpc/spmatrix"
)

// New builds a decoder for a fixed (h, sigma, maxIterations) triple. h is
// retained by reference and must not be mutated afterward; spmatrix.Matrix
// has no mutators once built, so sharing it read-only across decoders is
// safe.
func New(h *spmatrix.Matrix, sigma float64, maxIterations int) (*Decoder, error) {
	if maxIterations < 1 {
		return nil, ErrTooFewIterations
	}

	n := h.Cols()
	k := n - h.Rows()
	numEdges := h.NumEdges()

	return &Decoder{
		h:             h,
		sigma:         sigma,
		maxIterations: maxIterations,
		k:             k,
		r:             make([]float64, numEdges),
		e:             make([]float64, numEdges),
		lambda:        make([]float64, n),
		mu:            make([]float64, n),
		chat:          make([]byte, n),
	}, nil
}

// Decode runs the sum-product iteration on the received vector r (length
// h.Cols()) and returns the recovered message (or failure) plus the
// iteration count.
func (d *Decoder) Decode(received []float64) (Result, error) {
	if len(received) != d.h.Cols() {
		return Result{}, ErrWrongVectorLength
	}

	d.initLambda(received)
	d.initE()

	for iter := 1; iter <= d.maxIterations; iter++ {
		d.updateCheckNodes()
		d.hardDecision()

		if d.parityHolds() {
			bits := make([]byte, d.k)
			copy(bits, d.chat[:d.k])

			return Result{Success: true, Bits: bits, Iterations: iter}, nil
		}

		d.updateVariableNodes()
	}

	return Result{Success: false, Bits: nil, Iterations: d.maxIterations}, nil
}

// initLambda computes the intrinsic channel LLR into d.lambda.
func (d *Decoder) initLambda(received []float64) {
	copy(d.lambda, channel.IntrinsicLLR(received, d.sigma))
}

// initE seeds every variable-to-check message with the channel LLR of its
// variable node: E[i,j] = lambda_j for every edge (i,j).
func (d *Decoder) initE() {
	for j := 0; j < d.h.Cols(); j++ {
		lambda := d.lambda[j]
		for _, eid := range d.h.ColEdges(j) {
			d.e[eid] = lambda
		}
	}
	for i := range d.r {
		d.r[i] = 0
	}
}

// updateCheckNodes is step A: for every check node i and every neighbour
// j of i, R[i,j] = sign * phi( sum over neighbours j' != j of
// phi(|E[i,j']|) ).
//
// Implemented in O(degree(i)) per row rather than the naive O(degree(i)^2)
// by first summing the sign product and the phi-sum over the whole row,
// then dividing each neighbour's own contribution back out (sign is its
// own inverse under multiplication; phi-sum subtracts).
func (d *Decoder) updateCheckNodes() {
	for i := 0; i < d.h.Rows(); i++ {
		edges := d.h.RowEdges(i)

		totalSign := 1.0
		totalPhi := 0.0
		for _, eid := range edges {
			v := d.e[eid]
			totalSign *= signOf(v)
			totalPhi += phi.Phi(absFloat(v))
		}

		for _, eid := range edges {
			v := d.e[eid]
			ownSign := signOf(v)
			sign := totalSign * ownSign // own_sign is +-1, self-inverse
			mag := phi.Phi(totalPhi - phi.Phi(absFloat(v)))
			d.r[eid] = sign * mag
		}
	}
}

// hardDecision is step B: mu_j = lambda_j + sum_{i in neighbours(j)} R[i,j];
// chat_j = 1 if mu_j < 0 else 0 (strict).
func (d *Decoder) hardDecision() {
	for j := 0; j < d.h.Cols(); j++ {
		mu := d.lambda[j]
		for _, eid := range d.h.ColEdges(j) {
			mu += d.r[eid]
		}
		d.mu[j] = mu

		if mu < 0 {
			d.chat[j] = 1
		} else {
			d.chat[j] = 0
		}
	}
}

// parityHolds is step C: H*chat == 0 (mod 2).
func (d *Decoder) parityHolds() bool {
	for i := 0; i < d.h.Rows(); i++ {
		var acc byte
		for _, j := range d.h.RowNeighbors(i) {
			acc ^= d.chat[j]
		}
		if acc != 0 {
			return false
		}
	}

	return true
}

// updateVariableNodes is step D: for every variable node j and every
// neighbour i of j, E[i,j] = lambda_j + sum over neighbours i' != i of
// R[i',j]. Same O(degree) extrinsic-sum trick as updateCheckNodes.
func (d *Decoder) updateVariableNodes() {
	for j := 0; j < d.h.Cols(); j++ {
		edges := d.h.ColEdges(j)

		total := 0.0
		for _, eid := range edges {
			total += d.r[eid]
		}

		lambda := d.lambda[j]
		for _, eid := range edges {
			d.e[eid] = lambda + (total - d.r[eid])
		}
	}
}

// signOf is sign(x) = +1 if x >= 0 else -1.
func signOf(x float64) float64 {
	if x >= 0 {
		return 1
	}

	return -1
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
