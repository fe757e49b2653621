package encoder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ldpc/gf2"
	"github.com/katalvlaran/ldpc/spmatrix"
)

// New builds a systematic encoder from H (shape (n-k) x n).
//
// Partition: B = H[:, :k], C = H[:, k:]. Solves A = C^-1 * B over GF(2)
// via gf2.Invert + gf2.MatMul. Returns ErrSingularSystematicBlock if C is
// not invertible.
func New(h *spmatrix.Matrix) (*Encoder, error) {
	m := h.Rows()
	n := h.Cols()
	k := n - m

	b := make(gf2.Matrix, m)
	c := make(gf2.Matrix, m)
	for i := 0; i < m; i++ {
		b[i] = make([]byte, k)
		c[i] = make([]byte, m)
		for _, j := range h.RowNeighbors(i) {
			if j < k {
				b[i][j] = 1
			} else {
				c[i][j-k] = 1
			}
		}
	}

	invC, err := gf2.Invert(c)
	if err != nil {
		if errors.Is(err, gf2.ErrSingular) {
			return nil, ErrSingularSystematicBlock
		}

		return nil, fmt.Errorf("encoder: inverting C: %w", err)
	}

	a, err := gf2.MatMul(invC, b)
	if err != nil {
		return nil, fmt.Errorf("encoder: computing A=C^-1*B: %w", err)
	}

	return &Encoder{n: n, k: k, a: a}, nil
}

// Encode maps a k-bit message u to the systematic n-bit codeword
// c = [u | A*u mod 2].
func (e *Encoder) Encode(u []byte) ([]byte, error) {
	if len(u) != e.k {
		return nil, ErrWrongMessageLength
	}

	parity, err := gf2.MatMulVec(e.a, u)
	if err != nil {
		return nil, fmt.Errorf("encoder: computing parity: %w", err)
	}

	c := make([]byte, e.n)
	copy(c, u)
	copy(c[e.k:], parity)

	return c, nil
}
