package expand

import (
	"github.com/katalvlaran/ldpc/basematrix"
	"github.com/katalvlaran/ldpc/spmatrix"
)

// ExpandDense lifts hb into the dense m×n binary matrix described by
// (n, rate), per the block rule in the package doc comment. It is the
// building block Expand calls before compressing the result into an
// spmatrix.Matrix, exported for callers that want the dense form.
func ExpandDense(hb basematrix.Matrix, n int, rate string) ([][]int, error) {
	z := n / 24
	if z < 1 {
		return nil, ErrInvalidCodeLength
	}

	rows := hb.Rows() * z
	cols := hb.Cols() * z
	dense := make([][]int, rows)
	for i := range dense {
		dense[i] = make([]int, cols)
	}

	for bi := 0; bi < hb.Rows(); bi++ {
		for bj := 0; bj < hb.Cols(); bj++ {
			v := hb[bi][bj]
			if v < 0 {
				continue // all-zero block, dense is already zeroed
			}

			p := shift(v, z, rate)
			for row := 0; row < z; row++ {
				col := (row + p) % z
				dense[bi*z+row][bj*z+col] = 1
			}
		}
	}

	return dense, nil
}

// Expand lifts hb into the sparse parity-check matrix H described by
// (n, rate).
func Expand(hb basematrix.Matrix, n int, rate string) (*spmatrix.Matrix, error) {
	dense, err := ExpandDense(hb, n, rate)
	if err != nil {
		return nil, err
	}

	// ExpandDense only ever writes 0/1, so FromDense cannot fail here.
	m, err := spmatrix.FromDense(dense)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// shift computes the cyclic column-shift amount p for a base-matrix entry
// v >= 0, given expansion factor z and rate label.
func shift(v, z int, rate string) int {
	if rate == VariantA {
		return v % z
	}

	return (v * z) / 96
}
