package gf2

import "errors"

// Sentinel errors for GF(2) linear algebra.
var (
	// ErrSingular indicates a square matrix has no inverse over GF(2):
	// Gauss-Jordan elimination hit a column with no available pivot.
	ErrSingular = errors.New("gf2: singular matrix")

	// ErrNonSquare indicates Invert was called on a non-square matrix.
	ErrNonSquare = errors.New("gf2: matrix is not square")

	// ErrDimensionMismatch indicates incompatible shapes for MatMul/MatMulVec.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")
)

// Matrix is a dense matrix over GF(2); each entry is 0 or 1, one byte per
// entry for simplicity (the encoder builds these once per (n,rate), not
// per decoded word, so packing into machine words is not worth the
// complexity here).
type Matrix [][]byte

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 if Rows() == 0).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// clone returns a deep copy of m.
func (m Matrix) clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]byte(nil), row...)
	}

	return out
}
