package spmatrix

import "errors"

// Sentinel errors for spmatrix construction and access.
var (
	// ErrNonBinaryEntry indicates a dense source matrix contained a value
	// other than 0 or 1.
	ErrNonBinaryEntry = errors.New("spmatrix: non-binary entry")

	// ErrRaggedInput indicates the dense source matrix has rows of
	// differing lengths.
	ErrRaggedInput = errors.New("spmatrix: ragged input rows")

	// ErrOutOfRange indicates a row or column index outside [0, Rows)/[0, Cols).
	ErrOutOfRange = errors.New("spmatrix: index out of range")
)

// Matrix is the compressed sparse representation of a binary m×n matrix.
// cols_of_row[i] and rows_of_col[j] are both kept in ascending sorted
// order, which lets At short-circuit once a stored index passes the query
// index.
//
// edgeOfRow[i][p] and edgeOfCol[j][q] hold the shared edge id for the
// non-zero entry at colsOfRow[i][p] / rowsOfCol[j][q] respectively, so
// that an edge found from either side addresses the same slot in a
// decoder's flat message arrays.
type Matrix struct {
	rows, cols int
	numEdges   int

	colsOfRow [][]int
	edgeOfRow [][]int

	rowsOfCol [][]int
	edgeOfCol [][]int
}

// Rows returns the number of rows (check nodes for an LDPC H).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (variable nodes for an LDPC H).
func (m *Matrix) Cols() int { return m.cols }

// NumEdges returns the total number of stored non-zero entries.
func (m *Matrix) NumEdges() int { return m.numEdges }
