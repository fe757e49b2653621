package spmatrix

// FromDense scans a dense binary matrix row-major and builds both
// adjacency views plus the shared edge-id table.
//
// Complexity: O(rows*cols) to scan, O(numEdges) extra space for each of
// the four parallel slices.
func FromDense(dense [][]int) (*Matrix, error) {
	rows := len(dense)
	cols := 0
	if rows > 0 {
		cols = len(dense[0])
	}

	for _, row := range dense {
		if len(row) != cols {
			return nil, ErrRaggedInput
		}
	}

	m := &Matrix{
		rows:      rows,
		cols:      cols,
		colsOfRow: make([][]int, rows),
		edgeOfRow: make([][]int, rows),
		rowsOfCol: make([][]int, cols),
		edgeOfCol: make([][]int, cols),
	}

	edgeID := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := dense[i][j]
			if v == 0 {
				continue
			}
			if v != 1 {
				return nil, ErrNonBinaryEntry
			}

			m.colsOfRow[i] = append(m.colsOfRow[i], j)
			m.edgeOfRow[i] = append(m.edgeOfRow[i], edgeID)

			m.rowsOfCol[j] = append(m.rowsOfCol[j], i)
			m.edgeOfCol[j] = append(m.edgeOfCol[j], edgeID)

			edgeID++
		}
	}
	m.numEdges = edgeID

	return m, nil
}

// At returns 1 iff H[i,j] is a stored non-zero entry, 0 otherwise.
// colsOfRow[i] is sorted ascending, so the scan exits as soon as a stored
// column index passes j.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	for _, jj := range m.colsOfRow[i] {
		if jj == j {
			return 1, nil
		}
		if jj > j {
			break
		}
	}

	return 0, nil
}

// ToDense reconstructs the full m×n binary matrix. Intended for tests and
// small matrices; the decoder never materializes this.
func (m *Matrix) ToDense() [][]int {
	out := make([][]int, m.rows)
	for i := range out {
		out[i] = make([]int, m.cols)
		for _, j := range m.colsOfRow[i] {
			out[i][j] = 1
		}
	}

	return out
}

// RowNeighbors returns the column indices with a non-zero entry in row i,
// in ascending order. The returned slice must not be mutated by the
// caller; it is the matrix's own backing storage.
func (m *Matrix) RowNeighbors(i int) []int { return m.colsOfRow[i] }

// RowEdges returns the edge ids parallel to RowNeighbors(i).
func (m *Matrix) RowEdges(i int) []int { return m.edgeOfRow[i] }

// ColNeighbors returns the row indices with a non-zero entry in column j,
// in ascending order. The returned slice must not be mutated by the
// caller.
func (m *Matrix) ColNeighbors(j int) []int { return m.rowsOfCol[j] }

// ColEdges returns the edge ids parallel to ColNeighbors(j).
func (m *Matrix) ColEdges(j int) []int { return m.edgeOfCol[j] }
