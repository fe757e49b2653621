package basematrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseCSV reads a headerless comma-separated table of integers and
// returns it as a Matrix. Every entry must be >= -1.
func ParseCSV(r io.Reader) (Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported as ErrRaggedRow below
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("basematrix: reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}

	cols := len(rows[0])
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRow
		}

		m[i] = make([]int, cols)
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("basematrix: entry (%d,%d): %w", i, j, err)
			}
			if v < -1 {
				return nil, fmt.Errorf("basematrix: entry (%d,%d)=%d: %w", i, j, v, ErrMalformedEntry)
			}
			m[i][j] = v
		}
	}

	return m, nil
}

// RateFromFilename turns a base-matrix filename of the form "H-<digits>"
// (with or without a directory or ".csv" extension) into a rate label,
// inserting the fraction bar after the first digit: "H-12" -> "1/2",
// "H-23A" -> "2/3A".
func RateFromFilename(name string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	idx := strings.LastIndex(stem, "-")
	if idx < 0 || idx == len(stem)-1 {
		return "", fmt.Errorf("%s: %w", name, ErrMalformedFilename)
	}

	digits := stem[idx+1:]
	if len(digits) < 2 {
		return "", fmt.Errorf("%s: %w", name, ErrMalformedFilename)
	}

	return digits[:1] + "/" + digits[1:], nil
}
