package specs

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/ldpc/basematrix"
	"github.com/katalvlaran/ldpc/expand"
	"github.com/katalvlaran/ldpc/spmatrix"
)

// CodeRates lists every rate label the store's H-<digits> files resolve
// to, in filesystem match order.
func (s *Store) CodeRates() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "H-*"))
	if err != nil {
		return nil, fmt.Errorf("specs: globbing H-*: %w", err)
	}

	rates := make([]string, 0, len(matches))
	for _, m := range matches {
		rate, err := basematrix.RateFromFilename(filepath.Base(m))
		if err != nil {
			return nil, fmt.Errorf("specs: %s: %w", m, err)
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

// findFile locates the file under prefix* whose filename resolves to
// rate via basematrix.RateFromFilename.
func (s *Store) findFile(prefix, rate string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, prefix+"*"))
	if err != nil {
		return "", fmt.Errorf("specs: globbing %s*: %w", prefix, err)
	}

	for _, m := range matches {
		got, err := basematrix.RateFromFilename(filepath.Base(m))
		if err != nil {
			continue
		}
		if got == rate {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %s%s", ErrRateNotFound, prefix, rate)
}

// CompressedH returns the dense integer base matrix for rate.
func (s *Store) CompressedH(rate string) (basematrix.Matrix, error) {
	path, err := s.findFile("H-", rate)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpecFileMissing, path)
	}
	defer f.Close()

	hb, err := basematrix.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("specs: parsing %s: %w", path, err)
	}

	return hb, nil
}

// ExpandedH composes CompressedH with expand.Expand, the common case
// callers outside this package actually need.
func (s *Store) ExpandedH(n int, rate string) (*spmatrix.Matrix, error) {
	hb, err := s.CompressedH(rate)
	if err != nil {
		return nil, err
	}

	h, err := expand.Expand(hb, n, rate)
	if err != nil {
		return nil, fmt.Errorf("specs: expanding rate %s: %w", rate, err)
	}

	return h, nil
}

// blockSizeTable reads a block-size-<digits> CSV into column name ->
// values, mirroring the column-keyed table the collaborator contract
// describes.
func (s *Store) blockSizeTable(rate string) (map[string][]int, error) {
	path, err := s.findFile("block-size-", rate)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSpecFileMissing, path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("specs: reading %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("specs: %s has no header: %w", path, ErrSpecFileMissing)
	}

	header := records[0]
	table := make(map[string][]int, len(header))
	for _, col := range header {
		table[strings.TrimSpace(col)] = make([]int, 0, len(records)-1)
	}

	for _, row := range records[1:] {
		for i, val := range row {
			if i >= len(header) {
				break
			}
			col := strings.TrimSpace(header[i])
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return nil, fmt.Errorf("specs: %s column %q: %w", path, col, err)
			}
			table[col] = append(table[col], n)
		}
	}

	return table, nil
}

// BlockSizes returns the "n (bits)" column of the block-size table for
// rate, the code lengths available at that rate.
func (s *Store) BlockSizes(rate string) ([]int, error) {
	table, err := s.blockSizeTable(rate)
	if err != nil {
		return nil, err
	}

	col, ok := table[blockSizeColumn]
	if !ok {
		return nil, fmt.Errorf("specs: column %q missing: %w", blockSizeColumn, ErrSpecFileMissing)
	}

	return col, nil
}

// CodeLengths is an alias for BlockSizes: the collaborator contract
// names both block_size(rate) and a plain list of lengths, and for this
// store they are the same projection of the same table.
func (s *Store) CodeLengths(rate string) ([]int, error) {
	return s.BlockSizes(rate)
}
