package basematrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ldpc/basematrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	csvData := "-1,0,1\n2,-1,0\n"
	m, err := basematrix.ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, basematrix.Matrix{{-1, 0, 1}, {2, -1, 0}}, m)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

func TestParseCSV_RejectsSubMinusOne(t *testing.T) {
	_, err := basematrix.ParseCSV(strings.NewReader("-2,0\n"))
	assert.ErrorIs(t, err, basematrix.ErrMalformedEntry)
}

func TestParseCSV_RejectsRagged(t *testing.T) {
	_, err := basematrix.ParseCSV(strings.NewReader("0,1\n0\n"))
	assert.ErrorIs(t, err, basematrix.ErrRaggedRow)
}

func TestRateFromFilename(t *testing.T) {
	cases := map[string]string{
		"H-12":          "1/2",
		"H-23A":         "2/3A",
		"H-23B":         "2/3B",
		"specs/H-12":    "1/2",
		"specs/H-12.csv": "1/2",
	}
	for name, want := range cases {
		got, err := basematrix.RateFromFilename(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestRateFromFilename_Malformed(t *testing.T) {
	_, err := basematrix.RateFromFilename("junk")
	assert.ErrorIs(t, err, basematrix.ErrMalformedFilename)
}
