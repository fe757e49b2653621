package decoder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ldpc/basematrix"
	"github.com/katalvlaran/ldpc/channel"
	"github.com/katalvlaran/ldpc/decoder"
	"github.com/katalvlaran/ldpc/encoder"
	"github.com/katalvlaran/ldpc/expand"
	"golang.org/x/exp/rand"
)

func BenchmarkDecode(b *testing.B) {
	const rowsB, colsB = 12, 24
	hb := make(basematrix.Matrix, rowsB)
	for i := range hb {
		hb[i] = make([]int, colsB)
		for j := range hb[i] {
			hb[i][j] = -1
		}
	}
	for i := 0; i < rowsB; i++ {
		hb[i][i] = 0
		hb[i][(i+3)%rowsB] = 5
	}
	for i := 0; i < rowsB; i++ {
		hb[i][12+i] = 0
		if i >= 1 {
			hb[i][12+i-1] = 0
		}
	}

	h, err := expand.Expand(hb, 96, "1/2")
	if err != nil {
		b.Fatal(err)
	}

	enc, err := encoder.New(h)
	if err != nil {
		b.Fatal(err)
	}

	u := make([]byte, enc.K())
	c, err := enc.Encode(u)
	if err != nil {
		b.Fatal(err)
	}

	d := channel.Modulate(c)
	sigma := math.Sqrt(1.0 / 3.0)
	src := rand.NewSource(42)
	r := channel.AWGN(d, sigma, src)

	dec, err := decoder.New(h, sigma, 20)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := dec.Decode(r)
		if err != nil {
			b.Fatal(err)
		}
	}
}
