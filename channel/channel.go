package channel

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the random source consumed by AWGN, an alias of
// golang.org/x/exp/rand.Source; callers construct one with that package's
// rand.NewSource(seed).
type Source = rand.Source

// Modulate maps each codeword bit to a BPSK symbol: 0 -> +1, 1 -> -1.
func Modulate(c []byte) []float64 {
	d := make([]float64, len(c))
	for i, b := range c {
		d[i] = 1 - 2*float64(b)
	}

	return d
}

// AWGN returns r = d + w, w ~ N(0, sigma^2) drawn i.i.d. per sample from
// src. sigma == 0 returns a copy of d unchanged (noiseless channel, used
// by the decoder's zero-noise identity property).
func AWGN(d []float64, sigma float64, src Source) []float64 {
	r := make([]float64, len(d))
	if sigma == 0 {
		copy(r, d)

		return r
	}

	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	for i, x := range d {
		r[i] = x + noise.Rand()
	}

	return r
}

// hugeLLR stands in for "infinite confidence" when sigma == 0: the
// noiseless-channel limit of 2*r/sigma^2 diverges, but the decoder only
// needs a magnitude large enough to saturate phi on the first check-node
// update (see phi.Phi's high-side clamp at x >= 12).
const hugeLLR = 1e6

// IntrinsicLLR computes the BPSK/AWGN log-likelihood ratio vector
// lambda_j = 2*r_j/sigma^2 that seeds the sum-product decoder's
// variable-to-check messages. sigma == 0 is the noiseless-channel limit:
// lambda_j saturates to +-hugeLLR according to the sign of r_j.
func IntrinsicLLR(r []float64, sigma float64) []float64 {
	lambda := make([]float64, len(r))
	if sigma == 0 {
		for i, v := range r {
			if v < 0 {
				lambda[i] = -hugeLLR
			} else {
				lambda[i] = hugeLLR
			}
		}

		return lambda
	}

	scale := 2 / (sigma * sigma)
	for i, v := range r {
		lambda[i] = scale * v
	}

	return lambda
}
