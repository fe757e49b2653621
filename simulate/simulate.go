package simulate

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/katalvlaran/ldpc/channel"
	"github.com/katalvlaran/ldpc/decoder"
	"github.com/katalvlaran/ldpc/encoder"
	"github.com/katalvlaran/ldpc/specs"
	"github.com/katalvlaran/ldpc/spmatrix"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Run drains jobs through the full encode/modulate/channel/decode
// pipeline. For each Job it builds H once (via store.ExpandedH) and one
// encoder, then fans every (n, rate, SNR) point out to its own worker:
// each worker owns a private decoder and RNG stream, so nothing beyond
// the read-only H and encoder is shared across goroutines.
//
// Results are returned sorted by (N, Rate, SNR) for deterministic output
// regardless of completion order.
func Run(ctx context.Context, store *specs.Store, jobs []Job, opts ...Option) ([]SimResult, error) {
	cfg := newConfig(opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	var mu sync.Mutex
	var results []SimResult

	for jobIdx, job := range jobs {
		job := job

		h, err := store.ExpandedH(job.N, job.Rate)
		if err != nil {
			return nil, fmt.Errorf("simulate: expanding H for n=%d rate=%s: %w", job.N, job.Rate, err)
		}

		enc, err := encoder.New(h)
		if err != nil {
			return nil, fmt.Errorf("simulate: building encoder for n=%d rate=%s: %w", job.N, job.Rate, err)
		}

		rateValue, err := parseRateValue(job.Rate)
		if err != nil {
			return nil, fmt.Errorf("simulate: %w", err)
		}

		for snrIdx, snr := range job.SNRs {
			jobIdx, snrIdx, snr := jobIdx, snrIdx, snr

			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				result, err := runPoint(job, rateValue, snr, h, enc, cfg, seedFor(cfg.seed, jobIdx, snrIdx))
				if err != nil {
					return err
				}

				mu.Lock()
				results = append(results, result)
				mu.Unlock()

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.N != b.N {
			return a.N < b.N
		}
		if a.Rate != b.Rate {
			return a.Rate < b.Rate
		}

		return a.SNR < b.SNR
	})

	return results, nil
}

// runPoint drains cfg.maxWords trials through one (n, rate, SNR) point.
func runPoint(job Job, rateValue, snr float64, h *spmatrix.Matrix, enc *encoder.Encoder, cfg *config, seed uint64) (SimResult, error) {
	sigma := math.Sqrt(1 / (2 * rateValue * snr))

	dec, err := decoder.New(h, sigma, cfg.maxIterations)
	if err != nil {
		return SimResult{}, fmt.Errorf("simulate: building decoder for n=%d rate=%s: %w", job.N, job.Rate, err)
	}

	src := rand.NewSource(seed)
	rng := rand.New(src)

	var errored, totalIters int
	for word := 0; word < cfg.maxWords; word++ {
		u := make([]byte, enc.K())
		for i := range u {
			u[i] = byte(rng.Intn(2))
		}

		codeword, err := enc.Encode(u)
		if err != nil {
			return SimResult{}, fmt.Errorf("simulate: encoding: %w", err)
		}

		d := channel.Modulate(codeword)
		received := channel.AWGN(d, sigma, src)

		result, err := dec.Decode(received)
		if err != nil {
			return SimResult{}, fmt.Errorf("simulate: decoding: %w", err)
		}

		totalIters += result.Iterations
		if result.Failed() || !equalBits(result.Bits, u) {
			errored++
		}
	}

	return SimResult{
		N:              job.N,
		Rate:           job.Rate,
		SNR:            snr,
		Words:          cfg.maxWords,
		Errors:         errored,
		MeanIterations: float64(totalIters) / float64(cfg.maxWords),
	}, nil
}

func equalBits(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// seedFor derives a deterministic per-(job, SNR) seed from the base seed
// so repeated runs with the same jobs and base seed reproduce identical
// trials, while distinct configurations never share an RNG stream.
func seedFor(base int64, jobIdx, snrIdx int) uint64 {
	return uint64(base)*1_000_003 + uint64(jobIdx)*1009 + uint64(snrIdx)
}

// parseRateValue turns a rate label ("1/2", "2/3A") into its numeric
// value, ignoring any trailing letter suffix on the denominator.
func parseRateValue(rate string) (float64, error) {
	parts := strings.SplitN(rate, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed rate %q", rate)
	}

	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed rate %q: %w", rate, err)
	}

	denDigits := strings.TrimRightFunc(parts[1], func(r rune) bool { return !unicode.IsDigit(r) })
	den, err := strconv.Atoi(denDigits)
	if err != nil {
		return 0, fmt.Errorf("malformed rate %q: %w", rate, err)
	}

	return float64(num) / float64(den), nil
}
