// Command ldpcsim runs a word-error-rate sweep over one or more
// (block length, rate) configurations read from a directory of base
// matrix and block-size tables, and writes the per-configuration and
// combined CSV results an operator would plot against SNR.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ldpc/simulate"
	"github.com/katalvlaran/ldpc/specs"
	"github.com/spf13/pflag"
)

func main() {
	var (
		specsDir      = pflag.String("specs-dir", "specs", "directory containing H-<digits> and block-size-<digits> files")
		outDir        = pflag.String("out", ".", "directory results are written to")
		processes     = pflag.IntP("processes", "p", 4, "number of concurrent (n, rate, SNR) workers")
		maxWords      = pflag.Int("max-words", 1000, "trials drained per (n, rate, SNR) point")
		maxIterations = pflag.Int("max-iterations", 50, "sum-product iteration cap")
		seed          = pflag.Int64("seed", 1, "base RNG seed")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	store := specs.NewStore(*specsDir)
	jobs, err := buildJobs(store)
	if err != nil {
		logger.Fatal("building jobs from specs directory", "err", err)
	}

	opts := []simulate.Option{
		simulate.WithSeed(*seed),
		simulate.WithWorkers(*processes),
		simulate.WithMaxWords(*maxWords),
		simulate.WithMaxIterations(*maxIterations),
		simulate.WithOutputDir(*outDir),
	}

	start := time.Now()
	results, err := simulate.Run(context.Background(), store, jobs, opts...)
	if err != nil {
		logger.Fatal("simulation run failed", "err", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("creating output directory", "dir", *outDir, "err", err)
	}

	perConfig, err := writePerConfigCSVs(results, *outDir)
	if err != nil {
		logger.Fatal("writing per-configuration CSVs", "err", err)
	}

	combined := simulate.CombinedOutputPath(*outDir)
	if err := simulate.WriteCombinedCSV(perConfig, combined); err != nil {
		logger.Fatal("writing combined CSV", "path", combined, "err", err)
	}

	for _, r := range results {
		logger.Info("configuration complete",
			"n", r.N, "rate", r.Rate, "snr", r.SNR,
			"words", r.Words, "errors", r.Errors, "mean_iterations", r.MeanIterations,
		)
	}

	logger.Info("sweep complete", "configurations", len(results), "elapsed", time.Since(start), "out", combined)
}

// buildJobs enumerates every rate and code length the specs directory
// offers and sweeps a fixed SNR ladder for each, mirroring the
// collaborator's code_rates/code_lengths discovery.
func buildJobs(store *specs.Store) ([]simulate.Job, error) {
	rates, err := store.CodeRates()
	if err != nil {
		return nil, fmt.Errorf("listing code rates: %w", err)
	}

	snrLadder := []float64{0.5, 1, 1.5, 2, 2.5, 3}

	var jobs []simulate.Job
	for _, rate := range rates {
		lengths, err := store.CodeLengths(rate)
		if err != nil {
			return nil, fmt.Errorf("listing code lengths for rate %s: %w", rate, err)
		}

		for _, n := range lengths {
			jobs = append(jobs, simulate.Job{N: n, Rate: rate, SNRs: snrLadder})
		}
	}

	return jobs, nil
}

// writePerConfigCSVs groups results by (n, rate) and writes one CSV per
// group, returning the written paths in a stable order for
// WriteCombinedCSV to concatenate.
func writePerConfigCSVs(results []simulate.SimResult, outDir string) ([]string, error) {
	type key struct {
		n    int
		rate string
	}

	order := make([]key, 0)
	grouped := make(map[key][]simulate.SimResult)
	for _, r := range results {
		k := key{r.N, r.Rate}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], r)
	}

	paths := make([]string, 0, len(order))
	for _, k := range order {
		path := filepath.Join(outDir, fmt.Sprintf("n%d-rate%s.csv", k.n, sanitizeRate(k.rate)))
		if err := simulate.WriteCSV(grouped[k], path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func sanitizeRate(rate string) string {
	out := make([]byte, 0, len(rate))
	for i := 0; i < len(rate); i++ {
		if rate[i] == '/' {
			continue
		}
		out = append(out, rate[i])
	}

	return string(out)
}
