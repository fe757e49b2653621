package simulate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"n", "rate", "SNR", "words", "errors", "mean_iterations"}

// WriteCSV persists results for a single (n, rate) configuration to path,
// one row per SNR point, in the order given.
func WriteCSV(results []SimResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simulate: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("simulate: writing header to %s: %w", path, err)
	}

	for _, r := range results {
		if err := w.Write(rowOf(r)); err != nil {
			return fmt.Errorf("simulate: writing row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("simulate: flushing %s: %w", path, err)
	}

	return nil
}

// WriteCombinedCSV concatenates the per-configuration CSVs named in
// perConfig into a single SNRvsPe.csv-style file at outPath, writing the
// header once.
func WriteCombinedCSV(perConfig []string, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("simulate: creating %s: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("simulate: writing header to %s: %w", outPath, err)
	}

	for _, path := range perConfig {
		if err := appendRows(w, path); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("simulate: flushing %s: %w", outPath, err)
	}

	return nil
}

func appendRows(w *csv.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("simulate: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("simulate: reading %s: %w", path, err)
	}
	if len(records) < 1 {
		return fmt.Errorf("simulate: %s is empty", path)
	}

	for _, row := range records[1:] {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("simulate: writing row from %s: %w", path, err)
		}
	}

	return nil
}

func rowOf(r SimResult) []string {
	return []string{
		strconv.Itoa(r.N),
		r.Rate,
		strconv.FormatFloat(r.SNR, 'g', -1, 64),
		strconv.Itoa(r.Words),
		strconv.Itoa(r.Errors),
		strconv.FormatFloat(r.MeanIterations, 'g', -1, 64),
	}
}

// CombinedOutputPath is the filename convention cmd/ldpcsim uses for the
// concatenated sweep output.
func CombinedOutputPath(dir string) string {
	return filepath.Join(dir, "SNRvsPe.csv")
}
