package simulate

// Job describes one (block length, rate) configuration to sweep across
// several SNR points.
type Job struct {
	N    int
	Rate string
	SNRs []float64
}

// SimResult tallies the outcome of draining Words trials through one
// (N, Rate, SNR) configuration.
type SimResult struct {
	N              int
	Rate           string
	SNR            float64
	Words          int
	Errors         int
	MeanIterations float64
}

// Option customizes a Run invocation. As a rule, option constructors
// never panic at runtime.
type Option func(cfg *config)

// config holds Run's tunables:
//   - seed:          base RNG seed; each (n, rate, SNR) worker derives its
//     own deterministic seed from this plus its configuration index.
//   - workers:       maximum concurrent (n, rate, SNR) workers.
//   - maxWords:      trials drained per (n, rate, SNR) point.
//   - maxIterations: sum-product iteration cap passed to decoder.New.
//   - outputDir:     output directory reported by ResolveOutputDir; Run
//     itself writes no files.
type config struct {
	seed          int64
	workers       int
	maxWords      int
	maxIterations int
	outputDir     string
}

// newConfig returns a config initialized with defaults, then applies each
// option in order. Later options override earlier ones.
func newConfig(opts ...Option) *config {
	cfg := &config{
		seed:          1,
		workers:       4,
		maxWords:      1000,
		maxIterations: 50,
		outputDir:     ".",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed sets the base RNG seed each worker derives its own stream from.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithWorkers bounds the number of concurrent (n, rate, SNR) workers. A
// non-positive value is a no-op, leaving the previous value in place.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithMaxWords sets how many trials are drained per (n, rate, SNR) point.
// A non-positive value is a no-op.
func WithMaxWords(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxWords = n
		}
	}
}

// WithMaxIterations sets the sum-product iteration cap. A non-positive
// value is a no-op.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIterations = n
		}
	}
}

// WithOutputDir sets the output directory that ResolveOutputDir reports.
// Run writes no files, and WriteCSV/WriteCombinedCSV take explicit paths,
// so neither reads this value. An empty value is a no-op.
func WithOutputDir(dir string) Option {
	return func(cfg *config) {
		if dir != "" {
			cfg.outputDir = dir
		}
	}
}

// ResolveOutputDir applies opts and returns the resulting output
// directory, letting callers (e.g. cmd/ldpcsim) agree with Run on where
// CSVs belong without duplicating the default.
func ResolveOutputDir(opts ...Option) string {
	return newConfig(opts...).outputDir
}
