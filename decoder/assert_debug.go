//go:build debug

package decoder

// assertNonZero panics on a zero entry, surfacing a degenerate
// GlobalSign input in debug builds (go build -tags debug). Release
// builds use the no-op in assert_release.go.
func assertNonZero(v []float64) {
	for _, x := range v {
		if x == 0 {
			panic("decoder: GlobalSign called with a zero-valued entry")
		}
	}
}
