package decoder

// GlobalSign returns +1 if v has an even number of negative entries, -1
// otherwise. It is a reference utility exercising the same sign-combiner
// logic as updateCheckNodes's totalSign accumulation, exposed directly
// for unit testing.
//
// v must not contain a zero entry (a zero LLR should never reach here in
// practice: phi's low-side clamp keeps check-node magnitudes away from
// zero). Callers that violate this get a degenerate answer: a zero
// factors the running product to 0, which is not > 0, so GlobalSign
// silently returns -1. assertNonZero upgrades this to a panic in debug
// builds.
func GlobalSign(v []float64) int {
	assertNonZero(v)

	product := 1.0
	for _, x := range v {
		product *= x
	}

	if product > 0 {
		return 1
	}

	return -1
}
