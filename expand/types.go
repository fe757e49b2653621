package expand

import "errors"

// Sentinel errors for the protograph expander.
var (
	// ErrInvalidCodeLength indicates the expansion factor z = n/24 is < 1,
	// i.e. n < 24.
	ErrInvalidCodeLength = errors.New("expand: code length too small")
)

// VariantA is the rate label that selects the alternate shift formula
// (p = num mod z instead of p = floor(num*z/96)).
const VariantA = "2/3A"
