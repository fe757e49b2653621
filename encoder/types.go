package encoder

import "errors"

// Sentinel errors for encoder construction and use.
var (
	// ErrSingularSystematicBlock indicates the trailing (n-k)x(n-k) block
	// C of H is not invertible over GF(2); the supplied base matrices are
	// expected to avoid this, so it signals a misconfigured H.
	ErrSingularSystematicBlock = errors.New("encoder: non-systematic H: C singular")

	// ErrWrongMessageLength indicates Encode was called with a vector
	// whose length does not equal k = n - rows(H).
	ErrWrongMessageLength = errors.New("encoder: message length != k")
)

// Encoder maps k-bit messages to n-bit systematic codewords for a fixed H.
type Encoder struct {
	n, k int
	a    [][]byte // (n-k) x k generator tail: c = [u | a*u mod 2]
}

// N returns the codeword length.
func (e *Encoder) N() int { return e.n }

// K returns the message length.
func (e *Encoder) K() int { return e.k }
