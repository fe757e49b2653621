// Package encoder builds a systematic LDPC encoder from a parity-check
// matrix H. Partitioning H = [B | C] over its last (n-k) columns, the
// encoder solves A = C^-1 * B over GF(2) once at construction time, then
// maps a k-bit message u to the systematic codeword c = [u | A*u mod 2],
// which satisfies H*c = 0 (mod 2) by construction.
package encoder
