// Package decoder implements the iterative sum-product (belief
// propagation) decoder for a fixed LDPC parity-check matrix H. A Decoder
// walks H's compressed sparse graph (package spmatrix), maintaining two
// flat per-edge message arrays — R (check-to-variable) and E
// (variable-to-check) — so that neither array ever materializes as an
// m×n dense matrix.
//
// Message scheduling is flooding: every iteration recomputes all of R
// from last iteration's E (the check-node update), takes a tentative
// hard decision, checks parity, and — only if parity failed — recomputes
// all of E from the new R (the variable-node update) before the next
// iteration. A Decoder instance owns its message tables for the lifetime
// of one Decode call and reuses them across calls to avoid reallocating
// on the hot path.
package decoder
