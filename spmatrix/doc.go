// Package spmatrix implements the compressed sparse bipartite graph used
// to walk an LDPC parity-check matrix H: two parallel adjacency views —
// row-wise (check node -> variable nodes) and column-wise (variable node
// -> check nodes) — sharing a single edge-id table so that a decoder's
// per-edge message arrays can be addressed directly instead of through an
// m×n dense matrix.
//
// Rows of H are the check nodes, columns are the variable nodes. Both
// adjacency views are built once, at construction time, and are immutable
// afterward: they may be shared read-only across goroutines (see
// decoder.Decoder, which owns no private copy of H).
package spmatrix
