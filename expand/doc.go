// Package expand implements the protograph expander: given a small
// integer base matrix Hb, a code length n, and a rate label, it produces
// the lifted parity-check matrix H by replacing each base entry with a
// z×z all-zero block (negative entries) or a cyclic column shift of the
// z×z identity (non-negative entries), where z = n/24.
//
// Rate "2/3A" uses shift p = num mod z; every other rate uses
// p = floor(num*z/96). Both formulas and the block semantics come from
// the 802.16e structured LDPC lift this package reproduces.
package expand
