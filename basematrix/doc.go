// Package basematrix loads the compact "base matrix + rate" description
// that the protograph expander (package expand) lifts into a full
// parity-check matrix. Entries are small integers: -1 marks a zero block,
// v >= 0 selects a cyclic shift of the identity block (see package expand
// for the shift formula).
//
// The on-disk format is a headerless comma-separated table of integers,
// named "H-<digits>" where <digits> encodes the rate with the fraction
// bar omitted (H-12 -> "1/2", H-23A -> "2/3A").
package basematrix
