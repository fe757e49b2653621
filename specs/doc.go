// Package specs loads the on-disk code tables an operator drops next to
// a simulation run: compressed base matrices (H-<digits>) and block-size
// tables (block-size-<digits>), both headerless-or-headered CSV files
// named so the fraction bar of the rate they describe is omitted (H-12
// for rate "1/2", H-23A for "2/3A").
//
// Store is the sole collaborator other packages need to go from a
// directory of such files to a ready-to-use *spmatrix.Matrix.
package specs
