// Package phi implements the nonlinear kernel used by the sum-product
// LDPC decoder's check-node update:
//
//	phi(x) = log( (1+e^-x) / (1-e^-x) )     for x > 0
//
// phi is its own inverse on (0, +inf): phi(phi(x)) == x. That property is
// what lets the check-node update combine magnitudes with a single call to
// phi on each side of the sum. See decoder.Decode for the caller.
package phi
