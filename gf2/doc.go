// Package gf2 implements dense linear algebra over GF(2), the binary
// field {0,1} with addition = XOR and multiplication = AND. It backs the
// systematic LDPC encoder's requirement to solve C*A = B for A, exactly,
// without the numerical fragility of inverting C over the reals and
// rounding (see encoder.New).
package gf2
