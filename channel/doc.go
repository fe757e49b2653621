// Package channel implements the BPSK modulator and AWGN channel model:
// a codeword bit b maps to symbol 1-2b in {+1,-1}; the channel adds
// i.i.d. Gaussian noise N(0, sigma^2) per sample. It also derives the
// intrinsic log-likelihood-ratio vector the decoder needs to seed its
// message tables: lambda_j = 2*r_j/sigma^2.
package channel
