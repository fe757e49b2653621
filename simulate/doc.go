// Package simulate runs the Monte-Carlo word-error-rate sweep a codec
// needs validating by: for each (block length, rate) configuration and
// each target SNR, it drains random messages through encode -> modulate
// -> AWGN -> decode and tallies the outcome.
//
// Run fans a list of Jobs out across a bounded worker pool (one worker
// per (n, rate, SNR) point), each worker owning its own decoder and RNG
// so no state is shared across goroutines beyond the read-only parity
// check matrix and encoder.
package simulate
