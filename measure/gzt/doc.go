// Package gzt implements the Generalized Z-Transform (GZT) method for
// recovering a time-varying input signal from the delayed, attenuated,
// mixed recording produced by a physical sensing apparatus.
//
// The method has two halves sharing one computational core. Calibration
// takes a known injected reference signal together with the simultaneously
// recorded apparatus output and estimates a finite-length linear-response
// parameter vector by least squares over a sliding-window design matrix.
// Recovery applies a previously estimated parameter vector to the design
// matrix of a new raw recording and post-processes the result with a
// boundary-shrinking moving average and a sub-threshold denoising pass
// (see dsp/smooth).
//
// All functions operate on complete in-memory recordings in a single
// batch pass; nothing here streams, blocks, or retains state across calls.
package gzt
