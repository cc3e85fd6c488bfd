// Package smooth provides the two post-processing passes applied to GZT
// recovered signals: a centered moving average whose window shrinks
// symmetrically at the sequence boundaries, and a threshold-gated
// denoiser that re-smooths only the sub-threshold portion of a signal.
//
// Both functions are pure and apply to any []float64 sequence.
package smooth
