// Package residual computes reconstruction-residual statistics between a
// recovered or reconstructed signal and its reference.
package residual

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when the two sequences differ in length.
var ErrLengthMismatch = errors.New("residual: sequences differ in length")

// Stats holds residual statistics for got vs. want.
//
//nolint:revive
type Stats struct {
	Length int
	RMS    float64 // root mean square of got−want
	RMS_dB float64
	MaxAbs float64 // largest absolute residual
	MaxPos int     // index of the largest absolute residual
	Bias   float64 // mean residual
	NRMS   float64 // RMS normalized by the peak-to-peak range of want
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes residual statistics in a single pass. The sequences
// must have equal, non-zero length.
func Calculate(got, want []float64) (Stats, error) {
	if len(got) != len(want) {
		return Stats{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(got), len(want))
	}

	n := len(got)
	if n == 0 {
		return Stats{RMS_dB: math.Inf(-1)}, nil
	}

	var (
		sum    float64
		sumSq  float64
		maxAbs float64
		maxPos int
	)

	minWant, maxWant := want[0], want[0]

	for i := range got {
		d := got[i] - want[i]
		sum += d
		sumSq += d * d

		if ad := math.Abs(d); ad > maxAbs {
			maxAbs = ad
			maxPos = i
		}

		if want[i] < minWant {
			minWant = want[i]
		}
		if want[i] > maxWant {
			maxWant = want[i]
		}
	}

	s := Stats{
		Length: n,
		RMS:    math.Sqrt(sumSq / float64(n)),
		MaxAbs: maxAbs,
		MaxPos: maxPos,
		Bias:   sum / float64(n),
	}
	s.RMS_dB = ampTodB(s.RMS)

	if r := maxWant - minWant; r > 0 {
		s.NRMS = s.RMS / r
	}

	return s, nil
}
