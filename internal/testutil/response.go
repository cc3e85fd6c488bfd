package testutil

import "math"

// ExpDecayResponse returns a causal exponential-decay response kernel of
// the given length with time constant tau (in samples), normalized to
// unit sum. It mimics the delayed, attenuated mixing of a gas-exchange
// sensing chamber.
func ExpDecayResponse(length int, tau float64) []float64 {
	h := make([]float64, length)

	var sum float64
	for i := range h {
		h[i] = math.Exp(-float64(i) / tau)
		sum += h[i]
	}
	for i := range h {
		h[i] /= sum
	}

	return h
}

// MeasuredFrom synthesizes the apparatus output for a reference input and
// a response kernel: the linear convolution trimmed to the reference
// length, so the two recordings cover the same samples.
func MeasuredFrom(reference, response []float64) []float64 {
	out := make([]float64, len(reference))
	for i, x := range reference {
		if x == 0 {
			continue
		}
		for j, h := range response {
			if i+j >= len(out) {
				break
			}
			out[i+j] += x * h
		}
	}
	return out
}
