package smooth

// DenoiseBelow re-smooths the sub-threshold portion of a recovered signal.
//
// Samples with r[i] < threshold are gathered in ascending index order into
// one standalone sub-sequence, that sub-sequence is smoothed with
// MovingAverage(sub, w), and the smoothed values are written back to their
// original positions. Samples at or above the threshold are returned
// unchanged. The input is never modified.
//
// The gathered samples need not be temporally adjacent: the secondary
// smoothing deliberately treats them as one contiguous series, mixing
// values across any above-threshold gaps. This reproduces the behavior of
// the original apparatus pipeline. Whether sub-threshold runs were instead
// meant to be smoothed independently is ambiguous in the original design;
// callers who want per-run smoothing must split the signal themselves.
func DenoiseBelow(r []float64, threshold float64, w int) ([]float64, error) {
	out := make([]float64, len(r))
	copy(out, r)

	var idx []int
	for i, v := range r {
		if v < threshold {
			idx = append(idx, i)
		}
	}

	if len(idx) == 0 {
		return out, nil
	}

	sub := make([]float64, len(idx))
	for k, i := range idx {
		sub[k] = r[i]
	}

	smoothed, err := MovingAverage(sub, w)
	if err != nil {
		return nil, err
	}

	for k, i := range idx {
		out[i] = smoothed[k]
	}

	return out, nil
}
