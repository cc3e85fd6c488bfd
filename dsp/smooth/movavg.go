package smooth

import (
	"errors"
	"fmt"
)

// ErrInvalidWidth is returned for non-positive smoothing widths.
var ErrInvalidWidth = errors.New("smooth: width must be >= 1")

// MovingAverage smooths x with a centered, symmetric moving average of
// width w. Near the boundaries the window shrinks in odd steps (1, 3,
// 5, ...) instead of being padded, reflected, or truncated asymmetrically:
// for 1-based position i in a sequence of length L the effective span is
//
//	min(w, 2·i−1, 2·(L−i)+1)
//
// so the first and last samples pass through unchanged, the second and
// second-to-last average three samples, and so on until the full width
// applies. Even widths are reduced by one to the next lower odd value so
// the window stays centered.
//
// MovingAverage(x, 1) is the identity. The implementation is a single
// prefix-sum pass, O(L) regardless of w.
func MovingAverage(x []float64, w int) ([]float64, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, w)
	}

	if w%2 == 0 {
		w--
	}

	out := make([]float64, len(x))
	if w == 1 || len(x) == 0 {
		copy(out, x)
		return out, nil
	}

	// prefix[i] holds the sum of x[:i].
	prefix := make([]float64, len(x)+1)
	for i, v := range x {
		prefix[i+1] = prefix[i] + v
	}

	half := w / 2
	last := len(x) - 1

	for i := range x {
		h := half
		if i < h {
			h = i
		}
		if last-i < h {
			h = last - i
		}

		out[i] = (prefix[i+h+1] - prefix[i-h]) / float64(2*h+1)
	}

	return out, nil
}
