package smooth

import (
	"errors"
	"testing"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/internal/testutil"
)

func TestMovingAverage_WidthOneIsIdentity(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 25)

	got, err := MovingAverage(x, 1)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, x, 0)
}

func TestMovingAverage_ConstantFixedPoint(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1, 1, 1}

	got, err := MovingAverage(x, 3)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, x, 1e-12)
}

func TestMovingAverage_BoundaryShrinkage(t *testing.T) {
	// Width 5 over 7 samples: spans are 1, 3, 5, 5, 5, 3, 1.
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	got, err := MovingAverage(x, 5)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7} // linear input is a fixed point of centered spans
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestMovingAverage_SpansExactly(t *testing.T) {
	// Impulse input exposes the effective span at each position.
	x := []float64{0, 0, 1, 0, 0}

	got, err := MovingAverage(x, 3)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}

	// Position 1-3 (0-based) see the impulse with span 3; the endpoints
	// shrink to span 1 and see nothing.
	want := []float64{0, 1.0 / 3, 1.0 / 3, 1.0 / 3, 0}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestMovingAverage_EvenWidthReduced(t *testing.T) {
	x := testutil.DeterministicNoise(5, 1, 40)

	even, err := MovingAverage(x, 6)
	if err != nil {
		t.Fatalf("MovingAverage(6): %v", err)
	}
	odd, err := MovingAverage(x, 5)
	if err != nil {
		t.Fatalf("MovingAverage(5): %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, even, odd, 0)
}

func TestMovingAverage_WiderThanInput(t *testing.T) {
	// Every window shrinks; the middle sample averages the whole input.
	x := []float64{3, 6, 9}

	got, err := MovingAverage(x, 101)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 6, 9}, 1e-12)
}

func TestMovingAverage_Empty(t *testing.T) {
	got, err := MovingAverage(nil, 3)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("length = %d, want 0", len(got))
	}
}

func TestMovingAverage_InvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1, -7} {
		_, err := MovingAverage([]float64{1, 2, 3}, w)
		if !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("width %d: err = %v, want ErrInvalidWidth", w, err)
		}
	}
}

func TestMovingAverage_DoesNotModifyInput(t *testing.T) {
	x := []float64{5, 1, 5, 1, 5}
	orig := append([]float64(nil), x...)

	_, err := MovingAverage(x, 3)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, x, orig, 0)
}
