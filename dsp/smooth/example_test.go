package smooth_test

import (
	"fmt"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/dsp/smooth"
)

func ExampleMovingAverage() {
	// The window shrinks symmetrically at the ends: spans 1, 3, 3, 3, 1.
	out, _ := smooth.MovingAverage([]float64{0, 0, 3, 0, 0}, 3)

	fmt.Println(out)
	// Output:
	// [0 1 1 1 0]
}

func ExampleDenoiseBelow() {
	// Values below 5 are gathered ([0 3 0]), smoothed as one series
	// ([0 1 0]), and written back; values at or above 5 pass through.
	out, _ := smooth.DenoiseBelow([]float64{0, 9, 3, 9, 0}, 5, 3)

	fmt.Println(out)
	// Output:
	// [0 9 1 9 0]
}
