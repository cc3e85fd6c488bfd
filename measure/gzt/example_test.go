package gzt_test

import (
	"fmt"
	"math"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/measure/gzt"
)

func ExampleBuildMatrix() {
	c, _ := gzt.BuildMatrix([]float64{1, 2, 3, 4, 5}, 2)

	rows, cols := c.Dims()
	fmt.Printf("%dx%d\n", rows, cols)
	for r := range rows {
		fmt.Println(c.At(r, 0), c.At(r, 1))
	}
	// Output:
	// 4x2
	// 1 2
	// 2 3
	// 3 4
	// 4 5
}

func ExamplePipeline_Calibrate() {
	// An ideal apparatus that reports its input unchanged calibrates to
	// the single coefficient 1.
	reference := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	p := gzt.New(gzt.WithWindowLength(1))

	cal, err := p.Calibrate(reference, reference)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("N = %d, a[0] = %.3f\n", len(cal.Coefficients), cal.Coefficients[0])
	// Output:
	// N = 1, a[0] = 1.000
}

func ExamplePipeline_Recover() {
	raw := []float64{2, 4, 6, 8, 10, 12}

	p := gzt.New(
		gzt.WithWindowLength(2),
		gzt.WithSmoothingWidth(1),
		gzt.WithThreshold(math.Inf(-1)),
	)

	recovered, err := p.Recover(raw, []float64{0.5, 0.5})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(recovered)
	// Output:
	// [3 5 7 9 11]
}
