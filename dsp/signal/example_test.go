package signal_test

import (
	"fmt"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/dsp/signal"
)

func ExampleGenerator_PulseTrain() {
	g := signal.NewGenerator()

	ref, _ := g.PulseTrain(5, 2, 1, 12)

	fmt.Println(ref)
	// Output:
	// [1 1 0 0 0 1 1 0 0 0 1 1]
}

func ExampleConvolve() {
	// An apparatus response smears each injection across later samples.
	injection := []float64{1, 0, 0, 0}
	response := []float64{0.5, 0.25, 0.25}

	measured, _ := signal.Convolve(injection, response)

	fmt.Println(measured[:4])
	// Output:
	// [0.5 0.25 0.25 0]
}
