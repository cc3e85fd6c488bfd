// Command gztrun runs GZT calibration and recovery over plain-text
// recordings in a single batch pass.
//
// Usage:
//
//	gztrun -mode calibrate -cal cal.txt -coeffs a.txt -window 120
//	gztrun -mode recover -raw raw.txt -coeffs a.txt -out recovered.txt
//	gztrun -mode both -cal cal.txt -raw raw.txt -coeffs a.txt -out recovered.txt
//	gztrun -simulate -cal cal.txt -raw raw.txt
//
// The calibration input is a three-column table (time, injected reference,
// measured output). The recovery input is a two-column table (time, raw
// measurement). The recovered output is a two-column table (time, value)
// truncated to the recovered length. The parameter vector file holds one
// value per line in plain decimal form.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/dsp/signal"
	"github.com/TheSochaLab/GZT-method-for-data-recovery/internal/tableio"
	"github.com/TheSochaLab/GZT-method-for-data-recovery/measure/gzt"
)

func main() {
	var (
		modeName  = flag.String("mode", "", "run mode: calibrate, recover, or both")
		calPath   = flag.String("cal", "", "calibration input table (time, reference, measured)")
		rawPath   = flag.String("raw", "", "recovery input table (time, raw measurement)")
		coeffPath = flag.String("coeffs", "", "parameter vector file (written by calibrate, read by recover)")
		outPath   = flag.String("out", "", "recovered output table (time, value)")
		window    = flag.Int("window", 0, "sliding-window length N (required for calibration)")
		smoothW   = flag.Int("smooth", 5, "primary smoothing width")
		denoiseW  = flag.Int("denoise", 20, "sub-threshold smoothing width")
		threshold = flag.Float64("threshold", 0.95, "denoiser threshold")
		condLimit = flag.Float64("cond", gzt.DefaultConditionLimit, "condition-number limit for the calibration solve")
		simulate  = flag.Bool("simulate", false, "write synthetic calibration and recovery tables, then exit")
		samples   = flag.Int("samples", 2000, "sample count per synthetic recording for -simulate")
	)
	flag.Parse()

	if *simulate {
		if err := writeSimulated(*calPath, *rawPath, *samples); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	mode, err := gzt.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	p := gzt.New(
		gzt.WithWindowLength(*window),
		gzt.WithSmoothingWidth(*smoothW),
		gzt.WithDenoiseWidth(*denoiseW),
		gzt.WithThreshold(*threshold),
		gzt.WithConditionLimit(*condLimit),
	)

	if err := run(p, mode, *calPath, *rawPath, *coeffPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run loads the inputs the mode requires, executes the pipeline, and
// persists whatever the mode produced.
func run(p *gzt.Pipeline, mode gzt.Mode, calPath, rawPath, coeffPath, outPath string) error {
	var (
		in      gzt.RunInput
		rawTime []float64
	)

	if mode == gzt.ModeCalibrate || mode == gzt.ModeBoth {
		if calPath == "" {
			return fmt.Errorf("-cal is required for mode %s", mode)
		}
		if coeffPath == "" {
			return fmt.Errorf("-coeffs is required for mode %s", mode)
		}

		cols, err := readColumnsFile(calPath, 3)
		if err != nil {
			return err
		}
		in.Reference, in.Measured = cols[1], cols[2]
	}

	if mode == gzt.ModeRecover || mode == gzt.ModeBoth {
		if rawPath == "" {
			return fmt.Errorf("-raw is required for mode %s", mode)
		}
		if outPath == "" {
			return fmt.Errorf("-out is required for mode %s", mode)
		}

		cols, err := readColumnsFile(rawPath, 2)
		if err != nil {
			return err
		}
		rawTime, in.Raw = cols[0], cols[1]
	}

	if mode == gzt.ModeRecover {
		if coeffPath == "" {
			return fmt.Errorf("-coeffs is required for mode %s", mode)
		}

		coeffs, err := readVectorFile(coeffPath)
		if err != nil {
			return err
		}
		in.Coefficients = coeffs
	}

	res, err := p.Run(mode, in)
	if err != nil {
		return err
	}

	if res.Calibration != nil {
		if err := writeVectorFile(coeffPath, res.Calibration.Coefficients); err != nil {
			return err
		}
		r := res.Calibration.Residual
		fmt.Printf("calibrated %d coefficients, residual RMS %.4g (%.1f dB), max |e| %.4g at %d\n",
			len(res.Calibration.Coefficients), r.RMS, r.RMS_dB, r.MaxAbs, r.MaxPos)
	}

	if res.Recovered != nil {
		if err := writeColumnsFile(outPath, rawTime, res.Recovered); err != nil {
			return err
		}
		fmt.Printf("recovered %d samples -> %s\n", len(res.Recovered), outPath)
	}

	return nil
}

// writeSimulated generates a synthetic calibration pair and a synthetic
// raw recording: injection pulse trains pushed through an exponential-
// decay apparatus response with a little measurement noise.
func writeSimulated(calPath, rawPath string, samples int) error {
	if calPath == "" || rawPath == "" {
		return fmt.Errorf("-simulate requires -cal and -raw output paths")
	}

	gen := signal.NewGenerator(signal.WithSeed(42))

	response := expDecayKernel(40, 10)

	reference, err := gen.PulseTrain(200, 20, 1.0, samples)
	if err != nil {
		return err
	}
	measured, err := apparatusOutput(gen, reference, response)
	if err != nil {
		return err
	}

	rawInput, err := gen.PulseTrain(300, 30, 0.8, samples)
	if err != nil {
		return err
	}
	raw, err := apparatusOutput(gen, rawInput, response)
	if err != nil {
		return err
	}

	times := make([]float64, samples)
	for i := range times {
		times[i] = float64(i) / gen.SampleRate()
	}

	if err := writeColumnsFile(calPath, times, reference, measured); err != nil {
		return err
	}
	if err := writeColumnsFile(rawPath, times, raw); err != nil {
		return err
	}

	fmt.Printf("wrote %d-sample calibration table to %s and raw table to %s\n",
		samples, calPath, rawPath)
	return nil
}

// apparatusOutput convolves a reference with the response kernel, trims to
// the reference length, and adds 1% measurement noise.
func apparatusOutput(gen *signal.Generator, reference, response []float64) ([]float64, error) {
	full, err := signal.Convolve(reference, response)
	if err != nil {
		return nil, err
	}
	out := full[:len(reference)]

	noise, err := gen.WhiteNoise(0.01, len(out))
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] += noise[i]
	}

	return out, nil
}

// expDecayKernel builds a unit-sum exponential-decay response of the given
// length and time constant in samples.
func expDecayKernel(length int, tau float64) []float64 {
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

func readColumnsFile(path string, cols int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := tableio.ReadColumns(f, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func readVectorFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := tableio.ReadVector(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func writeVectorFile(path string, v []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tableio.WriteVector(f, v)
}

func writeColumnsFile(path string, cols ...[]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tableio.WriteColumns(f, cols...)
}
