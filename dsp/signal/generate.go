// Package signal generates deterministic reference and test signals for
// GZT calibration runs, and synthesizes apparatus outputs by direct
// convolution with a response kernel.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate used by time-based generators.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. The default sample
// rate is 100 Hz, typical for gas-exchange recordings.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 100,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if freqHz <= 0 {
		return nil, fmt.Errorf("signal: sine frequency must be > 0: %f", freqHz)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// PulseTrain generates a rectangular injection pulse train: a pulse of
// width samples at the given amplitude every period samples, starting at
// sample zero. It models the repeated tracer injections of a calibration
// recording.
func (g *Generator) PulseTrain(period, width int, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: pulse train samples must be > 0: %d", samples)
	}
	if period <= 0 {
		return nil, fmt.Errorf("signal: pulse period must be > 0: %d", period)
	}
	if width <= 0 || width > period {
		return nil, fmt.Errorf("signal: pulse width must be in 1..period: %d", width)
	}
	out := make([]float64, samples)
	for i := range out {
		if i%period < width {
			out[i] = amplitude
		}
	}
	return out, nil
}

// Convolve returns the full linear convolution of x and h, length
// len(x)+len(h)-1. Used to synthesize a measured apparatus output from a
// reference input and a response kernel.
func Convolve(x, h []float64) ([]float64, error) {
	if len(x) == 0 || len(h) == 0 {
		return nil, fmt.Errorf("signal: convolve inputs must not be empty")
	}
	out := make([]float64, len(x)+len(h)-1)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, hj := range h {
			out[i+j] += xi * hj
		}
	}
	return out, nil
}
