package gzt

import (
	"fmt"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/dsp/smooth"
	"github.com/TheSochaLab/GZT-method-for-data-recovery/stats/residual"
)

// Mode selects which halves of the GZT workflow a run executes.
type Mode int

// Run modes.
const (
	ModeCalibrate Mode = iota + 1 // estimate a parameter vector only
	ModeRecover                   // recover a signal with a stored vector
	ModeBoth                      // calibrate, then recover with the fresh vector
)

// String returns the mode name as used on the command line.
func (m Mode) String() string {
	switch m {
	case ModeCalibrate:
		return "calibrate"
	case ModeRecover:
		return "recover"
	case ModeBoth:
		return "both"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "calibrate":
		return ModeCalibrate, nil
	case "recover":
		return ModeRecover, nil
	case "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Pipeline runs GZT calibration and recovery over complete in-memory
// recordings. It carries configuration only; runs share no state.
type Pipeline struct {
	cfg Config
	est Estimator
}

// New creates a pipeline from the default config and the given options.
func New(opts ...Option) *Pipeline {
	cfg := ApplyOptions(opts...)
	return &Pipeline{
		cfg: cfg,
		est: Estimator{ConditionLimit: cfg.ConditionLimit},
	}
}

// Config returns a copy of the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Calibration holds the outcome of a calibration run.
type Calibration struct {
	// Coefficients is the estimated linear-response parameter vector,
	// length WindowLength. Its length is an implicit contract with every
	// later recovery run.
	Coefficients []float64

	// Residual describes how well the estimated vector reconstructs the
	// injected reference from the measured output.
	Residual residual.Stats
}

// Calibrate estimates the apparatus parameter vector from a known injected
// reference signal and the simultaneously recorded measured output. The
// two recordings must cover the same samples; the reference must be at
// least as long as the design matrix has rows.
func (p *Pipeline) Calibrate(reference, measured []float64) (*Calibration, error) {
	c, err := BuildMatrix(measured, p.cfg.WindowLength)
	if err != nil {
		return nil, err
	}

	rows, _ := c.Dims()
	if len(reference) < rows {
		return nil, fmt.Errorf("%w: reference length %d, need %d",
			ErrDimensionMismatch, len(reference), rows)
	}

	coeffs, err := p.est.Estimate(c, reference)
	if err != nil {
		return nil, err
	}

	recon, err := Reconstruct(c, coeffs)
	if err != nil {
		return nil, err
	}

	stats, err := residual.Calculate(recon, reference[:rows])
	if err != nil {
		return nil, err
	}

	return &Calibration{Coefficients: coeffs, Residual: stats}, nil
}

// Recover reconstructs the instantaneous input signal from a raw recording
// using a previously estimated parameter vector, then applies the primary
// moving-average pass and the sub-threshold denoising pass. The result has
// len(raw)-len(coeffs)+1 samples.
func (p *Pipeline) Recover(raw, coeffs []float64) ([]float64, error) {
	if p.cfg.WindowLength != 0 && len(coeffs) != p.cfg.WindowLength {
		return nil, fmt.Errorf("%w: %d coefficients, configured window %d",
			ErrDimensionMismatch, len(coeffs), p.cfg.WindowLength)
	}

	c, err := BuildMatrix(raw, len(coeffs))
	if err != nil {
		return nil, err
	}

	recon, err := Reconstruct(c, coeffs)
	if err != nil {
		return nil, err
	}

	smoothed, err := smooth.MovingAverage(recon, p.cfg.SmoothingWidth)
	if err != nil {
		return nil, err
	}

	return smooth.DenoiseBelow(smoothed, p.cfg.Threshold, p.cfg.DenoiseWidth)
}

// RunInput carries the recordings and stored coefficients for Run.
type RunInput struct {
	Reference    []float64 // injected reference (calibration modes)
	Measured     []float64 // apparatus output recorded alongside Reference
	Raw          []float64 // new raw recording to recover
	Coefficients []float64 // stored parameter vector (ModeRecover)
}

// RunResult holds whatever the selected mode produced.
type RunResult struct {
	Calibration *Calibration
	Recovered   []float64
}

// Run executes one batch run in the requested mode. ModeBoth calibrates
// first and recovers with the freshly estimated vector, ignoring
// in.Coefficients. Any error aborts the whole run.
func (p *Pipeline) Run(mode Mode, in RunInput) (*RunResult, error) {
	res := &RunResult{}

	switch mode {
	case ModeCalibrate, ModeBoth:
		cal, err := p.Calibrate(in.Reference, in.Measured)
		if err != nil {
			return nil, err
		}
		res.Calibration = cal

		if mode == ModeCalibrate {
			return res, nil
		}

		recovered, err := p.Recover(in.Raw, cal.Coefficients)
		if err != nil {
			return nil, err
		}
		res.Recovered = recovered

	case ModeRecover:
		recovered, err := p.Recover(in.Raw, in.Coefficients)
		if err != nil {
			return nil, err
		}
		res.Recovered = recovered

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	return res, nil
}
