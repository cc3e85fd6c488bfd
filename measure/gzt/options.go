package gzt

// Config defines GZT pipeline settings.
type Config struct {
	// WindowLength is the sliding-window and parameter-vector length N.
	// It models the effective memory of the apparatus response and is
	// chosen empirically; there is no meaningful default, so it must be
	// set before calibration.
	WindowLength int

	// SmoothingWidth is the moving-average width of the primary
	// smoothing pass applied to every recovered signal.
	SmoothingWidth int

	// DenoiseWidth is the moving-average width of the secondary pass
	// applied to sub-threshold samples.
	DenoiseWidth int

	// Threshold is the noise-floor level below which recovered samples
	// are re-smoothed. Determined empirically per apparatus, e.g. with
	// measure/noisefloor on a pure-noise recording.
	Threshold float64

	// ConditionLimit rejects calibration solves whose design-matrix
	// condition estimate exceeds it.
	ConditionLimit float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the post-processing and solver defaults of the
// original apparatus. WindowLength is left zero and must be configured.
func DefaultConfig() Config {
	return Config{
		SmoothingWidth: 5,
		DenoiseWidth:   20,
		Threshold:      0.95,
		ConditionLimit: DefaultConditionLimit,
	}
}

// WithWindowLength sets the sliding-window length N.
func WithWindowLength(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.WindowLength = n
		}
	}
}

// WithSmoothingWidth sets the primary moving-average width.
func WithSmoothingWidth(w int) Option {
	return func(cfg *Config) {
		if w > 0 {
			cfg.SmoothingWidth = w
		}
	}
}

// WithDenoiseWidth sets the secondary sub-threshold smoothing width.
func WithDenoiseWidth(w int) Option {
	return func(cfg *Config) {
		if w > 0 {
			cfg.DenoiseWidth = w
		}
	}
}

// WithThreshold sets the denoiser threshold. Infinities are valid: -Inf
// disables the secondary pass, +Inf re-smooths every sample.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		cfg.Threshold = threshold
	}
}

// WithConditionLimit sets the largest acceptable condition estimate for
// the calibration solve.
func WithConditionLimit(limit float64) Option {
	return func(cfg *Config) {
		if limit > 0 {
			cfg.ConditionLimit = limit
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
