package noisefloor

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by noise-floor analysis.
var (
	ErrShortRecording = errors.New("noisefloor: recording too short")
	ErrBadSegmentSize = errors.New("noisefloor: segment size must be a power of two >= 16")
)

// minSamples is the shortest recording the analyzer accepts.
const minSamples = 32

// Estimate holds noise-floor analysis results for a recovered pure-noise run.
type Estimate struct {
	Mean         float64
	StdDev       float64
	RMS          float64
	Percentile95 float64 // 95th percentile of sample values
	MedianPower  float64 // median bin of the averaged Welch periodogram
	SegmentSize  int     // periodogram segment length actually used

	// SuggestedThreshold is Mean + 3*StdDev: a recovered pure-noise run
	// scatters around the floor, and samples the apparatus cannot
	// distinguish from noise stay below this level.
	SuggestedThreshold float64
}

// Analyzer computes noise-floor estimates.
type Analyzer struct {
	// SegmentSize is the Welch periodogram segment length, a power of
	// two. Segments overlap by half. When the recording is shorter than
	// SegmentSize, the largest fitting power of two is used instead.
	SegmentSize int
}

// NewAnalyzer creates an analyzer with the default segment size of 256.
func NewAnalyzer() *Analyzer {
	return &Analyzer{SegmentSize: 256}
}

// Analyze computes the noise-floor estimate for a recovered pure-noise
// recording of at least 32 samples.
func (a *Analyzer) Analyze(noise []float64) (Estimate, error) {
	n := len(noise)
	if n < minSamples {
		return Estimate{}, fmt.Errorf("%w: %d samples, need %d", ErrShortRecording, n, minSamples)
	}

	seg := a.SegmentSize
	if seg < 16 || seg&(seg-1) != 0 {
		return Estimate{}, fmt.Errorf("%w: %d", ErrBadSegmentSize, seg)
	}
	for seg > n {
		seg >>= 1
	}

	est := timeStats(noise)
	est.SegmentSize = seg

	median, err := medianWelchPower(noise, seg)
	if err != nil {
		return Estimate{}, err
	}
	est.MedianPower = median

	return est, nil
}

// timeStats fills the time-domain fields of the estimate in one pass plus
// a sort for the percentile.
func timeStats(noise []float64) Estimate {
	n := float64(len(noise))

	var sum, sumSq float64
	for _, v := range noise {
		sum += v
		sumSq += v * v
	}

	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	std := math.Sqrt(variance)

	sorted := make([]float64, len(noise))
	copy(sorted, noise)
	sort.Float64s(sorted)

	return Estimate{
		Mean:               mean,
		StdDev:             std,
		RMS:                math.Sqrt(sumSq / n),
		Percentile95:       sorted[int(0.95*float64(len(sorted)-1))],
		SuggestedThreshold: mean + 3*std,
	}
}

// medianWelchPower computes the median bin of a Welch-averaged power
// spectrum with Hann-windowed segments and 50% overlap. The median is
// robust against residual tonal interference in the noise recording.
func medianWelchPower(noise []float64, seg int) (float64, error) {
	plan, err := algofft.NewPlan64(seg)
	if err != nil {
		return 0, fmt.Errorf("noisefloor: fft plan: %w", err)
	}

	hann := make([]float64, seg)
	for i := range hann {
		hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(seg-1)))
	}

	var (
		buf    = make([]float64, seg)
		inData = make([]complex128, seg)
		out    = make([]complex128, seg)
		re     = make([]float64, seg)
		im     = make([]float64, seg)
		power  = make([]float64, seg)

		bins     = seg/2 + 1
		accum    = make([]float64, bins)
		segments int
	)

	hop := seg / 2
	for start := 0; start+seg <= len(noise); start += hop {
		copy(buf, noise[start:start+seg])
		vecmath.MulBlockInPlace(buf, hann)

		for i, v := range buf {
			inData[i] = complex(v, 0)
		}

		if err := plan.Forward(out, inData); err != nil {
			return 0, fmt.Errorf("noisefloor: fft: %w", err)
		}

		for i, c := range out {
			re[i] = real(c)
			im[i] = imag(c)
		}
		vecmath.Power(power, re, im)

		for i := range bins {
			accum[i] += power[i]
		}
		segments++
	}

	for i := range accum {
		accum[i] /= float64(segments)
	}
	sort.Float64s(accum)

	return accum[len(accum)/2], nil
}
