package gzt

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by GZT estimation and reconstruction.
var (
	ErrInvalidWindow     = errors.New("gzt: window length must satisfy 1 <= N < signal length")
	ErrSingularMatrix    = errors.New("gzt: normal equations are singular or ill-conditioned")
	ErrDimensionMismatch = errors.New("gzt: dimension mismatch")
	ErrUnknownMode       = errors.New("gzt: unknown run mode")
)

// DefaultConditionLimit is the largest design-matrix condition estimate a
// calibration solve accepts. Generous but finite: beyond it a least-squares
// solution in float64 has no trustworthy digits left.
const DefaultConditionLimit = 1e12

// BuildMatrix builds the sliding-window design matrix of s for the given
// window length. The result has len(s)-window+1 rows and window columns,
// where row r holds s[r], s[r+1], ..., s[r+window-1].
//
// The matrix is the dominant allocation of a calibration or recovery run:
// (len(s)-window+1) * window float64 cells.
func BuildMatrix(s []float64, window int) (*mat.Dense, error) {
	n := len(s)
	if window < 1 || window >= n {
		return nil, fmt.Errorf("%w: window %d, signal length %d", ErrInvalidWindow, window, n)
	}

	rows := n - window + 1
	c := mat.NewDense(rows, window, nil)
	for r := range rows {
		c.SetRow(r, s[r:r+window])
	}

	return c, nil
}

// Estimator solves the calibration least-squares problem.
type Estimator struct {
	// ConditionLimit rejects solves whose design-matrix condition estimate
	// exceeds it. Zero or negative means DefaultConditionLimit.
	ConditionLimit float64
}

// NewEstimator creates an estimator with the default condition limit.
func NewEstimator() *Estimator {
	return &Estimator{ConditionLimit: DefaultConditionLimit}
}

// Estimate solves min ‖C·a − u‖² for the parameter vector a, where c is a
// design matrix from BuildMatrix and target holds at least as many samples
// of the reference signal as c has rows (extra samples are ignored).
//
// The solve uses a QR factorization rather than explicit inversion of the
// normal equations; for window lengths in the low hundreds the inverse
// amplifies conditioning errors. Before solving, the condition number of c
// is estimated from its singular values and the solve is rejected with
// ErrSingularMatrix when the estimate exceeds the configured limit.
func (e *Estimator) Estimate(c *mat.Dense, target []float64) ([]float64, error) {
	rows, cols := c.Dims()
	if len(target) < rows {
		return nil, fmt.Errorf("%w: %d target samples, design matrix has %d rows",
			ErrDimensionMismatch, len(target), rows)
	}

	if rows < cols {
		return nil, fmt.Errorf("%w: %d rows for %d coefficients (underdetermined)",
			ErrSingularMatrix, rows, cols)
	}

	limit := e.ConditionLimit
	if limit <= 0 {
		limit = DefaultConditionLimit
	}

	var svd mat.SVD
	if !svd.Factorize(c, mat.SVDNone) {
		return nil, fmt.Errorf("%w: SVD failed to converge", ErrSingularMatrix)
	}

	values := svd.Values(nil)
	sMax := values[0]
	sMin := values[len(values)-1]

	if sMin == 0 {
		return nil, fmt.Errorf("%w: zero singular value (rank below %d)", ErrSingularMatrix, cols)
	}

	cond := sMax / sMin
	if cond > limit {
		return nil, fmt.Errorf("%w: condition estimate %.3g exceeds limit %.3g",
			ErrSingularMatrix, cond, limit)
	}

	var qr mat.QR
	qr.Factorize(c)

	var sol mat.VecDense
	err := qr.SolveVecTo(&sol, false, mat.NewVecDense(rows, target[:rows]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	coeffs := make([]float64, cols)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
	}

	return coeffs, nil
}

// Reconstruct applies the parameter vector to a design matrix, producing
// the candidate recovered signal C·a. The coefficient count must equal the
// window length the matrix was built with.
func Reconstruct(c *mat.Dense, coeffs []float64) ([]float64, error) {
	rows, cols := c.Dims()
	if len(coeffs) != cols {
		return nil, fmt.Errorf("%w: %d coefficients, design matrix window %d",
			ErrDimensionMismatch, len(coeffs), cols)
	}

	var prod mat.VecDense
	prod.MulVec(c, mat.NewVecDense(cols, coeffs))

	out := make([]float64, rows)
	for i := range out {
		out[i] = prod.AtVec(i)
	}

	return out, nil
}
