package regression

import "fmt"

// Estimator evaluates a fitted model.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the model coefficients.
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements y = intercept + slope·x.
type LinearEstimator struct {
	intercept, slope float64
	coeffs           []float64 // Cached coefficient slice to avoid allocations
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates a new linear estimator with the given coefficients.
func NewLinearEstimator(intercept, slope float64) *LinearEstimator {
	return &LinearEstimator{
		intercept: intercept,
		slope:     slope,
		coeffs:    make([]float64, 2),
	}
}

// Estimate returns intercept + slope·x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.intercept + l.slope*x
}

// Coefficients returns [intercept, slope]. The slice is reused by later calls.
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.intercept
	l.coeffs[1] = l.slope

	return l.coeffs
}

// SetCoefficients updates the coefficients from [intercept, slope].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.intercept = coeffs[0]
	l.slope = coeffs[1]

	return nil
}
