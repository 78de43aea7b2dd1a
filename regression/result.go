package regression

import "fmt"

// Result holds a fitted line and the statistics of the fit.
type Result struct {
	// Slope is the fitted change in y per unit of x.
	Slope float64
	// Intercept is the fitted y at x = 0.
	Intercept float64
	// RValue is the Pearson correlation coefficient.
	RValue float64
	// PValue is the p-value for the null hypothesis slope = 0.
	PValue float64
	// StdErr is the standard error of the slope.
	StdErr float64
	// InterceptStdErr is the standard error of the intercept.
	InterceptStdErr float64
	// RMSE is the root mean square of the residuals.
	RMSE float64
	// N is the number of samples.
	N int
	// Alternative is the hypothesis PValue was computed for.
	Alternative Alternative
}

// RSquared returns the coefficient of determination, r².
func (r *Result) RSquared() float64 {
	return r.RValue * r.RValue
}

// Estimator returns an estimator for the fitted line.
func (r *Result) Estimator() *LinearEstimator {
	return NewLinearEstimator(r.Intercept, r.Slope)
}

// Residuals returns y[i] - (Slope·x[i] + Intercept) for every sample.
func (r *Result) Residuals(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x vs %d y", ErrLengthMismatch, len(x), len(y))
	}

	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - (r.Slope*x[i] + r.Intercept)
	}

	return out, nil
}

// String returns a one-line summary of the fit.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Slope: %g, Intercept: %g, R: %.4f, P: %.4g (%s), StdErr: %.4g, N: %d}",
		r.Slope, r.Intercept, r.RValue, r.PValue, r.Alternative, r.StdErr, r.N)
}
