package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/linfit/internal/options"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y differ in length")
	// ErrInsufficientData is returned for fewer than two samples.
	ErrInsufficientData = errors.New("at least 2 samples are required for a linear regression")
	// ErrZeroVariance is returned when all x values are identical.
	ErrZeroVariance = errors.New("cannot fit a line when all x values are identical")
	// ErrOverflow is returned when the spread of x or y exceeds the float64 range.
	ErrOverflow = errors.New("sample moments overflow float64")
)

// tiny keeps the t statistic finite for a perfect correlation.
const tiny = 1.0e-20

// Linear fits y = Slope·x + Intercept by ordinary least squares.
//
// Parameters:
//   - x: Independent variable
//   - y: Dependent variable, same length as x
//   - opts: Optional settings (see WithAlternative)
//
// Returns:
//   - *Result: Coefficients and fit statistics
//   - error: ErrLengthMismatch, ErrInsufficientData, ErrZeroVariance,
//     ErrOverflow or an invalid option
//
// Example:
//
//	res, err := regression.Linear([]float64{1, 2, 3}, []float64{2, 4, 6})
//	// res.Slope == 2, res.Intercept == 0
func Linear(x, y []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x vs %d y", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}

	if floats.Max(x) == floats.Min(x) {
		return nil, ErrZeroVariance
	}

	m := computeMoments(x, y)
	if m.ssx == 0 {
		// Distinct x values whose spread underflows.
		return nil, ErrZeroVariance
	}
	if !allFinite(m.meanX, m.ssx, m.ssy) {
		return nil, fmt.Errorf("%w: var(x)=%v var(y)=%v", ErrOverflow, m.ssx, m.ssy)
	}

	var intercept, slope float64
	if m.constantY {
		intercept = y[0]
	} else {
		intercept, slope = stat.LinearRegression(x, y, nil, false)
	}

	res := &Result{
		Slope:       slope,
		Intercept:   intercept,
		RValue:      correlation(x, y, m),
		N:           n,
		Alternative: cfg.Alternative,
	}
	if !allFinite(res.Slope, res.Intercept, res.RValue) {
		// A subnormal x spread can push the slope past the float64 range.
		return nil, fmt.Errorf("%w: slope=%v intercept=%v", ErrOverflow, res.Slope, res.Intercept)
	}

	if n == 2 {
		// Two points define the line exactly.
		if y[0] == y[1] {
			res.PValue = 1.0
		} else {
			res.PValue = 0.0
		}
	} else {
		df := float64(n - 2)
		r := res.RValue
		t := r * math.Sqrt(df/((1.0-r+tiny)*(1.0+r+tiny)))
		res.PValue = pValue(t, df, cfg.Alternative)
		res.StdErr = math.Sqrt((1 - r*r) * m.ssy / m.ssx / df)
		res.InterceptStdErr = res.StdErr * math.Sqrt(m.ssx+m.meanX*m.meanX)
	}

	res.RMSE = calculateRMSE(x, y, slope, intercept)

	return res, nil
}

// moments holds the population second moments of a sample.
type moments struct {
	meanX     float64
	ssx       float64
	ssy       float64
	constantY bool
}

// computeMoments derives population moments from gonum's unbiased
// estimators by rescaling with (n-1)/n.
//
// A constant y gets exact zero moments; its floating-point mean can differ
// from the values themselves and would leave a spurious residual variance.
func computeMoments(x, y []float64) moments {
	n := float64(len(x))
	scale := (n - 1) / n

	meanX, varX := stat.MeanVariance(x, nil)
	m := moments{
		meanX:     meanX,
		ssx:       varX * scale,
		constantY: floats.Max(y) == floats.Min(y),
	}
	if m.constantY {
		return m
	}

	_, varY := stat.MeanVariance(y, nil)
	m.ssy = varY * scale

	return m
}

// correlation returns the Pearson r clipped to [-1, 1], or 0 when either
// variable is constant.
func correlation(x, y []float64, m moments) float64 {
	if m.constantY || m.ssx == 0 || m.ssy == 0 {
		return 0.0
	}

	r := stat.Correlation(x, y, nil)

	return math.Max(-1.0, math.Min(1.0, r))
}

// pValue returns the probability of a t statistic at least as extreme as t
// under the null hypothesis, for the given alternative.
func pValue(t, df float64, alt Alternative) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	switch alt {
	case Less:
		return dist.CDF(t)
	case Greater:
		return dist.Survival(t)
	default:
		return math.Min(1.0, 2*dist.Survival(math.Abs(t)))
	}
}

// calculateRMSE returns the root mean square of the residuals of the line.
func calculateRMSE(x, y []float64, slope, intercept float64) float64 {
	sumSq := 0.0
	for i := range x {
		diff := y[i] - (slope*x[i] + intercept)
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

func allFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
