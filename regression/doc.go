// Package regression fits a straight line to paired samples by ordinary
// least squares and reports the statistics of the fit.
//
// # Usage
//
//	res, err := regression.Linear(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Slope, res.Intercept)
//
// Besides the coefficients a Result carries the Pearson correlation
// coefficient, the p-value of the test that the true slope is zero, and the
// standard errors of both coefficients:
//
//	fmt.Printf("r=%.4f p=%.3g stderr=%.3g\n", res.RValue, res.PValue, res.StdErr)
//
// # Method
//
// With population moments ss_x = mean((x-x̄)²), ss_y = mean((y-ȳ)²) and
// ss_xy = mean((x-x̄)(y-ȳ)):
//
//   - slope = ss_xy / ss_x
//   - intercept = ȳ - slope·x̄
//   - r = ss_xy / √(ss_x·ss_y), clipped to [-1, 1]; 0 when y is constant
//   - t = r·√(df / ((1-r)(1+r))) with df = n-2
//   - p from a Student t distribution with df degrees of freedom
//   - stderr(slope) = √((1-r²)·ss_y / ss_x / df)
//   - stderr(intercept) = stderr(slope)·√(ss_x + x̄²)
//
// Two samples always determine the line exactly: both standard errors are
// zero and the p-value is 0, or 1 when the two y values are equal.
//
// # Degenerate Input
//
// The fit is undefined with fewer than two samples (ErrInsufficientData) or
// when every x is the same (ErrZeroVariance). Inputs whose spread, or the
// resulting slope, exceed the float64 range fail with ErrOverflow. Linear returns
// those errors instead of a Result holding NaN, Inf or a meaningless line.
//
// # Predictions
//
// Result.Estimator returns a LinearEstimator that evaluates the fitted line:
//
//	est := res.Estimator()
//	latency := est.Estimate(64 * 1024)
package regression
