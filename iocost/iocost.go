// Package iocost interprets a line fitted to I/O latency measurements.
//
// A benchmark that times requests of increasing size and fits
// latency = intercept + slope·size obtains the two parameters of a simple
// cost model: the intercept is the fixed per-request cost (syscall entry,
// device command overhead) and the inverse of the slope is the sustained
// throughput.
package iocost

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/linfit/regression"
)

// ErrNonPositiveSlope is returned when latency does not grow with size,
// which leaves the throughput undefined.
var ErrNonPositiveSlope = errors.New("slope must be positive to derive a throughput")

// Calibration is the cost model derived from a fit.
//
// Units follow the fitted data: with sizes in bytes and latencies in
// nanoseconds, FixedCost is in nanoseconds and Throughput in bytes per
// nanosecond.
type Calibration struct {
	// FixedCost is the intercept, clamped at zero.
	FixedCost float64
	// Throughput is 1/slope.
	Throughput float64
}

// FromResult derives a Calibration from a latency/size fit.
func FromResult(res *regression.Result) (Calibration, error) {
	if !(res.Slope > 0) || math.IsInf(res.Slope, 0) {
		return Calibration{}, fmt.Errorf("%w: got %g", ErrNonPositiveSlope, res.Slope)
	}

	return Calibration{
		FixedCost:  math.Max(0, res.Intercept),
		Throughput: 1.0 / res.Slope,
	}, nil
}

// Cost predicts the latency of a request of the given size.
func (c Calibration) Cost(size float64) float64 {
	return c.FixedCost + size/c.Throughput
}

// GiBPerSecond converts a throughput in bytes per nanosecond to GiB/s.
func (c Calibration) GiBPerSecond() float64 {
	return c.Throughput * 1e9 / (1 << 30)
}
