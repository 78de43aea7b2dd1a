package iocost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/regression"
)

func TestFromResult(t *testing.T) {
	sizes := []float64{4096, 8192, 16384, 32768}
	latencies := []float64{1500, 1800, 2400, 3600}

	res, err := regression.Linear(sizes, latencies)
	require.NoError(t, err)

	cal, err := FromResult(res)
	require.NoError(t, err)
	require.InDelta(t, 1200.0, cal.FixedCost, 1e-6)
	require.InDelta(t, 1/0.0732421875, cal.Throughput, 1e-6)
	require.InDelta(t, 6000.0, cal.Cost(65536), 1e-6)
}

func TestFromResultClampsNegativeIntercept(t *testing.T) {
	cal, err := FromResult(&regression.Result{Slope: 0.5, Intercept: -30})
	require.NoError(t, err)
	require.Zero(t, cal.FixedCost)
	require.Equal(t, 2.0, cal.Throughput)
}

func TestFromResultRejectsNonPositiveSlope(t *testing.T) {
	for _, slope := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := FromResult(&regression.Result{Slope: slope, Intercept: 10})
		require.ErrorIs(t, err, ErrNonPositiveSlope)
	}
}

func TestGiBPerSecond(t *testing.T) {
	// 1 GiB per second is 2^30 bytes per 1e9 ns.
	cal := Calibration{Throughput: float64(1<<30) / 1e9}
	require.InDelta(t, 1.0, cal.GiBPerSecond(), 1e-12)
}
