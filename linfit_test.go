package linfit

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/linfit/dataset"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/output"
	"github.com/arloliu/linfit/regression"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// writeInput writes content to DefaultInputPath in a fresh directory and
// returns the input and output paths.
func writeInput(t *testing.T, content string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	in := filepath.Join(dir, DefaultInputPath)
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	return in, filepath.Join(dir, DefaultOutputPath)
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		slope     float64
		intercept float64
	}{
		{"proportional", "1.0\t2.0\n2.0\t4.0\n3.0\t6.0\n", 2.0, 0.0},
		{"flat", "0.0\t1.0\n1.0\t1.0\n2.0\t1.0\n", 0.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := writeInput(t, tt.input)

			res, err := Run(in, out)
			require.NoError(t, err)
			require.InDelta(t, tt.slope, res.Slope, 1e-9)
			require.InDelta(t, tt.intercept, res.Intercept, 1e-9)

			slope, intercept, err := output.ReadFile(out)
			require.NoError(t, err)
			require.Equal(t, res.Slope, slope)
			require.Equal(t, res.Intercept, intercept)
		})
	}
}

func TestRunOutputContent(t *testing.T) {
	in, out := writeInput(t, "1.0\t2.0\n2.0\t4.0\n3.0\t6.0\n")

	_, err := Run(in, out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "2 0", string(raw))
}

func TestRunDegenerateInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"single line", "1.0\t2.0\n", regression.ErrInsufficientData},
		{"empty file", "", regression.ErrInsufficientData},
		{"identical x", "5.0\t1.0\n5.0\t9.0\n", regression.ErrZeroVariance},
		{"overflowing x", "1e200\t1\n2e200\t2\n3e200\t3\n", regression.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := writeInput(t, tt.input)

			res, err := Run(in, out)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, res)
			require.NoFileExists(t, out)
		})
	}
}

func TestRunParseError(t *testing.T) {
	in, out := writeInput(t, "1.0\t2.0\n2.0 4.0\n")

	_, err := Run(in, out)
	require.ErrorIs(t, err, dataset.ErrMissingField)

	var pe *dataset.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Line)
	require.NoFileExists(t, out)
}

func TestRunRejectsWhitespaceLine(t *testing.T) {
	in, out := writeInput(t, "1\t2\n\t\n2\t4\n")

	_, err := Run(in, out)
	require.ErrorIs(t, err, dataset.ErrNotNumeric)

	var pe *dataset.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Line)
	require.NoFileExists(t, out)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, DefaultOutputPath)

	_, err := Run(filepath.Join(dir, DefaultInputPath), out)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NoFileExists(t, out)
}

func TestRunUnwritableOutput(t *testing.T) {
	in, _ := writeInput(t, "1\t2\n2\t4\n")

	_, err := Run(in, filepath.Join(t.TempDir(), "missing", DefaultOutputPath))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCompressedInput(t *testing.T) {
	x := []float64{4096, 8192, 16384, 32768}
	y := []float64{1500, 1800, 2400, 3600}
	dir := t.TempDir()

	plain := filepath.Join(dir, DefaultInputPath)
	require.NoError(t, dataset.WriteFile(plain, x, y))
	want, err := Run(plain, filepath.Join(dir, "plain_out"))
	require.NoError(t, err)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			in := filepath.Join(dir, DefaultInputPath+ct.Extension())
			require.NoError(t, dataset.WriteFile(in, x, y))

			got, err := Run(in, filepath.Join(dir, "out_"+ct.String()))
			require.NoError(t, err)
			require.Equal(t, want.Slope, got.Slope)
			require.Equal(t, want.Intercept, got.Intercept)
		})
	}
}

func TestRunOptions(t *testing.T) {
	in, out := writeInput(t, "1\t2\n2\t4\n3\t5\n4\t4\n5\t5\n")

	core, logs := observer.New(zap.DebugLevel)
	res, err := Run(in, out,
		WithLogger(zap.New(core)),
		WithFitOptions(regression.WithAlternative(regression.Greater)),
		WithReadOptions(dataset.WithCompression(format.CompressionNone)),
	)
	require.NoError(t, err)
	require.Equal(t, regression.Greater, res.Alternative)

	require.Equal(t, 1, logs.FilterMessage("dataset loaded").Len())
	require.Equal(t, 1, logs.FilterMessage("regression fitted").Len())
	require.Equal(t, 1, logs.FilterMessage("coefficients written").Len())

	fitted := logs.FilterMessage("regression fitted").All()[0].ContextMap()
	require.Equal(t, res.Slope, fitted["slope"])
	require.Equal(t, res.PValue, fitted["p"])
}

func TestRunNilLogger(t *testing.T) {
	in, out := writeInput(t, "1\t2\n2\t4\n")

	_, err := Run(in, out, WithLogger(nil))
	require.Error(t, err)
	require.NoFileExists(t, out)
}

func TestExchange(t *testing.T) {
	dir := t.TempDir()
	x := []float64{4096, 8192, 16384, 32768}
	y := []float64{1500, 1800, 2400, 3600}

	intercept, slope, err := Exchange(dir, x, y)
	require.NoError(t, err)
	require.InDelta(t, 1200.0, intercept, 1e-6)
	require.InDelta(t, 0.0732421875, slope, 1e-12)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "exchange files are removed")
}

func TestExchangeFailureCleansUp(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Exchange(dir, []float64{3, 3, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, regression.ErrZeroVariance)

	_, _, err = Exchange(dir, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, dataset.ErrLengthMismatch)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// TestRunNormalEquations checks the fitted line against the least-squares
// normal equations on a noisy dataset read from disk.
func TestRunNormalEquations(t *testing.T) {
	x := []float64{89, 43, 36, 36, 95, 10, 66, 34, 38, 20, 26, 29, 48, 64, 6, 5, 36, 66, 72, 40}
	y := []float64{21, 46, 3, 35, 67, 95, 53, 72, 58, 10, 26, 34, 90, 33, 38, 20, 56, 2, 47, 15}

	dir := t.TempDir()
	in := filepath.Join(dir, DefaultInputPath)
	require.NoError(t, dataset.WriteFile(in, x, y))

	res, err := Run(in, filepath.Join(dir, DefaultOutputPath))
	require.NoError(t, err)

	var sumE, sumXE float64
	for i := range x {
		e := y[i] - (res.Slope*x[i] + res.Intercept)
		sumE += e
		sumXE += x[i] * e
	}
	require.InDelta(t, 0, sumE, 1e-9)
	require.InDelta(t, 0, sumXE, 1e-7)
	require.False(t, math.IsNaN(res.PValue))
}
