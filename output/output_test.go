package output

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/regression"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		slope, intercept float64
		want             string
	}{
		{2, 0, "2 0"},
		{0, 1, "0 1"},
		{0.0732421875, 1200, "0.0732421875 1200"},
		{-1.5, 3.892174691830716e-09, "-1.5 3.892174691830716e-09"},
		{1e21, -0.1, "1e+21 -0.1"},
		{2500000, 123456789012345.6, "2500000 123456789012345.6"},
		{1e16, 0.0001, "1e+16 0.0001"},
		{-0.00001, 9999999999999998, "-1e-05 9999999999999998"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Format(tt.slope, tt.intercept))
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &regression.Result{Slope: 2, Intercept: 0.5}))
	require.Equal(t, "2 0.5", buf.String())

	buf.Reset()
	err := Encode(&buf, &regression.Result{Slope: math.NaN()})
	require.ErrorIs(t, err, ErrNonFinite)
	require.Zero(t, buf.Len())
}

func TestWriteFileRoundTrip(t *testing.T) {
	values := [][2]float64{
		{2, 0},
		{1.0 / 3.0, -2.0 / 7.0},
		{3.892174691830716e-09, 0.00023141935483870965},
		{-123456.789, 1e-300},
		{math.SmallestNonzeroFloat64, math.MaxFloat64},
	}

	dir := t.TempDir()
	for _, v := range values {
		path := filepath.Join(dir, "py_out")
		res := &regression.Result{Slope: v[0], Intercept: v[1]}

		require.NoError(t, WriteFile(path, res))

		slope, intercept, err := ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, v[0], slope)
		require.Equal(t, v[1], intercept)
	}
}

func TestWriteFileNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "py_out")
	require.NoError(t, WriteFile(path, &regression.Result{Slope: 2, Intercept: 0}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2 0", string(raw))
}

func TestWriteFileRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "py_out")

	for _, res := range []*regression.Result{
		{Slope: math.NaN(), Intercept: 1},
		{Slope: 1, Intercept: math.Inf(-1)},
	} {
		err := WriteFile(path, res)
		require.ErrorIs(t, err, ErrNonFinite)
		require.NoFileExists(t, path)
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "py_out"), &regression.Result{Slope: 1})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	slope, intercept, err := Parse([]byte("  2.5\t-1e-3\n"))
	require.NoError(t, err)
	require.Equal(t, 2.5, slope)
	require.Equal(t, -1e-3, intercept)

	// The reference script writes Python's repr form, e.g. "2.0 0.0".
	slope, intercept, err = Parse([]byte("2.0 0.0"))
	require.NoError(t, err)
	require.Equal(t, 2.0, slope)
	require.Equal(t, 0.0, intercept)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "1", "1 2 3", "a 2", "1 b"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := Parse([]byte(input))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "py_out"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
