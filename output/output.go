// Package output writes and reads the coefficient file produced by a fit:
// the slope and the intercept as decimal text separated by one space, with
// no trailing newline.
//
//	2 0
//	0.0732421875 1200
//
// Numbers use the shortest representation that parses back to the same
// float64, so a written file always reads back to the exact coefficients.
// Exponent form is used only below 1e-4 and from 1e16 upward.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/arloliu/linfit/internal/pool"
	"github.com/arloliu/linfit/regression"
)

var (
	// ErrNonFinite is returned when a coefficient is NaN or infinite.
	ErrNonFinite = errors.New("coefficient is not finite")
	// ErrMalformed is returned when a coefficient file does not hold exactly two numbers.
	ErrMalformed = errors.New("malformed coefficient file")
)

// Format returns "<slope> <intercept>".
func Format(slope, intercept float64) string {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	appendCoefficients(buf, slope, intercept)

	return buf.String()
}

// Encode writes the slope and intercept of res to w.
func Encode(w io.Writer, res *regression.Result) error {
	if err := checkFinite(res); err != nil {
		return err
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	appendCoefficients(buf, res.Slope, res.Intercept)
	_, err := buf.WriteTo(w)

	return err
}

// WriteFile writes the slope and intercept of res as the entire content of path.
// Nothing is written when a coefficient is not finite.
func WriteFile(path string, res *regression.Result) error {
	if err := checkFinite(res); err != nil {
		return err
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	appendCoefficients(buf, res.Slope, res.Intercept)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write coefficients: %w", err)
	}

	return nil
}

// Parse reads "<slope> <intercept>". Any whitespace may separate or
// surround the two numbers.
func Parse(data []byte) (slope, intercept float64, err error) {
	fields := bytes.Fields(data)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformed, len(fields))
	}

	slope, err = strconv.ParseFloat(string(fields[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: slope: %w", ErrMalformed, err)
	}
	intercept, err = strconv.ParseFloat(string(fields[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: intercept: %w", ErrMalformed, err)
	}

	return slope, intercept, nil
}

// ReadFile parses the coefficient file at path.
func ReadFile(path string) (slope, intercept float64, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read coefficients: %w", err)
	}

	return Parse(data)
}

func checkFinite(res *regression.Result) error {
	for _, v := range [...]float64{res.Slope, res.Intercept} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: slope=%v intercept=%v", ErrNonFinite, res.Slope, res.Intercept)
		}
	}

	return nil
}

func appendCoefficients(buf *pool.ByteBuffer, slope, intercept float64) {
	appendFloat(buf, slope)
	_ = buf.WriteByte(' ')
	appendFloat(buf, intercept)
}

// appendFloat writes plain decimals for magnitudes in [1e-4, 1e16) and
// exponent form outside it, the same switch points Python's float repr uses.
func appendFloat(buf *pool.ByteBuffer, v float64) {
	if abs := math.Abs(v); v == 0 || (abs >= 1e-4 && abs < 1e16) {
		buf.AppendFloat(v, 'f', -1)
		return
	}

	buf.AppendFloat(v, 'e', -1)
}
