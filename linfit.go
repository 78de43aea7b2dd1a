// Package linfit fits a straight line to a two-column dataset file and
// writes the slope and intercept to a coefficient file.
//
// The input holds one `<x>\t<y>` sample per line; the output holds
// `<slope> <intercept>`. The default file names match the handoff used by
// I/O measurement harnesses, which write their samples to "tmp_data" and read
// the fitted line back from "py_out".
//
// # Basic Usage
//
//	res, err := linfit.Run(linfit.DefaultInputPath, linfit.DefaultOutputPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Slope, res.Intercept, res.RValue, res.PValue, res.StdErr)
//
// A run is all-or-nothing: a parse error, degenerate input (fewer than two
// samples, or all x equal) or an I/O error aborts it before the output file
// is created.
//
// # In-Process Handoff
//
// Exchange performs the whole file round trip for samples held in memory:
//
//	intercept, slope, err := linfit.Exchange(dir, sizes, latencies)
//
// # Package Structure
//
// The root package wires together dataset (input parsing), regression (the
// fit) and output (the coefficient file). Use those packages directly for
// finer control.
package linfit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arloliu/linfit/dataset"
	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/output"
	"github.com/arloliu/linfit/regression"
)

const (
	// DefaultInputPath is the dataset file read by the runner.
	DefaultInputPath = "tmp_data"
	// DefaultOutputPath is the coefficient file written by the runner.
	DefaultOutputPath = "py_out"
)

type runConfig struct {
	logger      *zap.Logger
	readOptions []dataset.ReadOption
	fitOptions  []regression.Option
}

// RunOption configures Run and Exchange.
type RunOption = options.Option[*runConfig]

// WithLogger logs each stage of the run at debug level. The default logger
// discards everything.
func WithLogger(logger *zap.Logger) RunOption {
	return options.New(func(cfg *runConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger

		return nil
	})
}

// WithReadOptions passes opts to dataset.ReadFile.
func WithReadOptions(opts ...dataset.ReadOption) RunOption {
	return options.NoError(func(cfg *runConfig) {
		cfg.readOptions = append(cfg.readOptions, opts...)
	})
}

// WithFitOptions passes opts to regression.Linear.
func WithFitOptions(opts ...regression.Option) RunOption {
	return options.NoError(func(cfg *runConfig) {
		cfg.fitOptions = append(cfg.fitOptions, opts...)
	})
}

func newRunConfig(opts []RunOption) (*runConfig, error) {
	return options.Build(&runConfig{logger: zap.NewNop()}, opts...)
}

// Run reads the dataset at inputPath, fits it and writes the slope and
// intercept to outputPath.
//
// Parameters:
//   - inputPath: Dataset file; ".zst", ".s2" and ".lz4" files are decompressed
//   - outputPath: Coefficient file, created or truncated on success only
//   - opts: Optional settings (WithLogger, WithReadOptions, WithFitOptions)
//
// Returns:
//   - *regression.Result: The full fit, including r, p-value and standard errors
//   - error: A *dataset.ParseError, regression.ErrInsufficientData,
//     regression.ErrZeroVariance, regression.ErrOverflow or an I/O error
func Run(inputPath, outputPath string, opts ...RunOption) (*regression.Result, error) {
	cfg, err := newRunConfig(opts)
	if err != nil {
		return nil, err
	}

	return run(cfg, inputPath, outputPath)
}

func run(cfg *runConfig, inputPath, outputPath string) (*regression.Result, error) {
	log := cfg.logger

	ds, err := dataset.ReadFile(inputPath, cfg.readOptions...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inputPath, err)
	}
	log.Debug("dataset loaded",
		zap.String("path", inputPath),
		zap.Int("samples", ds.Len()),
		zap.Stringer("compression", ds.Compression),
		zap.String("checksum", fmt.Sprintf("%016x", ds.Checksum)),
	)

	x, y := ds.Columns()
	res, err := regression.Linear(x, y, cfg.fitOptions...)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", inputPath, err)
	}
	log.Debug("regression fitted",
		zap.Float64("slope", res.Slope),
		zap.Float64("intercept", res.Intercept),
		zap.Float64("r", res.RValue),
		zap.Float64("p", res.PValue),
		zap.Stringer("alternative", res.Alternative),
		zap.Float64("stderr", res.StdErr),
		zap.Float64("intercept_stderr", res.InterceptStdErr),
	)

	if err := output.WriteFile(outputPath, res); err != nil {
		return nil, err
	}
	log.Debug("coefficients written", zap.String("path", outputPath))

	return res, nil
}

// Exchange runs the file-based handoff for in-memory samples: it writes x
// and y to DefaultInputPath inside dir, runs the fit into DefaultOutputPath,
// reads the coefficients back and removes both files.
//
// The coefficients are returned as (intercept, slope). They are exactly
// the values a caller reading the output file would see.
func Exchange(dir string, x, y []float64, opts ...RunOption) (intercept, slope float64, err error) {
	cfg, err := newRunConfig(opts)
	if err != nil {
		return 0, 0, err
	}

	inputPath := filepath.Join(dir, DefaultInputPath)
	outputPath := filepath.Join(dir, DefaultOutputPath)
	defer func() {
		for _, p := range []string{inputPath, outputPath} {
			if rmErr := os.Remove(p); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				cfg.logger.Warn("failed to remove exchange file", zap.String("path", p), zap.Error(rmErr))
			}
		}
	}()

	if err := dataset.WriteFile(inputPath, x, y); err != nil {
		return 0, 0, err
	}

	if _, err := run(cfg, inputPath, outputPath); err != nil {
		return 0, 0, err
	}

	slope, intercept, err = output.ReadFile(outputPath)
	if err != nil {
		return 0, 0, err
	}

	return intercept, slope, nil
}
