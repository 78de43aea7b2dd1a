package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/linfit"
	"github.com/arloliu/linfit/iocost"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var logged *loggedError
		if !errors.As(err, &logged) {
			fmt.Fprintln(os.Stderr, "linfit:", err)
		}
		os.Exit(1)
	}
}

// loggedError marks an error the command already reported through the logger.
type loggedError struct {
	err error
}

func (e *loggedError) Error() string { return e.err.Error() }

func (e *loggedError) Unwrap() error { return e.err }

// newRootCmd builds the linfit command. Paths are fixed; --verbose only
// changes what is logged.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "linfit",
		Short: "Fit a line to tmp_data and write the slope and intercept to py_out",
		Long: `linfit reads tab-separated <x>\t<y> samples from ` + linfit.DefaultInputPath + `,
fits y = slope*x + intercept by ordinary least squares and writes
"<slope> <intercept>" to ` + linfit.DefaultOutputPath + `.

The run fails, and ` + linfit.DefaultOutputPath + ` is left untouched, when a line cannot be
parsed, when there are fewer than two samples or when every x is equal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runFit(logger); err != nil {
				logger.Error("regression failed", zap.Error(err))
				_ = logger.Sync()

				return &loggedError{err: err}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every stage of the run")

	return cmd
}

func runFit(logger *zap.Logger) error {
	res, err := linfit.Run(linfit.DefaultInputPath, linfit.DefaultOutputPath, linfit.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("regression complete",
		zap.Int("samples", res.N),
		zap.Float64("slope", res.Slope),
		zap.Float64("intercept", res.Intercept),
		zap.Float64("r", res.RValue),
		zap.Float64("p", res.PValue),
		zap.Float64("stderr", res.StdErr),
	)

	if cal, err := iocost.FromResult(res); err == nil {
		logger.Debug("cost model",
			zap.Float64("fixed_cost", cal.FixedCost),
			zap.Float64("throughput", cal.Throughput),
		)
	}

	return nil
}
