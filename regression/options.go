package regression

import (
	"fmt"

	"github.com/arloliu/linfit/internal/options"
)

// Alternative selects the alternative hypothesis of the slope test.
type Alternative int

const (
	// TwoSided tests slope != 0.
	TwoSided Alternative = iota
	// Less tests slope < 0.
	Less
	// Greater tests slope > 0.
	Greater
)

var alternativeNames = map[Alternative]string{
	TwoSided: "two-sided",
	Less:     "less",
	Greater:  "greater",
}

// String returns the string representation of the alternative.
func (a Alternative) String() string {
	if name, ok := alternativeNames[a]; ok {
		return name
	}

	return "unknown"
}

// Config holds the settings of a fit.
type Config struct {
	Alternative Alternative
}

func defaultConfig() Config {
	return Config{Alternative: TwoSided}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithAlternative sets the alternative hypothesis used for the p-value.
func WithAlternative(alt Alternative) Option {
	return options.New(func(cfg *Config) error {
		if _, ok := alternativeNames[alt]; !ok {
			return fmt.Errorf("invalid alternative hypothesis: %d", int(alt))
		}
		cfg.Alternative = alt

		return nil
	})
}
