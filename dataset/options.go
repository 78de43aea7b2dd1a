package dataset

import (
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/options"
)

type readConfig struct {
	compression format.CompressionType
}

// ReadOption configures ReadFile.
type ReadOption = options.Option[*readConfig]

// WithCompression decodes the file with c regardless of its extension.
func WithCompression(c format.CompressionType) ReadOption {
	return options.NoError(func(cfg *readConfig) {
		cfg.compression = c
	})
}
