package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/pool"
)

// fixedPrecision is the number of decimals written per value.
const fixedPrecision = 6

// Encode writes x and y as tab-separated lines in fixed six-decimal notation.
func Encode(w io.Writer, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x vs %d y", ErrLengthMismatch, len(x), len(y))
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	appendLines(buf, x, y)
	_, err := buf.WriteTo(w)

	return err
}

// WriteFile writes x and y to path in the format Encode produces,
// compressed when the extension names a codec.
func WriteFile(path string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x vs %d y", ErrLengthMismatch, len(x), len(y))
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	appendLines(buf, x, y)

	ct := format.CompressionFromPath(path)
	codec, err := compress.CreateCodec(ct, "dataset")
	if err != nil {
		return err
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("encode dataset %s: %w", path, err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	return nil
}

func appendLines(buf *pool.ByteBuffer, x, y []float64) {
	for i := range x {
		buf.AppendFloat(x[i], 'f', fixedPrecision)
		_ = buf.WriteByte('\t')
		buf.AppendFloat(y[i], 'f', fixedPrecision)
		_ = buf.WriteByte('\n')
	}
}
