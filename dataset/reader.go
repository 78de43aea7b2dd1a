package dataset

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/internal/options"
)

// ReadFile reads and parses the dataset at path.
//
// The codec is inferred from the file extension unless WithCompression is
// given. I/O and decompression errors are wrapped with the path; parse
// errors are returned as *ParseError.
func ReadFile(path string, opts ...ReadOption) (*Dataset, error) {
	cfg, err := options.Build(&readConfig{compression: format.CompressionFromPath(path)}, opts...)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	codec, err := compress.CreateCodec(cfg.compression, "dataset")
	if err != nil {
		return nil, err
	}

	text, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	ds, err := decode(text)
	if err != nil {
		return nil, err
	}
	ds.Compression = cfg.compression

	return ds, nil
}

// Parse reads all of r as an uncompressed dataset.
func Parse(r io.Reader) (*Dataset, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return decode(text)
}

func decode(text []byte) (*Dataset, error) {
	ds := &Dataset{
		Samples:     make([]Sample, 0, bytes.Count(text, []byte{'\n'})+1),
		Checksum:    hash.Checksum(text),
		Compression: format.CompressionNone,
	}

	lineNo := 0
	for len(text) > 0 {
		lineNo++

		var line []byte
		if i := bytes.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, nil
		}

		if len(bytes.TrimRight(line, "\r")) == 0 {
			continue
		}

		s, err := parseLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		ds.Samples = append(ds.Samples, s)
	}

	return ds, nil
}

func parseLine(lineNo int, line []byte) (Sample, error) {
	first, rest, ok := bytes.Cut(line, []byte{'\t'})
	if !ok {
		return Sample{}, &ParseError{Line: lineNo, Field: -1, Text: string(bytes.TrimSpace(line)), Err: ErrMissingField}
	}
	second, _, _ := bytes.Cut(rest, []byte{'\t'})

	x, err := parseField(lineNo, 0, first)
	if err != nil {
		return Sample{}, err
	}
	y, err := parseField(lineNo, 1, second)
	if err != nil {
		return Sample{}, err
	}

	return Sample{X: x, Y: y}, nil
}

func parseField(lineNo, field int, raw []byte) (float64, error) {
	text := string(bytes.TrimSpace(raw))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Line: lineNo, Field: field, Text: text, Err: ErrNotNumeric}
	}

	return v, nil
}
