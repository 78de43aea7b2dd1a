package format

import (
	"path/filepath"
	"strings"
)

// CompressionType identifies the codec a dataset file is stored with.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents plain text.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard frames.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 block.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 block.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix used for c, including the dot.
// CompressionNone and unknown types have no suffix.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionFromPath infers the compression of a file from its extension.
// Unrecognized extensions are treated as plain text.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
