package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionFromPath(t *testing.T) {
	tests := []struct {
		path string
		want CompressionType
	}{
		{"tmp_data", CompressionNone},
		{"tmp_data.txt", CompressionNone},
		{"runs/tmp_data.zst", CompressionZstd},
		{"tmp_data.ZSTD", CompressionZstd},
		{"tmp_data.s2", CompressionS2},
		{"tmp_data.lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, CompressionFromPath(tt.path))
		})
	}
}

func TestCompressionTypeExtensionRoundTrip(t *testing.T) {
	for _, c := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		require.Equal(t, c, CompressionFromPath("tmp_data"+c.Extension()), c.String())
	}
	require.Empty(t, CompressionNone.Extension())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
