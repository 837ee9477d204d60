package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/format"
)

var allCompressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// codePayload builds a little-endian payload of n codes drawn from a small
// set of directions, similar to normals of a mostly flat mesh.
func codePayload(n int) []byte {
	rng := rand.New(rand.NewPCG(1, 2))
	codes := []uint16{0, 255, 126, 0x2000, 0x8000 | 255, 4242}

	buf := make([]byte, 0, n*2)
	for range n {
		buf = binary.LittleEndian.AppendUint16(buf, codes[rng.IntN(len(codes))])
	}

	return buf
}

func TestCodec_RoundTrip(t *testing.T) {
	sizes := []int{1, 2, 64, 4096, 100_000}

	for _, cType := range allCompressionTypes {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%s/%d", cType, n), func(t *testing.T) {
				codec, err := GetCodec(cType)
				require.NoError(t, err)

				payload := codePayload(n)
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)
				require.NotEmpty(t, compressed)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, cType := range allCompressionTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(cType, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodec_DecompressSize(t *testing.T) {
	payload := codePayload(20_000)

	for _, cType := range allCompressionTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.DecompressSize(compressed, len(payload))
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)

			_, err = codec.DecompressSize(compressed, 2)
			require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

			_, err = codec.DecompressSize(compressed, len(payload)+10)
			require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

			_, err = codec.DecompressSize(compressed, -1)
			require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
		})
	}
}

func TestCodec_DecompressSizeEmpty(t *testing.T) {
	for _, cType := range allCompressionTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			decompressed, err := codec.DecompressSize(nil, 0)
			require.NoError(t, err)
			require.Empty(t, decompressed)

			_, err = codec.DecompressSize(nil, 4)
			require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
		})
	}
}

func TestCodec_DecompressSizeRejectsExpansion(t *testing.T) {
	// 4MiB of one repeated code shrinks to a few KiB in every algorithm.
	payload := bytes.Repeat([]byte{0xff, 0x00}, 2<<20)

	for _, cType := range allCompressionTypes[1:] {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.DecompressSize(compressed, 64)
			require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
			require.Nil(t, decompressed)
		})
	}
}

func TestLZ4Compressor_LargePayload(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates several hundred MiB")
	}

	// Larger than 128MiB and far beyond 4x the compressed size.
	payload := bytes.Repeat([]byte{0xff, 0x00}, 1<<26+1<<16)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Greater(t, len(payload), 4*len(compressed))

	decompressed, err := codec.DecompressSize(compressed, len(payload))
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, decompressed))

	decompressed, err = codec.Decompress(compressed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, decompressed))
}

func TestCodec_Compresses(t *testing.T) {
	payload := codePayload(50_000)

	for _, cType := range allCompressionTypes[1:] {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	for _, cType := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xff), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Contains(t, err.Error(), "payload")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionStats(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no compression benefit",
			stats:           CompressionStats{Algorithm: format.CompressionNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "compression overhead",
			stats:           CompressionStats{Algorithm: format.CompressionS2, OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "zero original size",
			stats:           CompressionStats{Algorithm: format.CompressionLZ4},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 1e-9)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}
