package compress

import (
	"fmt"

	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/format"
)

// Compressor compresses a serialized code payload.
//
// Payloads are runs of 2-byte unit vector codes. Surface normals of smooth
// meshes repeat heavily, so general-purpose compression on top of the 6x
// quantization is often worthwhile.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The input slice is never modified. Implementations other than the no-op
	// compressor return a newly allocated slice owned by the caller.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload, or an error if data is corrupt
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor reverses a Compressor when the original size is known,
// as it is for blob payloads whose header records the code count.
type SizedDecompressor interface {
	// DecompressSize returns the original payload, which must be exactly size
	// bytes. Output beyond size is rejected with errs.ErrInvalidPayloadSize
	// without allocating more than size bytes for it.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	SizedDecompressor
}

// CreateCodec creates a new Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompression wrapped with the target description
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%s: %w: %s", target, errs.ErrInvalidCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// checkDecompressedSize reports errs.ErrInvalidPayloadSize when a payload
// decompressed to got bytes instead of want.
func checkDecompressedSize(algorithm string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload decompresses to %d bytes, expected %d", errs.ErrInvalidPayloadSize, algorithm, got, want)
	}

	return nil
}

// CompressionStats describes one compression of a code payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int64
	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 when the
// original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// The result is negative when compression added overhead.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}
