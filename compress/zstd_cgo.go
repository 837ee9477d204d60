//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/gozstd"

	"github.com/arloliu/cuv/errs"
)

// zstdLevel matches the klauspost SpeedDefault level.
const zstdLevel = 3

// Compress compresses the input data using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a zstd frame using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressSize decompresses a zstd frame after checking that its recorded
// content size is exactly size bytes. libzstd records the size in every frame
// it writes with CompressLevel.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if size < 0 || len(data) == 0 {
		return nil, checkDecompressedSize("zstd", 0, size)
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if !header.HasFCS {
		return nil, fmt.Errorf("%w: zstd frame does not record its content size", errs.ErrInvalidPayloadSize)
	}
	if header.FrameContentSize != uint64(size) {
		return nil, fmt.Errorf("%w: zstd frame holds %d bytes, expected %d", errs.ErrInvalidPayloadSize, header.FrameContentSize, size)
	}

	decompressed, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkDecompressedSize("zstd", len(decompressed), size); err != nil {
		return nil, err
	}

	return decompressed, nil
}
