package compress

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/cuv/errs"
)

// lz4MaxExpansion is the largest possible ratio between the decompressed and
// compressed size of an LZ4 block.
const lz4MaxExpansion = 255

// lz4CompressorPool pools lz4.Compressor instances, which carry a hash table
// that is expensive to allocate per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with the LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block of unknown original size.
//
// The block format does not record the original size, so the buffer starts
// at 4x the compressed size and doubles on ErrInvalidSourceShortBuffer up to
// the format's maximum expansion. Use DecompressSize when the size is known.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := math.MaxInt
	if len(data) <= math.MaxInt/lz4MaxExpansion {
		limit = len(data) * lz4MaxExpansion
	}

	bufSize := min(len(data), limit/4) * 4
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize >= limit {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		if bufSize > limit/2 {
			bufSize = limit
		} else {
			bufSize *= 2
		}
	}
}

// DecompressSize decompresses an LZ4 block into a buffer of exactly size
// bytes.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if size < 0 || len(data) == 0 {
		return nil, checkDecompressedSize("lz4", 0, size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
		return nil, fmt.Errorf("%w: lz4 block does not fit in %d bytes: %w", errs.ErrInvalidPayloadSize, size, err)
	}
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if err := checkDecompressedSize("lz4", n, size); err != nil {
		return nil, err
	}

	return buf, nil
}
