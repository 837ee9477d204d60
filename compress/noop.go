package compress

// NoOpCompressor passes payloads through unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself without copying.
//
// The returned slice shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself without copying.
//
// The returned slice shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSize returns data itself when it holds exactly size bytes.
func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkDecompressedSize("uncompressed", len(data), size); err != nil {
		return nil, err
	}

	return data, nil
}
