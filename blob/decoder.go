package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/cuv/codec"
	"github.com/arloliu/cuv/compress"
	"github.com/arloliu/cuv/encoding"
	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/internal/hash"
	"github.com/arloliu/cuv/internal/options"
	"github.com/arloliu/cuv/section"
)

// Decoder validates a serialized blob and reconstructs a Blob from it.
//
// Note: The Decoder is NOT thread-safe.
type Decoder struct {
	*DecoderConfig
	data   []byte
	header section.Header
}

// NewDecoder creates a new Decoder for data.
//
// The header and the stored payload size are validated immediately; the
// payload is decompressed and verified by Decode.
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: Header parsing errors or errs.ErrInvalidPayloadSize
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	config := newDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blob header: %w", err)
	}

	if want := uint64(section.HeaderSize) + uint64(header.PayloadSize); uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: blob is %d bytes, header expects %d", errs.ErrInvalidPayloadSize, len(data), want)
	}

	return &Decoder{
		DecoderConfig: config,
		data:          data,
		header:        header,
	}, nil
}

// Header returns the parsed blob header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode decompresses and verifies the payload.
//
// An uncompressed blob shares memory with the data passed to NewDecoder,
// which must not be modified while the Blob is in use.
//
// Returns:
//   - Blob: Decoded blob
//   - error: Decompression errors, errs.ErrInvalidPayloadSize when the code
//     count disagrees with the payload, or errs.ErrChecksumMismatch
//
// A payload never decompresses to more than the size implied by the header
// count, so a corrupt blob cannot force a large allocation.
func (d *Decoder) Decode() (Blob, error) {
	comp := d.header.Flag.Compression()
	payloadCodec, err := compress.GetCodec(comp)
	if err != nil {
		return Blob{}, err
	}

	// The header count fixes the raw size, which bounds decompression.
	rawSize := uint64(d.header.Count) * encoding.CodeSize
	if rawSize > math.MaxInt {
		return Blob{}, fmt.Errorf("%w: %d codes exceed the addressable size", errs.ErrInvalidPayloadSize, d.header.Count)
	}

	raw, err := payloadCodec.DecompressSize(d.data[section.HeaderSize:], int(rawSize))
	if err != nil {
		return Blob{}, fmt.Errorf("failed to decompress code payload: %w", err)
	}

	engine := d.header.Flag.GetEndianEngine()
	decoder := encoding.NewCodeRawDecoder(engine)
	count, err := decoder.Count(raw)
	if err != nil {
		return Blob{}, err
	}
	if uint64(count) != uint64(d.header.Count) {
		return Blob{}, fmt.Errorf("%w: payload holds %d codes, header declares %d", errs.ErrInvalidPayloadSize, count, d.header.Count)
	}

	if d.verifyChecksum {
		if sum := hash.Checksum(raw); sum != d.header.Checksum {
			d.logger.Warn("blob checksum mismatch",
				"count", count,
				"compression", comp.String(),
				"expected", d.header.Checksum,
				"actual", sum,
			)

			return Blob{}, fmt.Errorf("%w: expected %#08x, got %#08x", errs.ErrChecksumMismatch, d.header.Checksum, sum)
		}
	}

	table := d.table
	if table == nil {
		table = codec.SharedTable()
	}

	d.logger.Debug("blob decoded",
		"count", count,
		"compression", comp.String(),
		"big_endian", d.header.Flag.IsBigEndian(),
		"payload_size", d.header.PayloadSize,
	)

	return Blob{
		payload:     raw,
		count:       count,
		decoder:     decoder,
		table:       table,
		compression: comp,
		bigEndian:   d.header.Flag.IsBigEndian(),
	}, nil
}
