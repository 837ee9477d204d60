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

// MaxCount is the maximum number of codes in a single blob.
const MaxCount = math.MaxUint32

// Encoder packs vectors and serializes them into a blob.
//
// Note: The Encoder is NOT thread-safe and NOT reusable after Finish.
type Encoder struct {
	*EncoderConfig
	codes    *encoding.CodeRawEncoder
	scratch  []uint16
	stats    compress.CompressionStats
	finished bool
}

// NewEncoder creates a new Encoder.
//
// Available options:
//   - WithLittleEndian() / WithBigEndian() / WithNativeEndian()
//   - WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - WithLogger(*slog.Logger)
//
// Returns an error if an option is invalid.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		codes:         encoding.NewCodeRawEncoder(config.engine),
	}, nil
}

// Add packs and appends the direction (x, y, z).
func (e *Encoder) Add(x, y, z float32) error {
	return e.AddCode(codec.Pack(x, y, z))
}

// AddVector packs and appends v.
func (e *Encoder) AddVector(v [3]float32) error {
	return e.AddCode(codec.Pack(v[0], v[1], v[2]))
}

// AddVectors packs and appends all vectors in vs.
func (e *Encoder) AddVectors(vs [][3]float32) error {
	if err := e.reserve(len(vs)); err != nil {
		return err
	}

	e.scratch = codec.PackSlice(e.scratch[:0], vs)
	e.codes.WriteSlice(e.scratch)

	return nil
}

// AddCode appends an already packed code.
func (e *Encoder) AddCode(code uint16) error {
	if err := e.reserve(1); err != nil {
		return err
	}

	e.codes.Write(code)

	return nil
}

// AddCodes appends already packed codes.
func (e *Encoder) AddCodes(codes []uint16) error {
	if err := e.reserve(len(codes)); err != nil {
		return err
	}

	e.codes.WriteSlice(codes)

	return nil
}

// Len returns the number of codes added so far.
func (e *Encoder) Len() int {
	if e.finished {
		return 0
	}

	return e.codes.Len()
}

// Stats returns the payload compression statistics of the last Finish.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}

// Finish compresses the payload and returns the complete blob.
//
// The encoder releases its buffer and cannot be used afterwards, even when
// Finish returns an error.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer e.codes.Finish()

	raw := e.codes.Bytes()
	header := *e.header
	header.Count = uint32(e.codes.Len()) //nolint: gosec
	header.Checksum = hash.Checksum(raw)

	payload, err := e.codec.Compress(raw)
	if err != nil {
		e.logger.Error("blob payload compression failed",
			"compression", header.Flag.Compression().String(),
			"error", err,
		)

		return nil, fmt.Errorf("failed to compress code payload: %w", err)
	}
	header.PayloadSize = uint32(len(payload)) //nolint: gosec

	// The no-op codec returns the pooled buffer itself, so the payload must be
	// copied out before the deferred Finish releases it.
	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = header.AppendTo(out)
	out = append(out, payload...)

	e.stats = compress.CompressionStats{
		Algorithm:      header.Flag.Compression(),
		OriginalSize:   int64(len(raw)),
		CompressedSize: int64(len(payload)),
	}

	e.logger.Debug("blob encoded",
		"count", header.Count,
		"compression", header.Flag.Compression().String(),
		"big_endian", header.Flag.IsBigEndian(),
		"raw_size", len(raw),
		"payload_size", len(payload),
	)

	return out, nil
}

func (e *Encoder) reserve(n int) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if uint64(e.codes.Len())+uint64(n) > MaxCount {
		return fmt.Errorf("%w: %d + %d exceeds %d", errs.ErrTooManyVectors, e.codes.Len(), n, uint64(MaxCount))
	}

	return nil
}
