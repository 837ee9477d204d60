package blob

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/cuv/codec"
	"github.com/arloliu/cuv/compress"
	"github.com/arloliu/cuv/endian"
	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/format"
	"github.com/arloliu/cuv/internal/options"
	"github.com/arloliu/cuv/section"
)

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	header *section.Header
	codec  compress.Codec
	engine endian.EndianEngine
	logger *slog.Logger
}

func newEncoderConfig() *EncoderConfig {
	header := section.NewHeader()

	return &EncoderConfig{
		header: header,
		codec:  compress.NewNoOpCompressor(),
		engine: header.Flag.GetEndianEngine(),
		logger: discardLogger(),
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	payloadCodec, err := compress.CreateCodec(comp, "payload")
	if err != nil {
		return err
	}

	c.header.Flag.SetCompression(comp)
	c.codec = payloadCodec

	return nil
}

func (c *EncoderConfig) setEndianess(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}

	c.engine = c.header.Flag.GetEndianEngine()
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian stores codes little-endian. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(false)
	})
}

// WithBigEndian stores codes big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(true)
	})
}

// WithNativeEndian stores codes in the byte order of the host.
func WithNativeEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(!endian.IsNativeLittleEndian())
	})
}

// WithCompression sets the payload compression. The default is
// format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLogger sets the structured logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidOption)
		}
		c.logger = logger

		return nil
	})
}

// DecoderConfig holds the settings of a Decoder.
type DecoderConfig struct {
	table          *codec.Table
	logger         *slog.Logger
	verifyChecksum bool
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		logger:         discardLogger(),
		verifyChecksum: true,
	}
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithTable decodes vectors with t instead of the process-wide shared table.
// t must come from codec.BuildTable.
func WithTable(t *codec.Table) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if t == nil {
			return fmt.Errorf("%w: nil table", errs.ErrInvalidOption)
		}
		c.table = t

		return nil
	})
}

// WithDecoderLogger sets the structured logger. By default nothing is logged.
func WithDecoderLogger(logger *slog.Logger) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidOption)
		}
		c.logger = logger

		return nil
	})
}

// WithChecksumVerification enables or disables payload checksum verification.
// Verification is enabled by default.
func WithChecksumVerification(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.verifyChecksum = enabled
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
