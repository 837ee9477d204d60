package section

import (
	"fmt"

	"github.com/arloliu/cuv/endian"
	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/format"
)

// Flag is the packed options and compression field at the start of a header.
type Flag struct {
	// Options holds the endianness bit and the magic number.
	Options uint16
	// CompressionType is the format.CompressionType of the payload.
	CompressionType uint8
	// Reserved must be zero.
	Reserved uint8
}

// NewFlag creates a little-endian, uncompressed Flag.
func NewFlag() Flag {
	return Flag{
		Options:         MagicNormalV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the blob is little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian returns whether the blob is big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number bits of Options.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicNormalV1Opt {
		return fmt.Errorf("%w: %#04x", errs.ErrInvalidMagic, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}
