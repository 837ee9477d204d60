// Package cuv compresses 3-component unit vectors into 16-bit codes.
//
// A direction such as a surface normal takes 12 bytes as three float32
// values. cuv quantizes it to 2 bytes with a per-component reconstruction
// error below 0.03, which is usually invisible for shading and a 6x saving
// for storage and transfer.
//
// # Basic Usage
//
// The Vec value type packs on construction and decodes on demand:
//
//	v := cuv.New(0.0, 0.6, 0.8)
//	code := v.Code()      // persist the uint16
//	xyz := v.Decode()     // approximately [0 0.6 0.8]
//
//	restored := cuv.FromCode(code)
//
// Decode uses a process-wide normalization table that is built on first use.
// Code that prefers explicit dependencies can build its own table with
// codec.BuildTable and call DecodeWith or codec.Unpack directly.
//
// # Package Structure
//
//   - codec: the Pack/Unpack transforms and the normalization table
//   - blob: a persistable batch of codes with optional compression
//   - compress, encoding, section: building blocks of the blob format
//
// EncodeVectors and DecodeVectors cover the common case of storing a whole
// batch at once.
//
// Inputs do not need to be normalized. Zero, infinite and NaN components are
// accepted and map to well-defined codes; see the codec package.
package cuv

import (
	"fmt"

	"github.com/arloliu/cuv/blob"
	"github.com/arloliu/cuv/codec"
)

// SharedTable returns the process-wide normalization table used by
// Vec.Decode. It is built on first use; the table must not be modified.
func SharedTable() *codec.Table {
	return codec.SharedTable()
}

// Vec is an immutable compressed unit vector occupying two bytes.
type Vec struct {
	code uint16
}

// New packs the direction (x, y, z). The input does not need unit length.
func New(x, y, z float32) Vec {
	return Vec{code: codec.Pack(x, y, z)}
}

// FromCode wraps an already packed code without any computation.
func FromCode(code uint16) Vec {
	return Vec{code: code}
}

// FromArray packs the direction stored in v.
func FromArray(v [3]float32) Vec {
	return Vec{code: codec.Pack(v[0], v[1], v[2])}
}

// Code returns the packed 16-bit representation.
func (v Vec) Code() uint16 {
	return v.code
}

// Decode returns the approximate unit vector using the shared table.
func (v Vec) Decode() [3]float32 {
	return codec.Unpack(v.code, codec.SharedTable())
}

// DecodeWith returns the approximate unit vector using table t, which must
// come from codec.BuildTable.
func (v Vec) DecodeWith(t *codec.Table) [3]float32 {
	return codec.Unpack(v.code, t)
}

// String implements fmt.Stringer.
func (v Vec) String() string {
	xyz := v.Decode()
	return fmt.Sprintf("Vec(%#04x)[%g %g %g]", v.code, xyz[0], xyz[1], xyz[2])
}

// NewEncoder creates a blob encoder. See blob.NewEncoder for options.
//
// Example:
//
//	encoder, err := cuv.NewEncoder(blob.WithCompression(format.CompressionZstd))
func NewEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}

// NewDecoder creates a blob decoder for data. See blob.NewDecoder for options.
func NewDecoder(data []byte, opts ...blob.DecoderOption) (*blob.Decoder, error) {
	return blob.NewDecoder(data, opts...)
}

// EncodeVectors packs vs into a single blob.
func EncodeVectors(vs [][3]float32, opts ...blob.EncoderOption) ([]byte, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	if err := encoder.AddVectors(vs); err != nil {
		return nil, err
	}

	return encoder.Finish()
}

// DecodeVectors decodes every vector stored in a blob.
func DecodeVectors(data []byte, opts ...blob.DecoderOption) ([][3]float32, error) {
	decoder, err := blob.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	b, err := decoder.Decode()
	if err != nil {
		return nil, err
	}

	return b.AppendVectors(make([][3]float32, 0, b.Len())), nil
}
