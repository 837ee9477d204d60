package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/cuv/endian"
	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/internal/pool"
)

// CodeSize is the encoded size of one code in bytes.
const CodeSize = 2

// CodeRawEncoder writes unit vector codes as raw 2-byte integers.
type CodeRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[uint16] = (*CodeRawEncoder)(nil)

// NewCodeRawEncoder creates a new code encoder backed by a pooled buffer.
//
// Parameters:
//   - engine: Endian engine for byte order (typically little-endian)
func NewCodeRawEncoder(engine endian.EndianEngine) *CodeRawEncoder {
	return &CodeRawEncoder{
		engine: engine,
		buf:    pool.GetCodeBuffer(),
	}
}

// Write encodes a single code.
//
// Panics if Finish has been called.
func (e *CodeRawEncoder) Write(code uint16) {
	e.mustBeOpen()

	e.count++
	e.buf.Grow(CodeSize)
	e.buf.B = e.engine.AppendUint16(e.buf.B, code)
}

// WriteSlice encodes codes with a single buffer growth.
//
// Panics if Finish has been called.
func (e *CodeRawEncoder) WriteSlice(codes []uint16) {
	e.mustBeOpen()
	if len(codes) == 0 {
		return
	}

	e.count += len(codes)
	tail := e.buf.ExtendOrGrow(len(codes) * CodeSize)
	for i, code := range codes {
		e.engine.PutUint16(tail[i*CodeSize:], code)
	}
}

// Bytes returns the encoded payload.
//
// The returned slice references the internal buffer and is only valid until
// the next Write, WriteSlice, Reset or Finish.
//
// Panics if Finish has been called.
func (e *CodeRawEncoder) Bytes() []byte {
	e.mustBeOpen()

	return e.buf.Bytes()
}

// Len returns the number of encoded codes.
func (e *CodeRawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
//
// Panics if Finish has been called.
func (e *CodeRawEncoder) Size() int {
	e.mustBeOpen()

	return e.buf.Len()
}

// Reset discards all encoded codes and keeps the buffer for reuse.
//
// Panics if Finish has been called.
func (e *CodeRawEncoder) Reset() {
	e.mustBeOpen()

	e.count = 0
	e.buf.Reset()
}

// Finish returns the buffer to the pool. Only Len and Finish may be called
// afterwards; a second Finish does nothing.
func (e *CodeRawEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutCodeBuffer(e.buf)
	e.buf = nil
	e.count = 0
}

func (e *CodeRawEncoder) mustBeOpen() {
	if e.buf == nil {
		panic("encoder already finished - cannot use after Finish()")
	}
}

// CodeRawDecoder reads raw 2-byte codes.
//
// It is a small value type; pass it by value.
type CodeRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[uint16] = CodeRawDecoder{}

// NewCodeRawDecoder creates a new code decoder for the given byte order.
func NewCodeRawDecoder(engine endian.EndianEngine) CodeRawDecoder {
	return CodeRawDecoder{engine: engine}
}

// Count returns the number of codes in data, or errs.ErrInvalidPayloadSize
// when data is not a whole number of codes.
func (d CodeRawDecoder) Count(data []byte) (int, error) {
	if len(data)%CodeSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a multiple of %d", errs.ErrInvalidPayloadSize, len(data), CodeSize)
	}

	return len(data) / CodeSize, nil
}

// All yields up to count codes from data.
func (d CodeRawDecoder) All(data []byte, count int) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		n := min(count, len(data)/CodeSize)
		for i := range n {
			if !yield(d.engine.Uint16(data[i*CodeSize:])) {
				return
			}
		}
	}
}

// At returns the code at index.
//
// Returns false if index is negative, not below count, or beyond data.
func (d CodeRawDecoder) At(data []byte, index int, count int) (uint16, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	offset := index * CodeSize
	if offset+CodeSize > len(data) {
		return 0, false
	}

	return d.engine.Uint16(data[offset:]), true
}

// DecodeSlice appends up to count codes from data to dst.
func (d CodeRawDecoder) DecodeSlice(dst []uint16, data []byte, count int) []uint16 {
	for code := range d.All(data, count) {
		dst = append(dst, code)
	}

	return dst
}
