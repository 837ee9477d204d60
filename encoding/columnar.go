package encoding

import "iter"

// ColumnarEncoder appends fixed-width values of type T to a payload.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload.
	// The returned slice is valid until the next Write, WriteSlice or Finish.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Reset discards all encoded values but keeps the buffer.
	Reset()

	// Finish returns the buffer to the pool. The encoder is unusable afterwards.
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes values in bulk.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values of type T back from a payload.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values decoded from data. Truncated data yields
	// fewer values.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false if index is out of range.
	At(data []byte, index int, count int) (T, bool)
}
