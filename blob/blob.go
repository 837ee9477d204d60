package blob

import (
	"iter"

	"github.com/arloliu/cuv/codec"
	"github.com/arloliu/cuv/encoding"
	"github.com/arloliu/cuv/format"
)

// Blob is a decoded, read-only batch of unit vector codes.
//
// A Blob is safe for concurrent reads.
type Blob struct {
	payload     []byte
	count       int
	decoder     encoding.CodeRawDecoder
	table       *codec.Table
	compression format.CompressionType
	bigEndian   bool
}

// Len returns the number of codes in the blob.
func (b Blob) Len() int {
	return b.count
}

// Compression returns the compression type the blob was stored with.
func (b Blob) Compression() format.CompressionType {
	return b.compression
}

// IsBigEndian reports whether the blob stores codes big-endian.
func (b Blob) IsBigEndian() bool {
	return b.bigEndian
}

// Code returns the code at index i, or false if i is out of range.
func (b Blob) Code(i int) (uint16, bool) {
	return b.decoder.At(b.payload, i, b.count)
}

// Vector returns the decoded vector at index i, or false if i is out of range.
func (b Blob) Vector(i int) ([3]float32, bool) {
	code, ok := b.Code(i)
	if !ok {
		return [3]float32{}, false
	}

	return codec.Unpack(code, b.table), true
}

// Codes returns an iterator over the index and code of every entry.
func (b Blob) Codes() iter.Seq2[int, uint16] {
	return func(yield func(int, uint16) bool) {
		i := 0
		for code := range b.decoder.All(b.payload, b.count) {
			if !yield(i, code) {
				return
			}
			i++
		}
	}
}

// Vectors returns an iterator over the index and decoded vector of every entry.
func (b Blob) Vectors() iter.Seq2[int, [3]float32] {
	return func(yield func(int, [3]float32) bool) {
		for i, code := range b.Codes() {
			if !yield(i, codec.Unpack(code, b.table)) {
				return
			}
		}
	}
}

// AppendCodes appends all codes to dst.
func (b Blob) AppendCodes(dst []uint16) []uint16 {
	return b.decoder.DecodeSlice(dst, b.payload, b.count)
}

// AppendVectors appends all decoded vectors to dst.
func (b Blob) AppendVectors(dst [][3]float32) [][3]float32 {
	return codec.UnpackSlice(dst, b.AppendCodes(make([]uint16, 0, b.count)), b.table)
}
