// Package encoding serializes runs of 16-bit unit vector codes.
//
// Codes are stored raw, two bytes each, in the byte order of the supplied
// endian.EndianEngine. The encoders follow the columnar contract:
//
//	type ColumnarEncoder[T comparable] interface {
//	    Write(data T)
//	    WriteSlice(data []T)
//	    Bytes() []byte
//	    Len() int
//	    Size() int
//	    Reset()
//	    Finish()
//	}
//
//	type ColumnarDecoder[T comparable] interface {
//	    All(data []byte, count int) iter.Seq[T]
//	    At(data []byte, index int, count int) (T, bool)
//	}
//
// Compression is left to the compress package and applied on the finished
// payload.
package encoding
