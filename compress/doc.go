// Package compress provides the compression codecs applied to serialized
// unit vector code payloads.
//
// Quantization already shrinks a float32 direction from 12 bytes to 2. The
// codecs here are a second, optional stage used by the blob package when a
// batch of codes is persisted:
//   - None: codes stored as-is
//   - Zstd: best ratio, klauspost/compress by default or valyala/gozstd
//     when built with the gozstd tag and cgo enabled
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// All codecs share the Codec interface:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// Every codec in this package is stateless or backed by sync.Pool and may be
// shared across goroutines.
package compress
