// Package blob stores batches of compressed unit vectors in a self-describing
// binary container.
//
// A blob is a 16-byte section.Header followed by the code payload, optionally
// compressed with one of the compress package codecs. The header records the
// byte order, compression type, code count and an xxHash-based checksum of the
// raw payload.
//
// # Encoding
//
//	encoder, err := blob.NewEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, n := range normals {
//	    if err := encoder.AddVector(n); err != nil {
//	        return err
//	    }
//	}
//	data, err := encoder.Finish()
//
// # Decoding
//
//	decoder, err := blob.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	b, err := decoder.Decode()
//	if err != nil {
//	    return err
//	}
//	for i, v := range b.Vectors() {
//	    fmt.Println(i, v)
//	}
//
// Encoders and decoders are single-use and not safe for concurrent use. A
// decoded Blob is read-only and may be shared.
package blob
