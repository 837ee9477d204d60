// Package section defines the binary layout of a cuv normal blob.
//
// A blob is a fixed 16-byte header followed by the (optionally compressed)
// code payload:
//
//	offset  size  field
//	0       2     Options (always little-endian)
//	                bit 0     endianness, 0 = little, 1 = big
//	                bit 1-3   reserved, must be 0
//	                bit 4-15  magic number 0xC0D0
//	2       1     CompressionType (format.CompressionType)
//	3       1     reserved, must be 0
//	4       4     Count, number of codes
//	8       4     PayloadSize, stored payload size in bytes
//	12      4     Checksum, low 32 bits of xxHash64 of the raw payload
//
// Fields at offset 4 and later use the byte order selected by bit 0 of
// Options. The raw payload is Count codes of 2 bytes each in the same order.
package section
