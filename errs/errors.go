// Package errs defines the sentinel errors returned by cuv containers.
//
// Callers should match them with errors.Is, since most call sites wrap them
// with additional context.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when the data is shorter than a blob header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidHeaderFlags is returned when reserved header bits are set or the byte order is unknown.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrInvalidMagic is returned when the header does not carry the normal blob magic number.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrInvalidPayloadSize is returned when a payload length disagrees with its header.
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	// ErrChecksumMismatch is returned when the decoded payload does not match the stored checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
	// ErrTooManyVectors is returned when an encoder exceeds the maximum vector count.
	ErrTooManyVectors = errors.New("too many vectors")
	// ErrEncoderFinished is returned when an encoder is used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// ErrInvalidOption is returned when an option receives an unusable argument.
var ErrInvalidOption = errors.New("invalid option")
