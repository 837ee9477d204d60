package section

import "github.com/arloliu/cuv/errs"

// Header is the fixed-size header at the start of a normal blob.
type Header struct {
	// Flag holds the options, magic number and compression type.
	Flag Flag // byte offset 0-3
	// Count is the number of codes in the payload.
	Count uint32 // byte offset 4-7
	// PayloadSize is the stored, possibly compressed, payload size in bytes.
	PayloadSize uint32 // byte offset 8-11
	// Checksum is the truncated xxHash64 of the uncompressed payload.
	Checksum uint32 // byte offset 12-15
}

// NewHeader creates a Header with default flags and no codes.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	// Options are always little-endian so the byte order can be read first.
	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.CompressionType, h.Flag.Reserved)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.Checksum)

	return dst
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.CompressionType = data[2]
	h.Flag.Reserved = data[3]

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint32(data[12:16])

	return h.Flag.Validate()
}

// ParseHeader parses a Header from data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
