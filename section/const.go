package section

const (
	EndiannessMask   = 0x0001 // EndiannessMask selects the byte order bit.
	ReservedBitsMask = 0x000e // ReservedBitsMask covers bits 1-3, which must be zero.
	MagicNumberMask  = 0xfff0 // MagicNumberMask covers the magic number bits.

	MagicNormalV1Opt = 0xc0d0 // MagicNormalV1Opt identifies version 1 of the normal blob format.
)

// HeaderSize is the fixed size of a blob header in bytes.
const HeaderSize = 16
