package codec

// Bit layout of a packed unit vector code.
const (
	SignMask   uint16 = 0xe000 // SignMask covers all three sign bits.
	XSignMask  uint16 = 0x8000 // XSignMask is set when x is negative.
	YSignMask  uint16 = 0x4000 // YSignMask is set when y is negative.
	ZSignMask  uint16 = 0x2000 // ZSignMask is set when z is negative.
	TopMask    uint16 = 0x1f80 // TopMask selects the xbits coordinate (bits 7-12).
	BottomMask uint16 = 0x007f // BottomMask selects the ybits coordinate (bits 0-6).
	IndexMask  uint16 = 0x1fff // IndexMask selects the 13-bit magnitude index.
)

const (
	// scale is the target sum of the octant-local coordinates.
	scale = 126
	// foldLimit is the reflection constant of the octant fold.
	foldLimit = 127
	// foldThreshold is the smallest encoder xbits value that gets folded.
	foldThreshold = 64
	// topShift is the bit position of the xbits coordinate.
	topShift = 7
)

// MagnitudeIndex returns the 13-bit magnitude index of code, i.e. the code
// with its sign bits cleared.
func MagnitudeIndex(code uint16) uint16 {
	return code & IndexMask
}

// Signs reports which components of code are stored as negative.
func Signs(code uint16) (x, y, z bool) {
	return code&XSignMask != 0, code&YSignMask != 0, code&ZSignMask != 0
}

// unfold maps raw coordinates back into the lower triangle where
// xbits+ybits <= 126.
func unfold(xbits, ybits int32) (int32, int32) {
	if xbits+ybits >= foldLimit {
		return foldLimit - xbits, foldLimit - ybits
	}

	return xbits, ybits
}
