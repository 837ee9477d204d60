package codec

// Unpack reconstructs the unit vector stored in code using the normalization
// table t, which must come from BuildTable.
//
// Every 16-bit value decodes to a finite vector of length 1 within float32
// rounding, including codes that Pack never produces. A sign bit on a zero
// component yields negative zero.
func Unpack(code uint16, t *Table) [3]float32 {
	xbits, ybits := unfold(int32((code&TopMask)>>topShift), int32(code&BottomMask))

	// The table is indexed by the raw pattern; it applies the same fold per
	// index, so its entry already matches xbits and ybits above.
	factor := t[code&IndexMask]
	x := factor * float32(xbits)
	y := factor * float32(ybits)
	z := factor * float32(scale-xbits-ybits)

	if code&XSignMask != 0 {
		x = -x
	}
	if code&YSignMask != 0 {
		y = -y
	}
	if code&ZSignMask != 0 {
		z = -z
	}

	return [3]float32{x, y, z}
}

// UnpackSlice appends the decoded vector of every code to dst and returns the
// extended slice.
func UnpackSlice(dst [][3]float32, codes []uint16, t *Table) [][3]float32 {
	if cap(dst)-len(dst) < len(codes) {
		grown := make([][3]float32, len(dst), len(dst)+len(codes))
		copy(grown, dst)
		dst = grown
	}

	for _, code := range codes {
		dst = append(dst, Unpack(code, t))
	}

	return dst
}
