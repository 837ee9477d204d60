package codec

import "math"

// Pack quantizes the direction (x, y, z) into a 16-bit code.
//
// The input does not need to be normalized. Pack never fails: zero, NaN and
// infinite components are mapped through saturating integer conversion and
// always produce a defined code.
func Pack(x, y, z float32) uint16 {
	var code uint16
	if x < 0 {
		code |= XSignMask
		x = -x
	}
	if y < 0 {
		code |= YSignMask
		y = -y
	}
	if z < 0 {
		code |= ZSignMask
		z = -z
	}

	w := scale / (x + y + z)
	xbits := saturateInt32(x * w)
	ybits := saturateInt32(y * w)

	// Arithmetic below wraps in 32 bits, which keeps saturated coordinates
	// from degenerate inputs mapping to the same codes as the reference.
	if xbits >= foldThreshold {
		xbits = foldLimit - xbits
		ybits = foldLimit - ybits
	}

	code |= uint16(xbits << topShift)
	code |= uint16(ybits)

	return code
}

// PackSlice appends the code of every vector in src to dst and returns the
// extended slice.
func PackSlice(dst []uint16, src [][3]float32) []uint16 {
	dst = growCodes(dst, len(src))
	for _, v := range src {
		dst = append(dst, Pack(v[0], v[1], v[2]))
	}

	return dst
}

// saturateInt32 converts v to int32, truncating toward zero.
//
// Go leaves out-of-range float conversions implementation specific, so the
// edges are handled explicitly: NaN converts to 0 and values beyond the int32
// range clamp to math.MinInt32 or math.MaxInt32.
func saturateInt32(v float32) int32 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

func growCodes(dst []uint16, n int) []uint16 {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	grown := make([]uint16, len(dst), len(dst)+n)
	copy(grown, dst)

	return grown
}
