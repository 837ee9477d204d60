// Package codec implements the 16-bit unit vector quantization used by cuv.
//
// A three component float32 direction is folded into a single octant, projected
// onto the plane x+y+z = 126 and stored as two 7-bit coordinates plus three sign
// bits. Decoding recovers the third coordinate from the plane equation and
// normalizes the result with a precomputed table of reciprocal lengths, so the
// per-value decode path contains neither a division nor a square root.
//
// # Code Layout
//
//	bit  15   14   13   12 ........ 7   6 ........ 0
//	    [sx] [sy] [sz] [    xbits     ] [   ybits    ]
//
// The three sign bits are set for strictly negative components. The 13 low bits
// form the magnitude index that addresses the normalization Table.
//
// # Basic Usage
//
//	table := codec.BuildTable()
//
//	code := codec.Pack(0.0, 0.6, 0.8)
//	v := codec.Unpack(code, table)
//
// The Table is read-only once built and may be shared by any number of
// goroutines. BuildTable is O(8192); callers are expected to build it once.
//
// # Degenerate Inputs
//
// Pack is total. Zero, infinite, NaN and subnormal inputs never panic; the
// float to integer conversion saturates (NaN converts to 0) which yields the
// same codes as the reference implementation:
//
//	Pack(0, 0, 0)                 == 0
//	Pack(+Inf, 0, 0)              == 0
//	Pack(-Inf, 0, 0)              == 0x8000
//	Pack(-Inf, -Inf, -Inf)        == 0xe000
//
// Codes are a persistent wire format. Identical inputs always produce
// bit-identical codes.
package codec
