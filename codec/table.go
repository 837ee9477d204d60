package codec

import (
	"fmt"
	"math"
	"sync"
)

// TableSize is the number of distinct magnitude indexes.
const TableSize = 0x2000

// Table holds the reciprocal length of every octant-local vector addressed by
// a magnitude index.
//
// A Table is immutable after BuildTable returns and is safe for concurrent use.
type Table [TableSize]float32

// BuildTable computes the normalization table used by Unpack.
//
// The result is deterministic. BuildTable panics if any entry is not a finite
// positive number, which can only happen if the fold arithmetic is broken.
func BuildTable() *Table {
	t := new(Table)
	for idx := range int32(TableSize) {
		xbits, ybits := unfold(idx>>topShift, idx&int32(BottomMask))

		x := float32(xbits)
		y := float32(ybits)
		z := float32(scale - xbits - ybits)

		// The sum of squares is an exact integer in float32, and rounding a
		// float64 square root to float32 gives the correctly rounded float32 root.
		length := float32(math.Sqrt(float64(y*y + z*z + x*x)))
		factor := 1 / length

		if math.IsInf(float64(factor), 0) || math.IsNaN(float64(factor)) || factor <= 0 {
			panic(fmt.Sprintf("codec: invalid normalization factor %v at index %d", factor, idx))
		}

		t[idx] = factor
	}

	return t
}

// Factor returns the normalization factor for the magnitude index of code.
// Sign bits are ignored.
func (t *Table) Factor(code uint16) float32 {
	return t[code&IndexMask]
}

// sharedTable builds the process-wide table exactly once. Concurrent first
// callers block until the single build completes.
var sharedTable = sync.OnceValue(BuildTable)

// SharedTable returns a lazily built, process-wide Table.
// The returned table must not be modified.
func SharedTable() *Table {
	return sharedTable()
}
