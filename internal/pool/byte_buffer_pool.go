// Package pool provides pooled byte buffers for payload encoding.
package pool

import "sync"

const (
	// CodeBufferDefaultSize holds 8192 codes, a typical mesh chunk.
	CodeBufferDefaultSize = 1024 * 16 // 16KiB
	// CodeBufferMaxThreshold is the largest buffer returned to the pool.
	CodeBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Small buffers grow by CodeBufferDefaultSize; buffers larger than four times
// that grow by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := CodeBufferDefaultSize
	if cap(bb.B) > 4*CodeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, requiredBytes)

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow extends the length of the buffer by n bytes, growing it when
// the capacity is insufficient, and returns the new n-byte tail.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start:]
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers above a
// capacity threshold instead of retaining them.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool.
// A maxThreshold of zero keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var codeDefaultPool = NewByteBufferPool(CodeBufferDefaultSize, CodeBufferMaxThreshold)

// GetCodeBuffer retrieves a ByteBuffer from the default code payload pool.
func GetCodeBuffer() *ByteBuffer {
	return codeDefaultPool.Get()
}

// PutCodeBuffer returns a ByteBuffer to the default code payload pool.
func PutCodeBuffer(bb *ByteBuffer) {
	codeDefaultPool.Put(bb)
}
