// Package pool provides pooled byte buffers for chunk encoding, minimizing
// allocations when many columns are serialized in sequence.
package pool

import "sync"

const (
	// ChunkBufferDefaultSize is the initial capacity of pooled chunk buffers.
	ChunkBufferDefaultSize = 16 * 1024
	// ChunkBufferMaxThreshold caps the capacity of buffers returned to the
	// pool; larger ones are dropped to avoid retaining memory after an
	// unusually large column.
	ChunkBufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a growable byte buffer whose storage survives Reset, so a
// pooled buffer can be reused across encode calls.
type ByteBuffer struct {
	// B is the underlying byte slice. Encoders append to it directly.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the accumulated bytes.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of accumulated bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while keeping its storage for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data, growing the buffer as needed. It never fails; the
// error return satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// ByteBufferPool pools ByteBuffers behind a sync.Pool, discarding buffers
// that grew past maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of the given default
// capacity. A maxThreshold of zero disables the retention cap.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
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
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var chunkPool = NewByteBufferPool(ChunkBufferDefaultSize, ChunkBufferMaxThreshold)

// GetChunkBuffer retrieves a ByteBuffer from the default chunk pool.
func GetChunkBuffer() *ByteBuffer {
	return chunkPool.Get()
}

// PutChunkBuffer returns a ByteBuffer to the default chunk pool.
func PutChunkBuffer(bb *ByteBuffer) {
	chunkPool.Put(bb)
}
