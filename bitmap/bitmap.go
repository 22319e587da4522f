// Package bitmap provides the validity bitmap used by columna arrays to track
// which logical slots hold a value and which are null.
//
// Bits are packed LSB-first: bit i of the bitmap lives at byte i/8, bit i%8.
// A set bit marks a valid slot, a clear bit marks a null slot.
//
// Bitmap is an immutable view supporting O(1) slicing through an (offset,
// length) pair over a shared byte buffer. MutableBitmap is its growable
// builder counterpart.
package bitmap

import "iter"

// Bitmap is an immutable, sliceable view over packed validity bits.
//
// Slicing and copying a Bitmap never copies the underlying bytes; views share
// the same backing buffer and must treat it as read-only.
type Bitmap struct {
	bits   []byte
	offset int // bit offset of the view's first bit
	length int // number of bits in the view
}

// New creates a Bitmap over the given packed bits with the given logical
// length. It panics if bits cannot hold length bits.
//
// The Bitmap takes ownership of bits in the shared, read-only sense: the
// caller must not modify the slice afterwards.
func New(bits []byte, length int) *Bitmap {
	if len(bits)*8 < length {
		panic("bitmap: byte buffer too short for requested length")
	}

	return &Bitmap{bits: bits, length: length}
}

// NewAllSet creates a Bitmap of the given length with every bit set.
func NewAllSet(length int) *Bitmap {
	bits := make([]byte, bytesForBits(length))
	for i := range bits {
		bits[i] = 0xFF
	}

	return &Bitmap{bits: bits, length: length}
}

// NewAllClear creates a Bitmap of the given length with every bit clear.
func NewAllClear(length int) *Bitmap {
	return &Bitmap{bits: make([]byte, bytesForBits(length)), length: length}
}

func bytesForBits(n int) int {
	return (n + 7) / 8
}

// Len returns the number of bits in the view.
func (b *Bitmap) Len() int {
	return b.length
}

// Get returns the bit at position i. It panics if i is out of bounds.
func (b *Bitmap) Get(i int) bool {
	if i < 0 || i >= b.length {
		panic("bitmap: index out of bounds")
	}

	return b.GetUnchecked(i)
}

// GetUnchecked returns the bit at position i without bounds checking.
// The caller must ensure 0 <= i < Len().
func (b *Bitmap) GetUnchecked(i int) bool {
	pos := b.offset + i

	return b.bits[pos>>3]&(1<<(pos&7)) != 0
}

// Slice returns an O(1) view over bits [offset, offset+length).
// It panics if offset+length > Len().
func (b *Bitmap) Slice(offset, length int) *Bitmap {
	if offset < 0 || length < 0 || offset+length > b.length {
		panic("bitmap: slice bounds out of range")
	}

	return b.SliceUnchecked(offset, length)
}

// SliceUnchecked returns an O(1) view over bits [offset, offset+length)
// without bounds checking. The caller must ensure offset+length <= Len().
func (b *Bitmap) SliceUnchecked(offset, length int) *Bitmap {
	return &Bitmap{bits: b.bits, offset: b.offset + offset, length: length}
}

// All returns an iterator over every bit in order.
func (b *Bitmap) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(b.GetUnchecked(i)) {
				return
			}
		}
	}
}

// SetCount returns the number of set bits in the view.
func (b *Bitmap) SetCount() int {
	count := 0
	for i := 0; i < b.length; i++ {
		if b.GetUnchecked(i) {
			count++
		}
	}

	return count
}

// ClearCount returns the number of clear bits in the view.
func (b *Bitmap) ClearCount() int {
	return b.length - b.SetCount()
}

// Packed returns the view's bits repacked so that bit 0 sits at byte 0, bit 0.
// When the view is already byte-aligned the returned slice shares the backing
// buffer; otherwise a fresh slice is allocated. Callers must not modify the
// result.
func (b *Bitmap) Packed() []byte {
	n := bytesForBits(b.length)
	if b.offset&7 == 0 {
		return b.bits[b.offset>>3 : b.offset>>3+n]
	}

	packed := make([]byte, n)
	for i := 0; i < b.length; i++ {
		if b.GetUnchecked(i) {
			packed[i>>3] |= 1 << (i & 7)
		}
	}

	return packed
}
