package bitmap

// MutableBitmap is a growable validity bitmap used by array builders.
//
// It is not safe for concurrent use. Freeze snapshots the current bits into an
// immutable Bitmap; the builder can keep growing afterwards without disturbing
// the snapshot.
type MutableBitmap struct {
	bits   []byte
	length int
}

// NewMutable creates an empty MutableBitmap with capacity for at least
// capacity bits.
func NewMutable(capacity int) *MutableBitmap {
	return &MutableBitmap{bits: make([]byte, 0, bytesForBits(capacity))}
}

// Len returns the number of bits appended so far.
func (b *MutableBitmap) Len() int {
	return b.length
}

// Get returns the bit at position i. It panics if i is out of bounds.
func (b *MutableBitmap) Get(i int) bool {
	if i < 0 || i >= b.length {
		panic("bitmap: index out of bounds")
	}

	return b.bits[i>>3]&(1<<(i&7)) != 0
}

// Append appends a single bit.
func (b *MutableBitmap) Append(v bool) {
	if b.length>>3 == len(b.bits) {
		b.bits = append(b.bits, 0)
	}
	if v {
		b.bits[b.length>>3] |= 1 << (b.length & 7)
	}
	b.length++
}

// AppendN appends n copies of v.
func (b *MutableBitmap) AppendN(v bool, n int) {
	for i := 0; i < n; i++ {
		b.Append(v)
	}
}

// SetCount returns the number of set bits appended so far.
func (b *MutableBitmap) SetCount() int {
	count := 0
	for i := 0; i < b.length; i++ {
		if b.bits[i>>3]&(1<<(i&7)) != 0 {
			count++
		}
	}

	return count
}

// Freeze snapshots the current bits into an immutable Bitmap.
//
// The byte storage is copied: the builder keeps mutating bits inside its final
// partial byte as it grows, so sharing it would let later appends leak into
// the snapshot.
func (b *MutableBitmap) Freeze() *Bitmap {
	bits := make([]byte, bytesForBits(b.length))
	copy(bits, b.bits)

	return &Bitmap{bits: bits, length: b.length}
}

// ShrinkToFit releases unused reserved capacity.
func (b *MutableBitmap) ShrinkToFit() {
	used := bytesForBits(b.length)
	if cap(b.bits) > used {
		bits := make([]byte, len(b.bits), used)
		copy(bits, b.bits)
		b.bits = bits
	}
}
