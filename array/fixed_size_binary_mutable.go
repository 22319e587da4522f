package array

import (
	"fmt"

	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/types"
)

// MutableFixedSizeBinaryArray is the growable builder for FixedSizeBinaryArray.
//
// The validity bitmap is materialized lazily: as long as only values are
// appended no bitmap exists, and the finished array reports Validity() == nil.
// The first AppendNull allocates the bitmap and backfills it with set bits.
//
// Not safe for concurrent use.
type MutableFixedSizeBinaryArray struct {
	size     int
	data     []byte
	validity *bitmap.MutableBitmap // nil until the first null
}

// NewMutableFixedSizeBinary creates a builder for slots of the given byte
// width with capacity for the given element count. It panics if size is not
// positive.
func NewMutableFixedSizeBinary(size, capacity int) *MutableFixedSizeBinaryArray {
	if size <= 0 {
		panic("array: fixed slot width must be positive")
	}

	return &MutableFixedSizeBinaryArray{
		size: size,
		data: make([]byte, 0, size*capacity),
	}
}

// Size returns the configured slot width in bytes.
func (m *MutableFixedSizeBinaryArray) Size() int {
	return m.size
}

// Len returns the number of elements appended so far.
func (m *MutableFixedSizeBinaryArray) Len() int {
	return len(m.data) / m.size
}

// DataType returns the FixedSizeBinary descriptor of the builder's slots.
func (m *MutableFixedSizeBinaryArray) DataType() types.DataType {
	return types.FixedSizeBinary(m.size)
}

// Validity returns the builder's validity bitmap, or nil while no null has
// been appended.
func (m *MutableFixedSizeBinaryArray) Validity() *bitmap.MutableBitmap {
	return m.validity
}

// Append appends one value slot. The slice length must equal the configured
// slot width; otherwise an ErrInvalidWidth error is returned and the builder
// is left unchanged.
func (m *MutableFixedSizeBinaryArray) Append(v []byte) error {
	if len(v) != m.size {
		return fmt.Errorf("%w: got %d bytes, builder slot width is %d", errs.ErrInvalidWidth, len(v), m.size)
	}

	m.data = append(m.data, v...)
	if m.validity != nil {
		m.validity.Append(true)
	}

	return nil
}

// AppendNull appends one null slot. The slot storage is zero-filled so every
// element occupies exactly Size() bytes regardless of validity.
func (m *MutableFixedSizeBinaryArray) AppendNull() {
	if m.validity == nil {
		m.validity = bitmap.NewMutable(cap(m.data) / m.size)
		m.validity.AppendN(true, m.Len())
	}

	var zero [16]byte
	rest := m.size
	for rest > len(zero) {
		m.data = append(m.data, zero[:]...)
		rest -= len(zero)
	}
	m.data = append(m.data, zero[:rest]...)
	m.validity.Append(false)
}

// ShrinkToFit releases unused reserved capacity. Length and content are
// unchanged.
func (m *MutableFixedSizeBinaryArray) ShrinkToFit() {
	if cap(m.data) > len(m.data) {
		data := make([]byte, len(m.data))
		copy(data, m.data)
		m.data = data
	}
	if m.validity != nil {
		m.validity.ShrinkToFit()
	}
}

// Finish snapshots the builder into an immutable FixedSizeBinaryArray.
//
// The byte buffer is handed over without copying: the snapshot views the
// builder's storage with capacity clamped to its length, so later builder
// appends land beyond the view and never disturb it. Finish may be called
// again; each call yields an independent snapshot of the state at that point.
func (m *MutableFixedSizeBinaryArray) Finish() *FixedSizeBinaryArray {
	var validity *bitmap.Bitmap
	if m.validity != nil {
		validity = m.validity.Freeze()
	}

	return NewFixedSizeBinary(m.DataType(), m.data[:len(m.data):len(m.data)], validity)
}
