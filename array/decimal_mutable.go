package array

import (
	"fmt"

	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/int128"
	"github.com/arloliu/columna/types"
)

// MutableDecimalArray is the growable builder for DecimalArray and the only
// sanctioned producer of decimal byte content.
//
// Every appended value is range-checked against the column's precision before
// any storage is touched, so a finished array never holds an out-of-range
// value. Not safe for concurrent use.
type MutableDecimalArray struct {
	inner     *MutableFixedSizeBinaryArray
	precision int
	scale     int
}

// NewMutableDecimal creates a decimal builder with capacity for the given
// element count. The delegate slot width is fixed at 16 bytes. It panics if
// precision is outside [1, 38].
func NewMutableDecimal(capacity, precision, scale int) *MutableDecimalArray {
	if precision < 1 || precision > MaxDecimalPrecision {
		panic(fmt.Sprintf("array: decimal precision %d outside [1, %d]", precision, MaxDecimalPrecision))
	}

	return &MutableDecimalArray{
		inner:     NewMutableFixedSizeBinary(int128.ByteWidth, capacity),
		precision: precision,
		scale:     scale,
	}
}

// Len returns the number of elements appended so far.
func (m *MutableDecimalArray) Len() int {
	return m.inner.Len()
}

// DataType returns the Decimal(precision, scale) descriptor.
func (m *MutableDecimalArray) DataType() types.DataType {
	return types.Decimal(m.precision, m.scale)
}

// Validity returns the builder's validity bitmap, or nil while no null has
// been appended.
func (m *MutableDecimalArray) Validity() *bitmap.MutableBitmap {
	return m.inner.Validity()
}

// Precision returns the column's precision.
func (m *MutableDecimalArray) Precision() int {
	return m.precision
}

// Scale returns the column's scale.
func (m *MutableDecimalArray) Scale() int {
	return m.scale
}

// Append validates and appends one value.
//
// A value outside the precision's range is rejected with ErrOutOfRange before
// any storage mutation, leaving the builder unchanged. A slot-width mismatch
// between the 16-byte encoding and the delegate reports ErrInvalidWidth; it
// indicates a misconfigured builder, not bad input.
func (m *MutableDecimalArray) Append(v int128.Int128) error {
	minValue, maxValue := DecimalRange(m.precision)
	if v.Greater(maxValue) || v.Less(minValue) {
		return fmt.Errorf("%w: value %s is not compatible with %s",
			errs.ErrOutOfRange, v, m.DataType())
	}

	encoded := v.Bytes()
	if m.inner.Size() != len(encoded) {
		return fmt.Errorf("%w: encoded %d bytes, delegate slot width is %d",
			errs.ErrInvalidWidth, len(encoded), m.inner.Size())
	}

	return m.inner.Append(encoded[:])
}

// AppendInt64 validates and appends a value that fits in 64 bits.
func (m *MutableDecimalArray) AppendInt64(v int64) error {
	return m.Append(int128.FromInt64(v))
}

// AppendNull appends one null slot. Null has no value domain, so no
// validation applies.
func (m *MutableDecimalArray) AppendNull() {
	m.inner.AppendNull()
}

// ShrinkToFit releases unused reserved capacity. Length and content are
// unchanged.
func (m *MutableDecimalArray) ShrinkToFit() {
	m.inner.ShrinkToFit()
}

// Finish snapshots the builder into an immutable DecimalArray.
//
// The delegate's buffer is handed over without copying. The builder remains
// usable; calling Finish again yields an independent snapshot of the state at
// that point.
func (m *MutableDecimalArray) Finish() *DecimalArray {
	return NewDecimal(m.precision, m.scale, m.inner.Finish())
}
