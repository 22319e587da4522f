package array

import (
	"fmt"

	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/types"
)

// FixedSizeBinaryArray is an immutable array whose every slot holds exactly
// Size() opaque bytes. It owns the canonical byte buffer and validity bitmap
// for the typed arrays built on top of it.
//
// Slicing and copying share the backing buffer; the bytes are never copied.
type FixedSizeBinaryArray struct {
	dataType types.DataType
	size     int
	data     []byte // len(data) == Len() * size
	validity *bitmap.Bitmap
}

var _ Array = (*FixedSizeBinaryArray)(nil)

// NewFixedSizeBinary creates a FixedSizeBinaryArray over the given byte
// buffer and validity bitmap.
//
// The buffer length must be a multiple of the data type's byte width, and the
// bitmap length (when present) must equal the element count. Violations are
// construction-site bugs and panic.
func NewFixedSizeBinary(dataType types.DataType, data []byte, validity *bitmap.Bitmap) *FixedSizeBinaryArray {
	size := dataType.ByteWidth()
	if size <= 0 {
		panic(fmt.Sprintf("array: %s has no fixed byte width", dataType))
	}
	if len(data)%size != 0 {
		panic(fmt.Sprintf("array: buffer of %d bytes is not a multiple of slot width %d", len(data), size))
	}
	length := len(data) / size
	if validity != nil && validity.Len() != length {
		panic(fmt.Sprintf("array: validity length %d does not match array length %d", validity.Len(), length))
	}

	return &FixedSizeBinaryArray{dataType: dataType, size: size, data: data, validity: validity}
}

// NewEmptyFixedSizeBinary creates an empty FixedSizeBinaryArray of the given
// data type.
func NewEmptyFixedSizeBinary(dataType types.DataType) *FixedSizeBinaryArray {
	return NewFixedSizeBinary(dataType, nil, nil)
}

// NewNullFixedSizeBinary creates a FixedSizeBinaryArray of the given length
// whose every slot is null. Slot storage is zero-filled.
func NewNullFixedSizeBinary(dataType types.DataType, length int) *FixedSizeBinaryArray {
	return NewFixedSizeBinary(
		dataType,
		make([]byte, length*dataType.ByteWidth()),
		bitmap.NewAllClear(length),
	)
}

// Len returns the number of logical elements.
func (a *FixedSizeBinaryArray) Len() int {
	return len(a.data) / a.size
}

// Size returns the fixed slot width in bytes.
func (a *FixedSizeBinaryArray) Size() int {
	return a.size
}

// DataType returns the array's data-type descriptor.
func (a *FixedSizeBinaryArray) DataType() types.DataType {
	return a.dataType
}

// Validity returns the validity bitmap, or nil when no slot is null.
func (a *FixedSizeBinaryArray) Validity() *bitmap.Bitmap {
	return a.validity
}

// NullCount returns the number of null slots.
func (a *FixedSizeBinaryArray) NullCount() int {
	if a.validity == nil {
		return 0
	}

	return a.validity.ClearCount()
}

// Value returns the Size() bytes of slot i without copying. Callers must not
// modify the returned slice. It panics if i is out of bounds.
//
// Value does not consult the validity bitmap: for a null slot it returns the
// physically stored bytes.
func (a *FixedSizeBinaryArray) Value(i int) []byte {
	if i < 0 || i >= a.Len() {
		panic("array: FixedSizeBinaryArray index out of bounds")
	}

	return a.ValueUnchecked(i)
}

// ValueUnchecked is Value without bounds checking.
// The caller must ensure 0 <= i < Len().
func (a *FixedSizeBinaryArray) ValueUnchecked(i int) []byte {
	return a.data[i*a.size : (i+1)*a.size]
}

// Slice returns an O(1) view over elements [offset, offset+length), sharing
// the byte buffer and validity bitmap. It panics if offset+length > Len().
func (a *FixedSizeBinaryArray) Slice(offset, length int) *FixedSizeBinaryArray {
	if offset < 0 || length < 0 || offset+length > a.Len() {
		panic("array: slice bounds exceed array length")
	}

	return a.SliceUnchecked(offset, length)
}

// SliceUnchecked is Slice without bounds checking.
// The caller must ensure offset+length <= Len().
func (a *FixedSizeBinaryArray) SliceUnchecked(offset, length int) *FixedSizeBinaryArray {
	var validity *bitmap.Bitmap
	if a.validity != nil {
		validity = a.validity.SliceUnchecked(offset, length)
	}

	return &FixedSizeBinaryArray{
		dataType: a.dataType,
		size:     a.size,
		data:     a.data[offset*a.size : (offset+length)*a.size],
		validity: validity,
	}
}

// WithValidity returns a view of the array with its validity bitmap replaced.
// The byte buffer is shared. A nil validity marks every slot valid.
// It panics if the bitmap length differs from Len().
func (a *FixedSizeBinaryArray) WithValidity(validity *bitmap.Bitmap) *FixedSizeBinaryArray {
	if validity != nil && validity.Len() != a.Len() {
		panic(fmt.Sprintf("array: validity length %d does not match array length %d", validity.Len(), a.Len()))
	}

	return &FixedSizeBinaryArray{dataType: a.dataType, size: a.size, data: a.data, validity: validity}
}

func (a *FixedSizeBinaryArray) sliceArray(offset, length int) Array {
	return a.Slice(offset, length)
}

func (a *FixedSizeBinaryArray) sliceArrayUnchecked(offset, length int) Array {
	return a.SliceUnchecked(offset, length)
}

func (a *FixedSizeBinaryArray) withValidityArray(validity *bitmap.Bitmap) Array {
	return a.WithValidity(validity)
}

// ValueBytes returns the whole backing buffer without copying. Callers must
// not modify the returned slice.
func (a *FixedSizeBinaryArray) ValueBytes() []byte {
	return a.data
}
