// Package array implements the columnar array types of columna: immutable,
// structurally shared arrays of optional values and their growable builders.
//
// Two concrete kinds are provided:
//
//   - FixedSizeBinaryArray: opaque fixed-width byte slots. It owns the byte
//     buffer and validity bitmap, and serves as the storage delegate for
//     typed arrays.
//   - DecimalArray: 128-bit signed decimals with precision and scale, stored
//     as 16-byte little-endian slots inside a FixedSizeBinaryArray.
//
// Immutable arrays are produced by their mutable builder counterparts
// (MutableFixedSizeBinaryArray, MutableDecimalArray) and never change after
// construction. Slicing and copying an array is O(1) and shares the backing
// buffer; concurrent reads of shared arrays need no synchronization.
// Builders are single-owner and not safe for concurrent use.
package array

import (
	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/types"
)

// Array is the type-erased contract shared by every columnar array kind.
//
// It exposes the minimal operation set heterogeneous consumers need: length,
// data type, validity, and O(1) structural-sharing transforms. Concrete types
// additionally expose the same transforms with concrete return types; use
// those when the array kind is statically known.
type Array interface {
	// Len returns the number of logical elements.
	Len() int
	// DataType returns the array's data-type descriptor.
	DataType() types.DataType
	// Validity returns the validity bitmap, or nil when no slot is null.
	Validity() *bitmap.Bitmap
	// NullCount returns the number of null slots.
	NullCount() int

	// sliceArray and friends keep erased dispatch inside this package; every
	// concrete kind implements them by delegating to its typed counterpart.
	sliceArray(offset, length int) Array
	sliceArrayUnchecked(offset, length int) Array
	withValidityArray(validity *bitmap.Bitmap) Array
}

// Slice returns an O(1) view of a over [offset, offset+length), preserving
// the concrete kind behind the returned handle.
// It panics if offset+length > a.Len().
func Slice(a Array, offset, length int) Array {
	return a.sliceArray(offset, length)
}

// SliceUnchecked is Slice without bounds checking.
// The caller must ensure offset+length <= a.Len().
func SliceUnchecked(a Array, offset, length int) Array {
	return a.sliceArrayUnchecked(offset, length)
}

// WithValidity returns a view of a with its validity bitmap replaced.
// A nil validity marks every slot valid. It panics if the bitmap length
// differs from a.Len().
func WithValidity(a Array, validity *bitmap.Bitmap) Array {
	return a.withValidityArray(validity)
}

// IsNull reports whether slot i of a is null.
func IsNull(a Array, i int) bool {
	v := a.Validity()

	return v != nil && !v.Get(i)
}

// IsValid reports whether slot i of a holds a value.
func IsValid(a Array, i int) bool {
	return !IsNull(a, i)
}
