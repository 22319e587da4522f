package array

import (
	"fmt"
	"math/big"

	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/int128"
	"github.com/arloliu/columna/types"
)

// MaxDecimalPrecision is the largest precision a decimal column may declare.
// At precision 38 the value range widens to the full 128-bit signed range.
const MaxDecimalPrecision = 38

// maxDecimalForPrecision[p-1] and minDecimalForPrecision[p-1] bound the
// unscaled values a Decimal(p, s) column may hold: ±(10^p - 1), except at
// precision 38 where the bounds are the full Int128 range.
var (
	maxDecimalForPrecision [MaxDecimalPrecision]int128.Int128
	minDecimalForPrecision [MaxDecimalPrecision]int128.Int128
)

func init() {
	bound := new(big.Int)
	ten := big.NewInt(10)
	nine := big.NewInt(9)
	for p := 0; p < MaxDecimalPrecision-1; p++ {
		bound.Mul(bound, ten).Add(bound, nine) // 10^(p+1) - 1
		maxDecimalForPrecision[p] = int128.FromBig(bound)
		minDecimalForPrecision[p] = int128.FromBig(new(big.Int).Neg(bound))
	}
	maxDecimalForPrecision[MaxDecimalPrecision-1] = int128.Max
	minDecimalForPrecision[MaxDecimalPrecision-1] = int128.Min
}

// DecimalRange returns the inclusive [min, max] range of unscaled values a
// column of the given precision may hold. It panics if precision is outside
// [1, 38].
func DecimalRange(precision int) (minValue, maxValue int128.Int128) {
	if precision < 1 || precision > MaxDecimalPrecision {
		panic(fmt.Sprintf("array: decimal precision %d outside [1, %d]", precision, MaxDecimalPrecision))
	}

	return minDecimalForPrecision[precision-1], maxDecimalForPrecision[precision-1]
}

// DecimalArray is an immutable array of optional 128-bit decimal values.
//
// Each element is an int128.Int128 interpreted as value × 10^-Scale(), stored
// as a 16-byte little-endian slot inside a FixedSizeBinaryArray delegate.
// Slicing and copying are O(1) and share the delegate's buffer and bitmap.
//
// DecimalArray trusts its producer: values are range-checked against the
// precision when appended through MutableDecimalArray, never re-validated on
// read.
type DecimalArray struct {
	dataType  types.DataType
	precision int
	scale     int
	data      *FixedSizeBinaryArray
}

var _ Array = (*DecimalArray)(nil)

// NewDecimal creates a DecimalArray over a ready-made delegate.
//
// The delegate's slot width must be exactly 16 bytes and the precision must
// lie in [1, 38]; violations are construction-site bugs and panic.
func NewDecimal(precision, scale int, data *FixedSizeBinaryArray) *DecimalArray {
	if precision < 1 || precision > MaxDecimalPrecision {
		panic(fmt.Sprintf("array: decimal precision %d outside [1, %d]", precision, MaxDecimalPrecision))
	}
	if data.Size() != int128.ByteWidth {
		panic(fmt.Sprintf("array: decimal delegate slot width %d, want %d", data.Size(), int128.ByteWidth))
	}

	return &DecimalArray{
		dataType:  types.Decimal(precision, scale),
		precision: precision,
		scale:     scale,
		data:      data,
	}
}

// NewEmptyDecimal creates an empty DecimalArray.
func NewEmptyDecimal(precision, scale int) *DecimalArray {
	return NewDecimal(precision, scale, NewEmptyFixedSizeBinary(types.FixedSizeBinary(int128.ByteWidth)))
}

// NewNullDecimal creates a DecimalArray of the given length whose every slot
// is null.
func NewNullDecimal(precision, scale, length int) *DecimalArray {
	return NewDecimal(precision, scale, NewNullFixedSizeBinary(types.FixedSizeBinary(int128.ByteWidth), length))
}

// Len returns the number of logical elements.
func (a *DecimalArray) Len() int {
	return a.data.Len()
}

// DataType returns the Decimal(precision, scale) descriptor.
func (a *DecimalArray) DataType() types.DataType {
	return a.dataType
}

// Validity returns the validity bitmap, or nil when no slot is null.
func (a *DecimalArray) Validity() *bitmap.Bitmap {
	return a.data.Validity()
}

// NullCount returns the number of null slots.
func (a *DecimalArray) NullCount() int {
	return a.data.NullCount()
}

// Precision returns the column's precision.
func (a *DecimalArray) Precision() int {
	return a.precision
}

// Scale returns the column's scale.
func (a *DecimalArray) Scale() int {
	return a.scale
}

// Value returns the unscaled value at index i. It panics if i is out of
// bounds.
//
// Value does not consult the validity bitmap: for a null slot it decodes the
// physically stored bytes, which builders leave zero-filled. Check validity
// separately when nulls matter.
func (a *DecimalArray) Value(i int) int128.Int128 {
	if i < 0 || i >= a.Len() {
		panic("array: DecimalArray index out of bounds")
	}

	return int128.FromBytes(a.data.ValueUnchecked(i))
}

// ValueUnchecked is Value without bounds checking.
// The caller must ensure 0 <= i < Len().
func (a *DecimalArray) ValueUnchecked(i int) int128.Int128 {
	return int128.FromBytes(a.data.ValueUnchecked(i))
}

// Slice returns an O(1) view over elements [offset, offset+length), sharing
// the delegate's buffer and bitmap. It panics if offset+length > Len().
func (a *DecimalArray) Slice(offset, length int) *DecimalArray {
	if offset < 0 || length < 0 || offset+length > a.Len() {
		panic("array: slice bounds exceed array length")
	}

	return a.SliceUnchecked(offset, length)
}

// SliceUnchecked is Slice without bounds checking.
// The caller must ensure offset+length <= Len().
func (a *DecimalArray) SliceUnchecked(offset, length int) *DecimalArray {
	return &DecimalArray{
		dataType:  a.dataType,
		precision: a.precision,
		scale:     a.scale,
		data:      a.data.SliceUnchecked(offset, length),
	}
}

// WithValidity returns a view of the array with its validity bitmap replaced.
// The byte buffer is shared. A nil validity marks every slot valid.
// It panics if the bitmap length differs from Len().
func (a *DecimalArray) WithValidity(validity *bitmap.Bitmap) *DecimalArray {
	return &DecimalArray{
		dataType:  a.dataType,
		precision: a.precision,
		scale:     a.scale,
		data:      a.data.WithValidity(validity),
	}
}

// Data returns the fixed-size-binary delegate holding the raw slots.
func (a *DecimalArray) Data() *FixedSizeBinaryArray {
	return a.data
}

func (a *DecimalArray) sliceArray(offset, length int) Array {
	return a.Slice(offset, length)
}

func (a *DecimalArray) sliceArrayUnchecked(offset, length int) Array {
	return a.SliceUnchecked(offset, length)
}

func (a *DecimalArray) withValidityArray(validity *bitmap.Bitmap) Array {
	return a.WithValidity(validity)
}
