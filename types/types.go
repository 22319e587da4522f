// Package types defines the data-type descriptors and enumerations shared by
// the columna array, chunk, and table packages.
package types

import "fmt"

type (
	// Kind discriminates the physical layout of a column.
	Kind uint8

	// CompressionType identifies the compression codec applied to a chunk
	// payload.
	CompressionType uint8
)

const (
	// KindFixedSizeBinary represents opaque fixed-width byte slots.
	KindFixedSizeBinary Kind = 0x1
	// KindDecimal represents 128-bit signed decimals with precision and scale.
	KindDecimal Kind = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindFixedSizeBinary:
		return "FixedSizeBinary"
	case KindDecimal:
		return "Decimal"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// DataType describes the logical and physical type of a column.
//
// It is a small value type: compare with Equal, copy freely. The zero value is
// not a valid data type.
type DataType struct {
	kind      Kind
	byteWidth int
	precision int
	scale     int
}

// FixedSizeBinary returns the data type of a column whose every slot holds
// exactly width opaque bytes.
func FixedSizeBinary(width int) DataType {
	return DataType{kind: KindFixedSizeBinary, byteWidth: width}
}

// Decimal returns the data type of a 128-bit decimal column with the given
// precision (total digits) and scale (fractional digits).
//
// Decimal columns are physically stored as 16-byte fixed slots.
func Decimal(precision, scale int) DataType {
	return DataType{kind: KindDecimal, byteWidth: 16, precision: precision, scale: scale}
}

// Kind returns the physical layout discriminator.
func (t DataType) Kind() Kind { return t.kind }

// ByteWidth returns the fixed slot width in bytes.
func (t DataType) ByteWidth() int { return t.byteWidth }

// Precision returns the decimal precision. Zero for non-decimal types.
func (t DataType) Precision() int { return t.precision }

// Scale returns the decimal scale. Zero for non-decimal types.
func (t DataType) Scale() int { return t.scale }

// Equal reports whether two data types are identical.
func (t DataType) Equal(other DataType) bool { return t == other }

func (t DataType) String() string {
	switch t.kind {
	case KindFixedSizeBinary:
		return fmt.Sprintf("FixedSizeBinary(%d)", t.byteWidth)
	case KindDecimal:
		return fmt.Sprintf("Decimal(%d,%d)", t.precision, t.scale)
	default:
		return "Unknown"
	}
}
