// Package columna provides an immutable, structurally shared columnar
// in-memory data format centered on fixed-precision 128-bit decimal columns.
//
// A decimal column stores optional signed 128-bit values interpreted as
// value × 10^-scale, packed into 16-byte little-endian slots with a validity
// bitmap tracking nulls. Columns are built once through a mutable builder and
// then consumed as immutable arrays whose slices and copies are O(1) and
// never duplicate the underlying bytes.
//
// # Core Features
//
//   - 128-bit decimal values with precision/scale validation (1-38 digits)
//   - Zero-copy slicing and cloning through structural sharing
//   - Null-aware and raw bidirectional iteration
//   - Type-erased array contract for heterogeneous record batches
//   - Column chunk serialization with optional compression (Zstd, S2, LZ4)
//     and xxHash64 integrity checksums
//
// # Basic Usage
//
// Building and reading a decimal column:
//
//	import (
//	    "github.com/arloliu/columna"
//	    "github.com/arloliu/columna/int128"
//	)
//
//	builder := columna.NewDecimalBuilder(3, 10, 2)
//	_ = builder.AppendInt64(1000) // 10.00 at scale 2
//	builder.AppendNull()
//	_ = builder.AppendInt64(100) // 1.00 at scale 2
//
//	arr := builder.Finish()
//	for i, e := range arr.All() {
//	    if e.Valid {
//	        fmt.Printf("[%d] %s\n", i, e.Val)
//	    } else {
//	        fmt.Printf("[%d] null\n", i)
//	    }
//	}
//
// Serializing a column to a compressed chunk and back:
//
//	data, _ := columna.EncodeChunk(arr, chunk.WithCompression(types.CompressionZstd))
//	restored, _ := columna.DecodeDecimalChunk(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the array and
// chunk packages, simplifying the most common use cases. For fine-grained
// control, use the subpackages directly:
//
//   - array: array types, builders, and iterators
//   - int128: the signed 128-bit value type
//   - bitmap: validity bitmaps
//   - chunk: column chunk serialization
//   - table: heterogeneous record batches
//   - types: data-type descriptors
package columna

import (
	"github.com/arloliu/columna/array"
	"github.com/arloliu/columna/chunk"
)

// NewDecimalBuilder creates a builder for a Decimal(precision, scale) column
// with capacity for the given element count.
//
// It panics if precision is outside [1, 38].
func NewDecimalBuilder(capacity, precision, scale int) *array.MutableDecimalArray {
	return array.NewMutableDecimal(capacity, precision, scale)
}

// NewNullDecimalArray creates a decimal array of the given length whose every
// slot is null.
func NewNullDecimalArray(precision, scale, length int) *array.DecimalArray {
	return array.NewNullDecimal(precision, scale, length)
}

// EncodeChunk serializes a column into a self-describing chunk.
func EncodeChunk(a array.Array, opts ...chunk.Option) ([]byte, error) {
	return chunk.Encode(a, opts...)
}

// DecodeChunk restores the column serialized in a chunk.
func DecodeChunk(data []byte) (array.Array, error) {
	return chunk.Decode(data)
}

// DecodeDecimalChunk restores a decimal column chunk.
func DecodeDecimalChunk(data []byte) (*array.DecimalArray, error) {
	return chunk.DecodeDecimal(data)
}
