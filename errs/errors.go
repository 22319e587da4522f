// Package errs defines the sentinel errors returned by columna packages.
//
// Callers match them with errors.Is:
//
//	if err := builder.Append(v); errors.Is(err, errs.ErrOutOfRange) {
//	    // value does not fit the column's precision
//	}
//
// Errors are wrapped at the call site with fmt.Errorf("%w: ...") to attach
// context such as the offending value and the column's data type.
package errs

import "errors"

var (
	// ErrOutOfRange indicates a decimal value outside the inclusive range
	// allowed by the column's precision.
	ErrOutOfRange = errors.New("value out of range for precision")

	// ErrInvalidWidth indicates a byte slot whose length does not match the
	// builder's configured fixed width. It signals a misconfigured builder,
	// not bad input data.
	ErrInvalidWidth = errors.New("invalid fixed slot width")

	// ErrInvalidPrecision indicates a precision outside [1, 38].
	ErrInvalidPrecision = errors.New("invalid decimal precision")

	// ErrInvalidChunk indicates a malformed or truncated chunk payload.
	ErrInvalidChunk = errors.New("invalid chunk data")

	// ErrChecksumMismatch indicates chunk payload corruption detected by the
	// xxHash64 checksum.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	// ErrUnsupportedCompression indicates a compression type this build does
	// not provide a codec for.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrUnsupportedType indicates a data type the chunk codec cannot encode.
	ErrUnsupportedType = errors.New("unsupported data type")

	// ErrLengthMismatch indicates columns of unequal length supplied to a
	// batch, or a validity bitmap whose length differs from its array.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrColumnNotFound indicates a column name absent from a batch schema.
	ErrColumnNotFound = errors.New("column not found")

	// ErrSchemaMismatch indicates a column whose data type differs from its
	// schema field.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
