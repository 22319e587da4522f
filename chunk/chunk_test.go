package chunk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/columna/array"
	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/int128"
	"github.com/arloliu/columna/internal/hash"
	"github.com/arloliu/columna/types"
)

func buildDecimal(t *testing.T, values []int64, nulls []bool) *array.DecimalArray {
	t.Helper()

	m := array.NewMutableDecimal(len(values), 18, 4)
	for i, v := range values {
		if nulls != nil && nulls[i] {
			m.AppendNull()
		} else {
			require.NoError(t, m.AppendInt64(v))
		}
	}

	return m.Finish()
}

func requireDecimalEqual(t *testing.T, want, got *array.DecimalArray) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.DataType(), got.DataType())
	require.Equal(t, want.NullCount(), got.NullCount())
	for i := 0; i < want.Len(); i++ {
		require.Equal(t, array.IsValid(want, i), array.IsValid(got, i), "validity at %d", i)
		if array.IsValid(want, i) {
			require.Equal(t, want.Value(i), got.Value(i), "value at %d", i)
		}
	}
}

// ==============================================================================
// Round-trip tests
// ==============================================================================

func TestChunk_RoundTripDecimal(t *testing.T) {
	a := buildDecimal(t, []int64{1000, 0, 100, -250, 999}, []bool{false, true, false, false, true})

	for _, compression := range []types.CompressionType{
		types.CompressionNone,
		types.CompressionZstd,
		types.CompressionS2,
		types.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := Encode(a, WithCompression(compression))
			require.NoError(t, err)

			got, err := DecodeDecimal(data)
			require.NoError(t, err)
			requireDecimalEqual(t, a, got)
		})
	}
}

func TestChunk_RoundTripNoNulls(t *testing.T) {
	a := buildDecimal(t, []int64{1, 2, 3}, nil)

	data, err := Encode(a)
	require.NoError(t, err)

	got, err := DecodeDecimal(data)
	require.NoError(t, err)
	require.Nil(t, got.Validity(), "no-null column decodes without a bitmap")
	requireDecimalEqual(t, a, got)
}

func TestChunk_RoundTripEmpty(t *testing.T) {
	a := array.NewEmptyDecimal(10, 2)

	data, err := Encode(a)
	require.NoError(t, err)

	got, err := DecodeDecimal(data)
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
	require.Equal(t, types.Decimal(10, 2), got.DataType())
}

func TestChunk_RoundTripAllNull(t *testing.T) {
	a := array.NewNullDecimal(10, 2, 7)

	data, err := Encode(a, WithCompression(types.CompressionS2))
	require.NoError(t, err)

	got, err := DecodeDecimal(data)
	require.NoError(t, err)
	require.Equal(t, 7, got.Len())
	require.Equal(t, 7, got.NullCount())
}

func TestChunk_RoundTripFixedSizeBinary(t *testing.T) {
	a := array.NewFixedSizeBinary(types.FixedSizeBinary(4), []byte{1, 2, 3, 4, 5, 6, 7, 8}, nil)

	data, err := Encode(a, WithCompression(types.CompressionLZ4))
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	fsb, ok := got.(*array.FixedSizeBinaryArray)
	require.True(t, ok)
	require.Equal(t, 2, fsb.Len())
	require.Equal(t, []byte{5, 6, 7, 8}, fsb.Value(1))
}

func TestChunk_RoundTripBigEndianHeader(t *testing.T) {
	a := buildDecimal(t, []int64{42, -42}, nil)

	data, err := Encode(a, WithBigEndian())
	require.NoError(t, err)

	got, err := DecodeDecimal(data)
	require.NoError(t, err)
	requireDecimalEqual(t, a, got)
}

func TestChunk_RoundTripSlicedColumn(t *testing.T) {
	a := buildDecimal(t, []int64{1, 2, 3, 4, 5}, []bool{false, false, true, false, false})
	s := a.Slice(1, 3)

	data, err := Encode(s)
	require.NoError(t, err)

	got, err := DecodeDecimal(data)
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	require.Equal(t, int128.FromInt64(2), got.Value(0))
	require.Equal(t, 1, got.NullCount())
}

func TestChunk_DecodedArrayOwnsStorage(t *testing.T) {
	a := buildDecimal(t, []int64{7, 8}, nil)

	data, err := Encode(a)
	require.NoError(t, err)

	got, err := DecodeDecimal(data)
	require.NoError(t, err)

	// Corrupting the chunk afterwards must not reach into the decoded array.
	for i := range data {
		data[i] = 0xAA
	}
	require.Equal(t, int128.FromInt64(7), got.Value(0))
	require.Equal(t, int128.FromInt64(8), got.Value(1))
}

// ==============================================================================
// Failure-path tests
// ==============================================================================

func TestChunk_EncodeRejectsUnsupportedArray(t *testing.T) {
	_, err := Encode(unknownArray{})
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

// unknownArray is a stand-in array kind the chunk codec does not know.
type unknownArray struct{ array.Array }

func (unknownArray) Len() int                 { return 0 }
func (unknownArray) DataType() types.DataType { return types.DataType{} }
func (unknownArray) NullCount() int           { return 0 }

func TestChunk_DecodeRejectsBadMagic(t *testing.T) {
	a := buildDecimal(t, []int64{1}, nil)
	data, err := Encode(a)
	require.NoError(t, err)

	data[0] = 0x00
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidChunk)
}

func TestChunk_DecodeRejectsBadVersion(t *testing.T) {
	a := buildDecimal(t, []int64{1}, nil)
	data, err := Encode(a)
	require.NoError(t, err)

	data[2] = 0x7F
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidChunk)
}

func TestChunk_DecodeDetectsCorruption(t *testing.T) {
	a := buildDecimal(t, []int64{1000, 2000, 3000}, nil)
	data, err := Encode(a)
	require.NoError(t, err)

	// Flip one payload byte; the checksum must catch it.
	data[len(data)-10] ^= 0xFF
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestChunk_DecodeRejectsTruncation(t *testing.T) {
	a := buildDecimal(t, []int64{1, 2, 3}, []bool{false, true, false})
	data, err := Encode(a)
	require.NoError(t, err)

	for _, cut := range []int{1, 5, 9, len(data) / 2, len(data) - 1} {
		_, err := Decode(data[:cut])
		require.Error(t, err, "truncated at %d bytes", cut)
	}
}

func TestChunk_DecodeRejectsLengthOverflow(t *testing.T) {
	// Hand-built chunk whose header records 1<<60 elements over an empty
	// payload; a multiplying consistency check would overflow and accept it.
	data := []byte{magicByte0, magicByte1, formatVersion, byte(types.CompressionNone), byte(types.KindDecimal)}
	data = binary.LittleEndian.AppendUint16(data, 16) // slot width
	data = append(data, 18, 4)                        // precision, scale
	data = binary.AppendUvarint(data, 1<<60)          // element count
	data = binary.AppendUvarint(data, 0)              // null count
	data = binary.AppendUvarint(data, 0)              // payload length
	data = binary.LittleEndian.AppendUint64(data, hash.Sum64(nil))

	_, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidChunk)
}

func TestChunk_EncodeRejectsHeaderOverflow(t *testing.T) {
	t.Run("scale beyond one byte", func(t *testing.T) {
		m := array.NewMutableDecimal(1, 10, 300)
		require.NoError(t, m.AppendInt64(1))

		_, err := Encode(m.Finish())
		require.ErrorIs(t, err, errs.ErrInvalidChunk)
	})

	t.Run("negative scale", func(t *testing.T) {
		m := array.NewMutableDecimal(1, 10, -2)
		require.NoError(t, m.AppendInt64(1))

		_, err := Encode(m.Finish())
		require.ErrorIs(t, err, errs.ErrInvalidChunk)
	})

	t.Run("width beyond two bytes", func(t *testing.T) {
		a := array.NewFixedSizeBinary(types.FixedSizeBinary(1<<16), nil, nil)

		_, err := Encode(a)
		require.ErrorIs(t, err, errs.ErrInvalidWidth)
	})
}

func TestChunk_DecodeRejectsEmptyInput(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrInvalidChunk)
}

func TestChunk_DecodeDecimalRejectsOtherKinds(t *testing.T) {
	a := array.NewFixedSizeBinary(types.FixedSizeBinary(4), []byte{1, 2, 3, 4}, nil)
	data, err := Encode(a)
	require.NoError(t, err)

	_, err = DecodeDecimal(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestChunk_EncodeRejectsBadCompressionOption(t *testing.T) {
	a := buildDecimal(t, []int64{1}, nil)
	_, err := Encode(a, WithCompression(types.CompressionType(0xE)))
	require.Error(t, err)
}
