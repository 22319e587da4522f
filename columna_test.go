package columna

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/columna/chunk"
	"github.com/arloliu/columna/int128"
	"github.com/arloliu/columna/types"
)

func TestNewDecimalBuilder(t *testing.T) {
	builder := NewDecimalBuilder(3, 10, 2)
	require.NoError(t, builder.AppendInt64(1000))
	builder.AppendNull()
	require.NoError(t, builder.AppendInt64(100))

	arr := builder.Finish()
	require.Equal(t, 3, arr.Len())
	require.Equal(t, int128.FromInt64(1000), arr.Value(0))
	require.Equal(t, int128.FromInt64(100), arr.Value(2))
	require.Equal(t, 1, arr.NullCount())
}

func TestNewNullDecimalArray(t *testing.T) {
	arr := NewNullDecimalArray(10, 2, 5)
	require.Equal(t, 5, arr.Len())
	require.Equal(t, 5, arr.NullCount())
	require.Equal(t, types.Decimal(10, 2), arr.DataType())
}

func TestChunkWrappers(t *testing.T) {
	builder := NewDecimalBuilder(2, 18, 4)
	require.NoError(t, builder.AppendInt64(123456))
	builder.AppendNull()
	arr := builder.Finish()

	data, err := EncodeChunk(arr, chunk.WithCompression(types.CompressionS2))
	require.NoError(t, err)

	restored, err := DecodeDecimalChunk(data)
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())
	require.Equal(t, int128.FromInt64(123456), restored.Value(0))
	require.Equal(t, 1, restored.NullCount())

	erased, err := DecodeChunk(data)
	require.NoError(t, err)
	require.Equal(t, types.Decimal(18, 4), erased.DataType())
}
