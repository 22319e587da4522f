package array

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/columna/bitmap"
	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/types"
)

func TestFixedSizeBinary_New(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	a := NewFixedSizeBinary(types.FixedSizeBinary(2), data, nil)

	require.Equal(t, 3, a.Len())
	require.Equal(t, 2, a.Size())
	require.Nil(t, a.Validity())
	require.Equal(t, 0, a.NullCount())
	require.Equal(t, []byte{1, 2}, a.Value(0))
	require.Equal(t, []byte{5, 6}, a.Value(2))
}

func TestFixedSizeBinary_NewPanics(t *testing.T) {
	t.Run("buffer not multiple of width", func(t *testing.T) {
		require.Panics(t, func() {
			NewFixedSizeBinary(types.FixedSizeBinary(4), make([]byte, 6), nil)
		})
	})

	t.Run("validity length mismatch", func(t *testing.T) {
		require.Panics(t, func() {
			NewFixedSizeBinary(types.FixedSizeBinary(2), make([]byte, 6), bitmap.NewAllSet(2))
		})
	})
}

func TestFixedSizeBinary_NewEmpty(t *testing.T) {
	a := NewEmptyFixedSizeBinary(types.FixedSizeBinary(8))
	require.Equal(t, 0, a.Len())
	require.Equal(t, 8, a.Size())
	require.Equal(t, 0, a.NullCount())
}

func TestFixedSizeBinary_NewNull(t *testing.T) {
	a := NewNullFixedSizeBinary(types.FixedSizeBinary(4), 5)
	require.Equal(t, 5, a.Len())
	require.Equal(t, 5, a.NullCount())

	// Null slots still hold zero-filled storage.
	require.Equal(t, []byte{0, 0, 0, 0}, a.Value(3))
}

func TestFixedSizeBinary_ValuePanicsOutOfBounds(t *testing.T) {
	a := NewFixedSizeBinary(types.FixedSizeBinary(2), make([]byte, 4), nil)
	require.Panics(t, func() { a.Value(2) })
	require.Panics(t, func() { a.Value(-1) })
}

func TestFixedSizeBinary_ValueSharesBuffer(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	a := NewFixedSizeBinary(types.FixedSizeBinary(2), data, nil)

	v := a.Value(1)
	require.Equal(t, &data[2], &v[0], "Value must alias the backing buffer, not copy it")
}

func TestFixedSizeBinary_Slice(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	validity := bitmap.New([]byte{0b00001010}, 4) // null, valid, null, valid
	a := NewFixedSizeBinary(types.FixedSizeBinary(2), data, validity)

	s := a.Slice(1, 2)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []byte{3, 4}, s.Value(0))
	require.Equal(t, []byte{5, 6}, s.Value(1))
	require.True(t, s.Validity().Get(0))
	require.False(t, s.Validity().Get(1))
	require.Equal(t, 1, s.NullCount())

	// The slice aliases the original buffer.
	require.Equal(t, &data[2], &s.Value(0)[0])
}

func TestFixedSizeBinary_SlicePanicsOnBadBounds(t *testing.T) {
	a := NewFixedSizeBinary(types.FixedSizeBinary(2), make([]byte, 8), nil)
	require.Panics(t, func() { a.Slice(2, 3) })
	require.Panics(t, func() { a.Slice(-1, 1) })
	require.NotPanics(t, func() { a.Slice(4, 0) })
}

func TestFixedSizeBinary_WithValidity(t *testing.T) {
	a := NewFixedSizeBinary(types.FixedSizeBinary(2), make([]byte, 6), nil)

	b := a.WithValidity(bitmap.NewAllClear(3))
	require.Equal(t, 3, b.NullCount())
	require.Equal(t, 0, a.NullCount(), "original array is unchanged")

	c := b.WithValidity(nil)
	require.Equal(t, 0, c.NullCount())

	require.Panics(t, func() { a.WithValidity(bitmap.NewAllSet(4)) })
}

func TestFixedSizeBinary_ErasedDispatch(t *testing.T) {
	var a Array = NewFixedSizeBinary(types.FixedSizeBinary(2), []byte{1, 2, 3, 4, 5, 6}, nil)

	s := Slice(a, 1, 2)
	require.Equal(t, 2, s.Len())
	fsb, ok := s.(*FixedSizeBinaryArray)
	require.True(t, ok, "erased slice must preserve the concrete kind")
	require.Equal(t, []byte{3, 4}, fsb.Value(0))

	w := WithValidity(a, bitmap.NewAllClear(3))
	require.Equal(t, 3, w.NullCount())
}

func TestMutableFixedSizeBinary_AppendAndFinish(t *testing.T) {
	m := NewMutableFixedSizeBinary(2, 4)
	require.NoError(t, m.Append([]byte{1, 2}))
	require.NoError(t, m.Append([]byte{3, 4}))
	require.Equal(t, 2, m.Len())
	require.Nil(t, m.Validity(), "bitmap stays unmaterialized without nulls")

	a := m.Finish()
	require.Equal(t, 2, a.Len())
	require.Nil(t, a.Validity())
	require.Equal(t, []byte{1, 2}, a.Value(0))
	require.Equal(t, []byte{3, 4}, a.Value(1))
}

func TestMutableFixedSizeBinary_AppendWidthMismatch(t *testing.T) {
	m := NewMutableFixedSizeBinary(4, 4)

	err := m.Append([]byte{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidWidth)
	require.Equal(t, 0, m.Len(), "failed append must not change length")
}

func TestMutableFixedSizeBinary_AppendNull(t *testing.T) {
	m := NewMutableFixedSizeBinary(2, 4)
	require.NoError(t, m.Append([]byte{1, 2}))
	m.AppendNull()
	require.NoError(t, m.Append([]byte{3, 4}))

	require.Equal(t, 3, m.Len())
	require.NotNil(t, m.Validity())
	require.True(t, m.Validity().Get(0), "pre-null appends are backfilled as valid")
	require.False(t, m.Validity().Get(1))
	require.True(t, m.Validity().Get(2))

	a := m.Finish()
	require.Equal(t, 1, a.NullCount())
	require.Equal(t, []byte{0, 0}, a.Value(1), "null slot storage is zero-filled")
}

func TestMutableFixedSizeBinary_FinishSnapshotIsolation(t *testing.T) {
	m := NewMutableFixedSizeBinary(2, 4)
	require.NoError(t, m.Append([]byte{1, 2}))

	first := m.Finish()
	require.NoError(t, m.Append([]byte{3, 4}))
	second := m.Finish()

	require.Equal(t, 1, first.Len(), "earlier snapshot keeps its length")
	require.Equal(t, []byte{1, 2}, first.Value(0))
	require.Equal(t, 2, second.Len())
	require.Equal(t, []byte{3, 4}, second.Value(1))
}

func TestMutableFixedSizeBinary_WidePanicsAndShrink(t *testing.T) {
	require.Panics(t, func() { NewMutableFixedSizeBinary(0, 4) })

	// Slots wider than the zero-fill scratch buffer still append correctly.
	m := NewMutableFixedSizeBinary(40, 2)
	m.AppendNull()
	require.Equal(t, 1, m.Len())
	a := m.Finish()
	require.Equal(t, make([]byte, 40), a.Value(0))

	m.ShrinkToFit()
	require.Equal(t, 1, m.Len())
}
