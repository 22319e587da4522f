package array

import (
	"iter"

	"github.com/arloliu/columna/int128"
)

// DecimalValuesIter iterates the raw, non-null-aware values of a DecimalArray
// from both ends.
//
// The iterator tracks a half-open index window [index, end): Next consumes
// from the front, NextBack from the back, and the two ends never cross. Len
// reports the exact remaining count, so callers may pre-size collection
// targets without a second pass.
type DecimalValuesIter struct {
	array *DecimalArray
	index int
	end   int
}

// ValuesIter returns a raw value iterator over the array.
//
// Null slots yield their physically stored (zero-filled) values; use All for
// null-aware iteration.
func (a *DecimalArray) ValuesIter() *DecimalValuesIter {
	return &DecimalValuesIter{array: a, index: 0, end: a.Len()}
}

// Next yields the next value from the front, or ok == false when the
// iterator is exhausted.
func (it *DecimalValuesIter) Next() (v int128.Int128, ok bool) {
	if it.index == it.end {
		return int128.Int128{}, false
	}
	old := it.index
	it.index++

	return it.array.ValueUnchecked(old), true
}

// NextBack yields the next value from the back, or ok == false when the
// iterator is exhausted.
func (it *DecimalValuesIter) NextBack() (v int128.Int128, ok bool) {
	if it.index == it.end {
		return int128.Int128{}, false
	}
	it.end--

	return it.array.ValueUnchecked(it.end), true
}

// Len returns the exact number of values remaining.
func (it *DecimalValuesIter) Len() int {
	return it.end - it.index
}

// NullableInt128 is one null-aware element of a DecimalArray: a value and the
// validity flag telling whether the slot actually holds it.
type NullableInt128 struct {
	Val   int128.Int128
	Valid bool
}

// Values returns an iterator over the raw, non-null-aware values in order.
//
// It is meant for callers that have independently ensured no nulls are
// present, or that pair it with the validity bitmap themselves.
func (a *DecimalArray) Values() iter.Seq[int128.Int128] {
	return func(yield func(int128.Int128) bool) {
		it := a.ValuesIter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a null-aware iterator over (index, element) pairs.
//
// Where the validity bitmap marks a slot null the element carries
// Valid == false and its Val must be ignored. An absent bitmap means every
// slot is valid.
//
// Example:
//
//	for i, e := range arr.All() {
//	    if e.Valid {
//	        fmt.Printf("[%d] %s\n", i, e.Val)
//	    }
//	}
func (a *DecimalArray) All() iter.Seq2[int, NullableInt128] {
	validity := a.Validity()

	return func(yield func(int, NullableInt128) bool) {
		length := a.Len()
		for i := 0; i < length; i++ {
			e := NullableInt128{Val: a.ValueUnchecked(i), Valid: true}
			if validity != nil && !validity.GetUnchecked(i) {
				e = NullableInt128{}
			}
			if !yield(i, e) {
				return
			}
		}
	}
}
