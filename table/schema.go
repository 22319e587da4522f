// Package table provides the record batch: a heterogeneous, fixed-length
// collection of named columns consumed through the type-erased array.Array
// contract.
//
// Batches are immutable like the arrays they hold; slicing a batch slices
// every column in O(1) without copying buffers.
package table

import (
	"fmt"
	"strconv"

	"github.com/arloliu/columna/errs"
	"github.com/arloliu/columna/internal/hash"
	"github.com/arloliu/columna/types"
)

// Field names and types one column of a schema.
type Field struct {
	Name string
	Type types.DataType
}

// Schema describes the ordered column set of a batch.
//
// A schema is immutable after construction. Its fingerprint is an xxHash64
// digest over field names and types, giving a cheap equality probe when
// batches flow between producers and consumers.
type Schema struct {
	fields      []Field
	index       map[string]int
	fingerprint uint64
}

// NewSchema creates a schema from the given fields. Column names must be
// unique; duplicates report ErrSchemaMismatch.
func NewSchema(fields ...Field) (*Schema, error) {
	index := make(map[string]int, len(fields))
	parts := make([]string, 0, len(fields)*2)
	for i, f := range fields {
		if _, ok := index[f.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", errs.ErrSchemaMismatch, f.Name)
		}
		index[f.Name] = i
		parts = append(parts, f.Name, f.Type.String())
	}

	return &Schema{
		fields:      append([]Field(nil), fields...),
		index:       index,
		fingerprint: hash.Fingerprint(parts...),
	}, nil
}

// NumFields returns the number of fields.
func (s *Schema) NumFields() int {
	return len(s.fields)
}

// Field returns field i. It panics if i is out of bounds.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}

// FieldIndex returns the position of the named field, or -1 if absent.
func (s *Schema) FieldIndex(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}

	return -1
}

// Fingerprint returns the schema's xxHash64 digest.
func (s *Schema) Fingerprint() uint64 {
	return s.fingerprint
}

// Equal reports whether two schemas have identical fields in identical order.
func (s *Schema) Equal(other *Schema) bool {
	if s.fingerprint != other.fingerprint || len(s.fields) != len(other.fields) {
		return false
	}
	for i, f := range s.fields {
		if other.fields[i] != f {
			return false
		}
	}

	return true
}

func (s *Schema) String() string {
	out := "schema<"
	for i, f := range s.fields {
		if i > 0 {
			out += ", "
		}
		out += strconv.Quote(f.Name) + ": " + f.Type.String()
	}

	return out + ">"
}
