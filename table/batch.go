package table

import (
	"fmt"

	"github.com/arloliu/columna/array"
	"github.com/arloliu/columna/errs"
)

// Batch is an immutable record batch: one array per schema field, all of
// equal length.
type Batch struct {
	schema  *Schema
	columns []array.Array
	numRows int
}

// NewBatch creates a batch over the given columns.
//
// Column count and data types must match the schema (ErrSchemaMismatch) and
// every column must have the same length (ErrLengthMismatch).
func NewBatch(schema *Schema, columns []array.Array) (*Batch, error) {
	if len(columns) != schema.NumFields() {
		return nil, fmt.Errorf("%w: %d columns for %d schema fields",
			errs.ErrSchemaMismatch, len(columns), schema.NumFields())
	}

	numRows := 0
	for i, col := range columns {
		field := schema.Field(i)
		if !col.DataType().Equal(field.Type) {
			return nil, fmt.Errorf("%w: column %q is %s, schema declares %s",
				errs.ErrSchemaMismatch, field.Name, col.DataType(), field.Type)
		}
		if i == 0 {
			numRows = col.Len()
		} else if col.Len() != numRows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				errs.ErrLengthMismatch, field.Name, col.Len(), numRows)
		}
	}

	return &Batch{
		schema:  schema,
		columns: append([]array.Array(nil), columns...),
		numRows: numRows,
	}, nil
}

// Schema returns the batch's schema.
func (b *Batch) Schema() *Schema {
	return b.schema
}

// NumRows returns the number of rows.
func (b *Batch) NumRows() int {
	return b.numRows
}

// NumCols returns the number of columns.
func (b *Batch) NumCols() int {
	return len(b.columns)
}

// Column returns column i. It panics if i is out of bounds.
func (b *Batch) Column(i int) array.Array {
	return b.columns[i]
}

// ColumnByName returns the named column, or ErrColumnNotFound.
func (b *Batch) ColumnByName(name string) (array.Array, error) {
	i := b.schema.FieldIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return b.columns[i], nil
}

// Slice returns an O(1) view over rows [offset, offset+length): every column
// is sliced structurally, no buffer is copied. It panics if
// offset+length > NumRows().
func (b *Batch) Slice(offset, length int) *Batch {
	if offset < 0 || length < 0 || offset+length > b.numRows {
		panic("table: slice bounds exceed batch rows")
	}

	columns := make([]array.Array, len(b.columns))
	for i, col := range b.columns {
		columns[i] = array.SliceUnchecked(col, offset, length)
	}

	return &Batch{schema: b.schema, columns: columns, numRows: length}
}

// WithColumn returns a batch with the named column replaced. The new column
// must match the schema field's type and the batch's row count.
func (b *Batch) WithColumn(name string, col array.Array) (*Batch, error) {
	i := b.schema.FieldIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}
	field := b.schema.Field(i)
	if !col.DataType().Equal(field.Type) {
		return nil, fmt.Errorf("%w: column %q is %s, schema declares %s",
			errs.ErrSchemaMismatch, name, col.DataType(), field.Type)
	}
	if col.Len() != b.numRows {
		return nil, fmt.Errorf("%w: column %q has %d rows, batch has %d",
			errs.ErrLengthMismatch, name, col.Len(), b.numRows)
	}

	columns := append([]array.Array(nil), b.columns...)
	columns[i] = col

	return &Batch{schema: b.schema, columns: columns, numRows: b.numRows}, nil
}
