package types

import (
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/seriesta/pkg/datatype/floats"
)

var (
	ErrMissingColumn   = errors.New("missing column")
	ErrLengthMismatch  = errors.New("column length does not match the table index")
	ErrUnorderedIndex  = errors.New("table index must be strictly increasing")
	ErrRowOutOfBounds  = errors.New("row out of bounds")
	ErrEmptyColumnName = errors.New("empty column name")
)

// Table is a set of named float64 columns aligned to a strictly increasing
// time index. Undefined cells hold floats.Undefined (NaN).
//
// Indicator functions take a *Table, append columns and return the same
// pointer. A Table is not safe for concurrent use.
type Table struct {
	index   []time.Time
	columns map[string]floats.Slice
	order   []string
}

// NewTable creates an empty table over the given index.
func NewTable(index []time.Time) (*Table, error) {
	for i := 1; i < len(index); i++ {
		if !index[i].After(index[i-1]) {
			return nil, errors.Wrapf(ErrUnorderedIndex, "row %d (%s) is not after row %d (%s)",
				i, index[i].Format(time.RFC3339), i-1, index[i-1].Format(time.RFC3339))
		}
	}

	idx := make([]time.Time, len(index))
	copy(idx, index)
	return &Table{
		index:   idx,
		columns: make(map[string]floats.Slice),
	}, nil
}

func (t *Table) Len() int {
	return len(t.index)
}

func (t *Table) Index() []time.Time {
	return t.index
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the values of the named column. The returned slice is shared
// with the table.
func (t *Table) Column(name string) (floats.Slice, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, errors.Wrapf(ErrMissingColumn, "column %q", name)
	}
	return values, nil
}

// SetColumn appends a column, or replaces the values of an existing column
// while keeping its position.
func (t *Table) SetColumn(name string, values floats.Slice) error {
	if name == "" {
		return ErrEmptyColumnName
	}

	if len(values) != len(t.index) {
		return errors.Wrapf(ErrLengthMismatch, "column %q has %d values, index has %d rows", name, len(values), len(t.index))
	}

	if _, ok := t.columns[name]; !ok {
		t.order = append(t.order, name)
	}

	t.columns[name] = values
	return nil
}

// Value returns a single cell.
func (t *Table) Value(name string, row int) (float64, error) {
	values, err := t.Column(name)
	if err != nil {
		return floats.Undefined, err
	}

	if row < 0 || row >= len(values) {
		return floats.Undefined, errors.Wrapf(ErrRowOutOfBounds, "row %d of %d", row, len(values))
	}

	return values[row], nil
}

// Tail returns a copy of the last n rows.
func (t *Table) Tail(n int) *Table {
	if n < 0 || n > t.Len() {
		n = t.Len()
	}

	start := t.Len() - n
	out := &Table{
		index:   make([]time.Time, n),
		columns: make(map[string]floats.Slice, len(t.columns)),
		order:   t.Columns(),
	}
	copy(out.index, t.index[start:])
	for name, values := range t.columns {
		out.columns[name] = values.Tail(n)
	}
	return out
}
