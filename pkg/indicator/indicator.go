package indicator

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

// DefaultPriceColumn is the column indicators read when no source is given.
const DefaultPriceColumn = "Adj Close"

var ErrInvalidParameter = errors.New("invalid indicator parameter")

// ColumnOptions names the column an indicator reads and the column it writes.
// An empty Source reads DefaultPriceColumn, an empty Output uses the
// indicator's derived name, e.g. "MA20".
type ColumnOptions struct {
	Source string `json:"source,omitempty"`
	Output string `json:"output,omitempty"`
}

func (o ColumnOptions) source() string {
	if o.Source == "" {
		return DefaultPriceColumn
	}
	return o.Source
}

func (o ColumnOptions) output(format string, args ...interface{}) string {
	if o.Output == "" {
		return fmt.Sprintf(format, args...)
	}
	return o.Output
}

// Applier is an indicator configuration that can be run against a table.
type Applier interface {
	Apply(table *types.Table) (*types.Table, error)
}

func validatePeriod(name string, period int) error {
	if period <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s must be a positive integer, got %d", name, period)
	}
	return nil
}

func validateMultiplier(name string, k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s must be a positive finite number, got %v", name, k)
	}
	return nil
}

func sourceColumn(table *types.Table, name string) (floats.Slice, error) {
	values, err := table.Column(name)
	if err != nil {
		return nil, errors.Wrap(err, "source column")
	}
	return values, nil
}

// setColumns writes all columns or none.
func setColumns(table *types.Table, names []string, values []floats.Slice) error {
	for i, name := range names {
		if name == "" {
			return errors.Wrapf(ErrInvalidParameter, "output column %d has no name", i)
		}
		if len(values[i]) != table.Len() {
			return errors.Wrapf(types.ErrLengthMismatch, "column %q", name)
		}
	}

	for i, name := range names {
		if err := table.SetColumn(name, values[i]); err != nil {
			return err
		}
	}
	return nil
}
