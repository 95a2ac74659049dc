package indicator

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

/*
stoch implements stochastic oscillator indicator

Stochastic Oscillator
- https://www.investopedia.com/terms/s/stochasticoscillator.asp
*/

// FlatWindow decides %K when the highest and the lowest value of the window are equal.
type FlatWindow int

const (
	// FlatWindowMidpoint sets %K to 50.
	FlatWindowMidpoint FlatWindow = iota

	// FlatWindowUndefined marks %K undefined.
	FlatWindowUndefined
)

const flatWindowMidpoint = 50.0

func (f FlatWindow) String() string {
	switch f {
	case FlatWindowMidpoint:
		return "midpoint"
	case FlatWindowUndefined:
		return "undefined"
	}
	return "unknown"
}

func (f FlatWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FlatWindow) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch strings.ToLower(s) {
	case "", "midpoint":
		*f = FlatWindowMidpoint
	case "undefined":
		*f = FlatWindowUndefined
	default:
		return errors.Wrapf(ErrInvalidParameter, "unknown flat window policy %q", s)
	}
	return nil
}

type STOCHConfig struct {
	KWindow int `json:"kWindow"`
	DWindow int `json:"dWindow"`

	FlatWindow FlatWindow `json:"flatWindow"`

	Source  string `json:"source,omitempty"`
	KColumn string `json:"k,omitempty"`
	DColumn string `json:"d,omitempty"`
}

func DefaultSTOCHConfig() STOCHConfig {
	return STOCHConfig{KWindow: 14, DWindow: 3}
}

func (c STOCHConfig) Validate() (err error) {
	err = multierr.Append(err, validatePeriod("STOCH k window", c.KWindow))
	err = multierr.Append(err, validatePeriod("STOCH d window", c.DWindow))
	if c.FlatWindow != FlatWindowMidpoint && c.FlatWindow != FlatWindowUndefined {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidParameter, "unknown flat window policy %d", c.FlatWindow))
	}

	source := ColumnOptions{Source: c.Source}.source()
	kColumn, dColumn := c.columns()
	if kColumn == dColumn {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidParameter, "%%K and %%D share the column name %q", kColumn))
	}
	if kColumn == source || dColumn == source {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidParameter, "STOCH output would overwrite the source column %q", source))
	}
	return err
}

func (c STOCHConfig) columns() (k, d string) {
	k = ColumnOptions{Output: c.KColumn}.output("%%K%d", c.KWindow)
	d = ColumnOptions{Output: c.DColumn}.output("%%D%d", c.DWindow)
	return k, d
}

// STOCH appends %K, the position of the source value inside the range of the
// last KWindow rows scaled to 0..100, and %D, the DWindow moving average of %K.
func STOCH(table *types.Table, c STOCHConfig) (*types.Table, error) {
	if err := c.Validate(); err != nil {
		return table, err
	}

	source, err := sourceColumn(table, ColumnOptions{Source: c.Source}.source())
	if err != nil {
		return table, err
	}

	kColumn, dColumn := c.columns()
	k := calculateK(source, c.KWindow, c.FlatWindow)
	if err := table.SetColumn(kColumn, k); err != nil {
		return table, err
	}

	// %D is the moving average of the %K column
	return MA(table, c.DWindow, ColumnOptions{Source: kColumn, Output: dColumn})
}

func calculateK(source floats.Slice, window int, flat FlatWindow) floats.Slice {
	lowest := floats.RollingMin(source, window)
	highest := floats.RollingMax(source, window)

	k := floats.Fill(len(source), floats.Undefined)
	for i, v := range source {
		if floats.IsUndefined(lowest[i]) || floats.IsUndefined(highest[i]) {
			continue
		}

		if highest[i] == lowest[i] {
			if flat == FlatWindowMidpoint {
				k[i] = flatWindowMidpoint
			}
			continue
		}

		k[i] = 100.0 * (v - lowest[i]) / (highest[i] - lowest[i])
	}

	return k
}

func (c *STOCHConfig) Apply(table *types.Table) (*types.Table, error) {
	return STOCH(table, *c)
}
