package indicator

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

/*
boll implements the bollinger indicator:

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp

Bollinger Bands Technical indicator guide:
- https://www.fidelity.com/learning-center/trading-investing/technical-analysis/technical-indicator-guide/bollinger-bands
*/
type BOLLConfig struct {
	Window int `json:"window"`

	// times of Std, generally it's 2
	K float64 `json:"k"`

	Source       string `json:"source,omitempty"`
	MiddleColumn string `json:"middle,omitempty"`
	UpperColumn  string `json:"upper,omitempty"`
	LowerColumn  string `json:"lower,omitempty"`
}

func DefaultBOLLConfig() BOLLConfig {
	return BOLLConfig{Window: 20, K: 2.0}
}

// Validate reports every invalid parameter at once.
func (c BOLLConfig) Validate() (err error) {
	if c.Window < 2 {
		// the sample standard deviation needs at least two observations
		err = multierr.Append(err, errors.Wrapf(ErrInvalidParameter, "BOLL window must be at least 2, got %d", c.Window))
	}
	err = multierr.Append(err, validateMultiplier("BOLL k", c.K))
	return err
}

func (c BOLLConfig) columns() (middle, upper, lower string) {
	opts := ColumnOptions{Output: c.MiddleColumn}
	middle = opts.output("BB%d Middle", c.Window)
	opts = ColumnOptions{Output: c.UpperColumn}
	upper = opts.output("BB%d Upper", c.Window)
	opts = ColumnOptions{Output: c.LowerColumn}
	lower = opts.output("BB%d Lower", c.Window)
	return middle, upper, lower
}

// BOLL appends the middle, upper and lower bands. The middle band is MA(Window),
// the bands are K sample standard deviations away from it.
func BOLL(table *types.Table, c BOLLConfig) (*types.Table, error) {
	if err := c.Validate(); err != nil {
		return table, err
	}

	source, err := sourceColumn(table, ColumnOptions{Source: c.Source}.source())
	if err != nil {
		return table, err
	}

	sma := calculateMA(source, c.Window)
	std := floats.RollingApply(source, c.Window, func(win floats.Slice) float64 {
		return stat.StdDev(win, nil)
	})

	upBand := floats.Fill(len(source), floats.Undefined)
	downBand := floats.Fill(len(source), floats.Undefined)
	for i := range source {
		if floats.IsUndefined(sma[i]) || floats.IsUndefined(std[i]) {
			continue
		}

		var band = c.K * std[i]
		upBand[i] = sma[i] + band
		downBand[i] = sma[i] - band
	}

	middle, upper, lower := c.columns()
	return table, setColumns(table,
		[]string{middle, upper, lower},
		[]floats.Slice{sma, upBand, downBand})
}

func (c *BOLLConfig) Apply(table *types.Table) (*types.Table, error) {
	return BOLL(table, *c)
}
