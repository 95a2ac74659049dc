package indicator

import (
	"go.uber.org/multierr"

	"github.com/c9s/seriesta/pkg/types"
)

// StochRSIConfig runs the stochastic oscillator over an RSI column.
type StochRSIConfig struct {
	RSIWindow int `json:"rsiWindow"`
	KWindow   int `json:"kWindow"`
	DWindow   int `json:"dWindow"`

	FlatWindow FlatWindow `json:"flatWindow"`

	Source    string `json:"source,omitempty"`
	RSIColumn string `json:"rsi,omitempty"`
	KColumn   string `json:"k,omitempty"`
	DColumn   string `json:"d,omitempty"`
}

func DefaultStochRSIConfig() StochRSIConfig {
	return StochRSIConfig{RSIWindow: 14, KWindow: 14, DWindow: 3}
}

func (c StochRSIConfig) Validate() error {
	return multierr.Combine(
		validatePeriod("StochRSI rsi window", c.RSIWindow),
		c.stoch().Validate(),
	)
}

func (c StochRSIConfig) rsiOptions() ColumnOptions {
	opts := ColumnOptions{Source: c.Source, Output: c.RSIColumn}
	opts.Output = opts.output("RSI%d", c.RSIWindow)
	return opts
}

func (c StochRSIConfig) stoch() STOCHConfig {
	return STOCHConfig{
		KWindow:    c.KWindow,
		DWindow:    c.DWindow,
		FlatWindow: c.FlatWindow,
		Source:     c.rsiOptions().Output,
		KColumn:    ColumnOptions{Output: c.KColumn}.output("StochRSI %%K%d", c.KWindow),
		DColumn:    ColumnOptions{Output: c.DColumn}.output("StochRSI %%D%d", c.DWindow),
	}
}

// StochRSI appends the RSI column and the stochastic %K/%D computed over it.
func StochRSI(table *types.Table, c StochRSIConfig) (*types.Table, error) {
	if err := c.Validate(); err != nil {
		return table, err
	}

	if _, err := RSI(table, c.RSIWindow, c.rsiOptions()); err != nil {
		return table, err
	}

	return STOCH(table, c.stoch())
}

func (c *StochRSIConfig) Apply(table *types.Table) (*types.Table, error) {
	return StochRSI(table, *c)
}
