package indicator

import (
	"github.com/c9s/seriesta/pkg/types"
)

/*
macd implements moving average convergence divergence indicator

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/
const (
	MACDShortPeriod  = 12
	MACDLongPeriod   = 26
	MACDSignalPeriod = 9

	MACDShortColumn     = "EMA12"
	MACDLongColumn      = "EMA26"
	MACDColumn          = "MACD"
	MACDSignalColumn    = "MACD Signal"
	MACDHistogramColumn = "MACD Histogram"
)

type MACDConfig struct {
	Source string `json:"source,omitempty"`
}

// MACD appends EMA12, EMA26, MACD = EMA12 - EMA26, the 9 period EMA of MACD as
// the signal line, and the histogram MACD - signal. The periods and column
// names are fixed.
func MACD(table *types.Table, c MACDConfig) (*types.Table, error) {
	source := ColumnOptions{Source: c.Source}.source()
	if _, err := sourceColumn(table, source); err != nil {
		return table, err
	}

	// update fast and slow ema
	if _, err := EMA(table, MACDShortPeriod, ColumnOptions{Source: source, Output: MACDShortColumn}); err != nil {
		return table, err
	}
	if _, err := EMA(table, MACDLongPeriod, ColumnOptions{Source: source, Output: MACDLongColumn}); err != nil {
		return table, err
	}

	fast, err := table.Column(MACDShortColumn)
	if err != nil {
		return table, err
	}
	slow, err := table.Column(MACDLongColumn)
	if err != nil {
		return table, err
	}

	if err := table.SetColumn(MACDColumn, fast.Sub(slow)); err != nil {
		return table, err
	}

	// the signal line smooths the already derived MACD column
	if _, err := EMA(table, MACDSignalPeriod, ColumnOptions{Source: MACDColumn, Output: MACDSignalColumn}); err != nil {
		return table, err
	}

	macd, err := table.Column(MACDColumn)
	if err != nil {
		return table, err
	}
	signal, err := table.Column(MACDSignalColumn)
	if err != nil {
		return table, err
	}

	return table, table.SetColumn(MACDHistogramColumn, macd.Sub(signal))
}

func (c *MACDConfig) Apply(table *types.Table) (*types.Table, error) {
	return MACD(table, *c)
}
