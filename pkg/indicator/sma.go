package indicator

import (
	log "github.com/sirupsen/logrus"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

/*
ma implements the simple moving average

Simple Moving Average (SMA)
- https://www.investopedia.com/terms/s/sma.asp
*/

// MA appends the trailing arithmetic mean of the source column over period rows.
// The first period-1 rows are undefined.
func MA(table *types.Table, period int, opts ColumnOptions) (*types.Table, error) {
	if err := validatePeriod("MA period", period); err != nil {
		return table, err
	}

	source, err := sourceColumn(table, opts.source())
	if err != nil {
		return table, err
	}

	output := opts.output("MA%d", period)
	log.Debugf("MA(%d) %s -> %s", period, opts.source(), output)

	return table, setColumns(table, []string{output}, []floats.Slice{calculateMA(source, period)})
}

func calculateMA(source floats.Slice, period int) floats.Slice {
	return floats.RollingMean(source, period)
}

type MAConfig struct {
	Window int `json:"window"`
	ColumnOptions
}

func (c *MAConfig) Apply(table *types.Table) (*types.Table, error) {
	return MA(table, c.Window, c.ColumnOptions)
}
