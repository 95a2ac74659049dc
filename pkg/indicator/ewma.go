package indicator

import (
	log "github.com/sirupsen/logrus"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

// see https://www.investopedia.com/ask/answers/122314/what-exponential-moving-average-ema-formula-and-how-ema-calculated.asp

// EMA appends the exponential moving average of the source column with
// multiplier 2 / (period + 1). The first value equals the first source value.
func EMA(table *types.Table, period int, opts ColumnOptions) (*types.Table, error) {
	if err := validatePeriod("EMA period", period); err != nil {
		return table, err
	}

	source, err := sourceColumn(table, opts.source())
	if err != nil {
		return table, err
	}

	output := opts.output("EMA%d", period)
	log.Debugf("EMA(%d) %s -> %s", period, opts.source(), output)

	return table, setColumns(table, []string{output}, []floats.Slice{calculateEMA(source, period)})
}

// calculateEMA seeds the recurrence at the first defined source value; rows
// before it stay undefined. An undefined value after the seed carries the
// previous average forward.
func calculateEMA(source floats.Slice, period int) floats.Slice {
	var multiplier = 2.0 / (float64(period) + 1)

	out := floats.Fill(len(source), floats.Undefined)
	from := source.FirstDefined()
	if from < 0 {
		return out
	}

	out[from] = source[from]
	for i := from + 1; i < len(source); i++ {
		if floats.IsUndefined(source[i]) {
			out[i] = out[i-1]
			continue
		}
		out[i] = source[i]*multiplier + (1-multiplier)*out[i-1]
	}

	return out
}

type EMAConfig struct {
	Window int `json:"window"`
	ColumnOptions
}

func (c *EMAConfig) Apply(table *types.Table) (*types.Table, error) {
	return EMA(table, c.Window, c.ColumnOptions)
}
