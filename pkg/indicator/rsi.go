package indicator

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

/*
rsi implements Relative Strength Index (RSI)

https://www.investopedia.com/terms/r/rsi.asp
*/

// RSI appends the relative strength index of the source column, smoothed with
// Wilder's method over period rows. Gains and losses are taken from the
// percentage change of the source.
//
// The average gain and loss are seeded period rows after the first defined
// source value with the mean of the rows in between, and carried forward row by
// row afterwards. Rows before the seed, and rows whose source value is
// undefined, are undefined. A zero average loss gives 100.
func RSI(table *types.Table, period int, opts ColumnOptions) (*types.Table, error) {
	if err := validatePeriod("RSI period", period); err != nil {
		return table, err
	}

	source, err := sourceColumn(table, opts.source())
	if err != nil {
		return table, err
	}

	output := opts.output("RSI%d", period)
	log.Debugf("RSI(%d) %s -> %s", period, opts.source(), output)

	return table, setColumns(table, []string{output}, []floats.Slice{calculateRSI(source, period)})
}

func calculateRSI(source floats.Slice, period int) floats.Slice {
	var length = len(source)
	out := floats.Fill(length, floats.Undefined)

	// the history starts at the first defined value, e.g. after the warm-up of an MA column
	from := source.FirstDefined()
	if from < 0 || length-from <= period {
		return out
	}

	gains, losses := gainsAndLosses(floats.PctChange(source))

	var seed = from + period
	var avgGain = gains[from:seed].Mean()
	var avgLoss = losses[from:seed].Mean()
	out[seed] = rsiValue(avgGain, avgLoss)

	var window = float64(period)
	for i := seed + 1; i < length; i++ {
		avgGain = (avgGain*(window-1) + gains[i]) / window
		avgLoss = (avgLoss*(window-1) + losses[i]) / window
		out[i] = rsiValue(avgGain, avgLoss)
	}

	// a row without a source value has no RSI either
	for i := seed; i < length; i++ {
		if floats.IsUndefined(source[i]) {
			out[i] = floats.Undefined
		}
	}

	return out
}

// gainsAndLosses splits changes into positive gains and loss magnitudes. An
// undefined change counts as neither.
func gainsAndLosses(changes floats.Slice) (gains, losses floats.Slice) {
	gains = make(floats.Slice, len(changes))
	losses = make(floats.Slice, len(changes))
	for i, change := range changes {
		if floats.IsUndefined(change) {
			continue
		}
		gains[i] = math.Max(change, 0)
		losses[i] = math.Max(-change, 0)
	}
	return gains, losses
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

type RSIConfig struct {
	Window int `json:"window"`
	ColumnOptions
}

func DefaultRSIConfig() RSIConfig {
	return RSIConfig{Window: 14}
}

func (c *RSIConfig) Apply(table *types.Table) (*types.Table, error) {
	return RSI(table, c.Window, c.ColumnOptions)
}
