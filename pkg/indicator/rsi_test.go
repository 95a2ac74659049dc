package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RSI_WilderSmoothing(t *testing.T) {
	// percentage changes: -, +10%, -10%, +10%, -10%
	table := buildTable(t, []float64{100, 110, 99, 108.9, 98.01})
	_, err := RSI(table, 2, ColumnOptions{})
	require.NoError(t, err)

	values := mustColumn(t, table, "RSI2")
	assert.True(t, math.IsNaN(values[0]))
	assert.True(t, math.IsNaN(values[1]))

	// seed at row 2: avgGain = mean(0, 0.1) = 0.05, avgLoss = mean(0, 0) = 0
	assert.Equal(t, 100.0, values[2])

	// row 3: avgGain = (0.05 + 0.1) / 2 = 0.075, avgLoss = 0
	assert.Equal(t, 100.0, values[3])

	// row 4: avgGain = (0.075 + 0) / 2 = 0.0375, avgLoss = (0 + 0.1) / 2 = 0.05
	assert.InDelta(t, 100-100/(1+0.0375/0.05), values[4], Delta)
}

func Test_RSI_Bounds(t *testing.T) {
	// test case from https://school.stockcharts.com/doku.php?id=technical_indicators:relative_strength_index_rsi
	var prices = []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41, 46.22, 45.64, 46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03, 44.18, 44.22, 44.57, 43.42, 42.66, 43.13}
	table := buildTable(t, prices)
	_, err := RSI(table, 14, ColumnOptions{})
	require.NoError(t, err)

	values := mustColumn(t, table, "RSI14")
	assert.Equal(t, 14, countLeadingUndefined(values))
	for i := 14; i < len(values); i++ {
		assert.GreaterOrEqual(t, values[i], 0.0)
		assert.LessOrEqual(t, values[i], 100.0)
	}

	// the series falls over the last rows
	assert.Less(t, values[len(values)-1], values[14])
}

func Test_RSI_StrictlyDecreasing(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = float64(200 - i)
	}
	table := buildTable(t, prices)
	_, err := RSI(table, 5, ColumnOptions{})
	require.NoError(t, err)

	values := mustColumn(t, table, "RSI5")
	for i := 5; i < len(values); i++ {
		assert.Equal(t, 0.0, values[i])
	}
}

func Test_RSI_ShortSeries(t *testing.T) {
	table := buildTable(t, linearPrices(1, 14))
	_, err := RSI(table, 14, ColumnOptions{})
	require.NoError(t, err)

	values := mustColumn(t, table, "RSI14")
	assert.Equal(t, 14, countLeadingUndefined(values), "no row reaches the seed")
}

func Test_RSI_OverMovingAverage(t *testing.T) {
	table := buildTable(t, linearPrices(1, 10))
	_, err := MA(table, 5, ColumnOptions{})
	require.NoError(t, err)

	_, err = RSI(table, 3, ColumnOptions{Source: "MA5"})
	require.NoError(t, err)

	// MA5 is defined from row 4, so the seed lands on row 7
	values := mustColumn(t, table, "RSI3")
	assert.Equal(t, 7, countLeadingUndefined(values))
	for i := 7; i < len(values); i++ {
		assert.Equal(t, 100.0, values[i])
	}
}

func Test_RSI_SourceWithGaps(t *testing.T) {
	nan := math.NaN()
	table := buildTable(t, []float64{10, 11, nan, nan, 12, 11, 13})
	_, err := RSI(table, 2, ColumnOptions{})
	require.NoError(t, err)

	values := mustColumn(t, table, "RSI2")
	for i := 0; i < 4; i++ {
		assert.True(t, math.IsNaN(values[i]), "row %d", i)
	}

	// gains: 0, 0.1, -, -, -, 0, 2/11; losses: 0, 0, -, -, -, 1/12, 0
	// row 4: avgGain = 0.0125, avgLoss = 0
	assert.Equal(t, 100.0, values[4])

	// row 5: avgGain = 0.00625, avgLoss = 1/24
	assert.InDelta(t, 100-100/(1+0.00625*24), values[5], Delta)

	assert.False(t, math.IsNaN(values[6]))
	assert.GreaterOrEqual(t, values[6], 0.0)
	assert.LessOrEqual(t, values[6], 100.0)
}

func Test_RSI_Errors(t *testing.T) {
	table := buildTable(t, linearPrices(1, 5))
	_, err := RSI(table, 0, ColumnOptions{})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
