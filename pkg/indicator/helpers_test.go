package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

const Delta = 1e-9

func buildTable(t *testing.T, prices []float64) *types.Table {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	index := make([]time.Time, len(prices))
	for i := range prices {
		index[i] = start.AddDate(0, 0, i)
	}

	table, err := types.NewTable(index)
	require.NoError(t, err)
	require.NoError(t, table.SetColumn(DefaultPriceColumn, floats.New(prices...)))
	return table
}

func linearPrices(from, n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = float64(from + i)
	}
	return prices
}

func mustColumn(t *testing.T, table *types.Table, name string) floats.Slice {
	values, err := table.Column(name)
	require.NoError(t, err)
	require.Len(t, values, table.Len())
	return values
}

func countLeadingUndefined(values floats.Slice) int {
	n := 0
	for _, v := range values {
		if !math.IsNaN(v) {
			break
		}
		n++
	}
	return n
}
