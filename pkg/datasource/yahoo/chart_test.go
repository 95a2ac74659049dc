package yahoo

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChartFromFile(t *testing.T) {
	table, meta, err := ReadChartFromFile("./testdata/AAPL-chart.json")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", meta.Symbol)
	assert.Equal(t, "USD", meta.Currency)

	assert.Equal(t, 5, table.Len())
	assert.Equal(t, time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC), table.Index()[0])
	assert.Equal(t, time.Date(2018, 1, 8, 0, 0, 0, 0, time.UTC), table.Index()[4])
	assert.Equal(t, []string{"Open", "High", "Low", "Close", "Volume", AdjCloseColumn}, table.Columns())

	adj, err := table.Column(AdjCloseColumn)
	require.NoError(t, err)
	assert.Equal(t, 40.888062, adj[0])

	closes, err := table.Column("Close")
	require.NoError(t, err)
	assert.Equal(t, 175.0, closes[3])
	assert.True(t, math.IsNaN(closes[4]), "null quotes are undefined")
}

func TestParseChart_Errors(t *testing.T) {
	_, _, err := ReadChartFromFile("./testdata/error.json")
	assert.True(t, errors.Is(err, ErrChartError))
	assert.Contains(t, err.Error(), "No data found")

	_, _, err = ParseChart([]byte(`{"chart":{"result":[],"error":null}}`))
	assert.True(t, errors.Is(err, ErrNoResult))

	_, _, err = ParseChart([]byte(`{"chart":{"result":[{"timestamp":[86400,172800],"indicators":{"quote":[{"close":[1]}]}}],"error":null}}`))
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, _, err = ParseChart([]byte(`{"chart":`))
	assert.Error(t, err)
}
