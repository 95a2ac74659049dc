package indicator

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_STOCH(t *testing.T) {
	table := buildTable(t, []float64{10, 12, 11, 15, 9, 13})
	_, err := STOCH(table, STOCHConfig{KWindow: 3, DWindow: 2})
	require.NoError(t, err)

	k := mustColumn(t, table, "%K3")
	d := mustColumn(t, table, "%D2")
	assert.Equal(t, 2, countLeadingUndefined(k))
	assert.Equal(t, 3, countLeadingUndefined(d))

	// row 2: window (10, 12, 11) -> (11 - 10) / (12 - 10)
	assert.InDelta(t, 50.0, k[2], Delta)
	// row 3: window (12, 11, 15) -> (15 - 11) / (15 - 11)
	assert.InDelta(t, 100.0, k[3], Delta)
	// row 4: window (11, 15, 9) -> 0
	assert.InDelta(t, 0.0, k[4], Delta)
	// row 5: window (15, 9, 13) -> (13 - 9) / (15 - 9)
	assert.InDelta(t, 400.0/6.0, k[5], Delta)

	assert.InDelta(t, 75.0, d[3], Delta)
	assert.InDelta(t, 50.0, d[4], Delta)
	assert.InDelta(t, 200.0/6.0, d[5], Delta)
}

func Test_STOCH_Bounds(t *testing.T) {
	prices := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41, 46.22, 45.64, 46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03, 44.18, 44.22, 44.57, 43.42, 42.66, 43.13}
	table := buildTable(t, prices)

	c := DefaultSTOCHConfig()
	_, err := STOCH(table, c)
	require.NoError(t, err)

	k := mustColumn(t, table, "%K14")
	d := mustColumn(t, table, "%D3")
	assert.Equal(t, 13, countLeadingUndefined(k))
	assert.Equal(t, 15, countLeadingUndefined(d))
	for i := 13; i < len(k); i++ {
		assert.GreaterOrEqual(t, k[i], 0.0)
		assert.LessOrEqual(t, k[i], 100.0)
	}
}

func Test_STOCH_FlatWindow(t *testing.T) {
	prices := []float64{5, 5, 5, 5, 6}

	t.Run("midpoint", func(t *testing.T) {
		table := buildTable(t, prices)
		_, err := STOCH(table, STOCHConfig{KWindow: 3, DWindow: 2})
		require.NoError(t, err)

		k := mustColumn(t, table, "%K3")
		d := mustColumn(t, table, "%D2")
		assert.Equal(t, 50.0, k[2])
		assert.Equal(t, 50.0, k[3])
		assert.Equal(t, 100.0, k[4])
		assert.Equal(t, 50.0, d[3])
		assert.Equal(t, 75.0, d[4])
	})

	t.Run("undefined", func(t *testing.T) {
		table := buildTable(t, prices)
		_, err := STOCH(table, STOCHConfig{KWindow: 3, DWindow: 2, FlatWindow: FlatWindowUndefined})
		require.NoError(t, err)

		k := mustColumn(t, table, "%K3")
		d := mustColumn(t, table, "%D2")
		assert.True(t, math.IsNaN(k[2]))
		assert.True(t, math.IsNaN(k[3]))
		assert.Equal(t, 100.0, k[4])
		assert.True(t, math.IsNaN(d[4]))
	})
}

func Test_STOCH_Columns(t *testing.T) {
	table := buildTable(t, linearPrices(1, 10))
	_, err := STOCH(table, STOCHConfig{KWindow: 3, DWindow: 3, KColumn: "fast", DColumn: "slow"})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultPriceColumn, "fast", "slow"}, table.Columns())

	_, err = STOCH(table, STOCHConfig{KWindow: 3, DWindow: 3, KColumn: "same", DColumn: "same"})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func Test_STOCH_InvalidParameters(t *testing.T) {
	table := buildTable(t, linearPrices(1, 10))
	_, err := STOCH(table, STOCHConfig{KWindow: 0, DWindow: -1})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = STOCH(table, STOCHConfig{KWindow: 3, DWindow: 3, FlatWindow: FlatWindow(7)})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = STOCH(table, STOCHConfig{KWindow: 3, DWindow: 3, KColumn: DefaultPriceColumn})
	assert.True(t, errors.Is(err, ErrInvalidParameter), "the k column must not replace its source")

	_, err = STOCH(table, STOCHConfig{KWindow: 3, DWindow: 3, Source: DefaultPriceColumn, DColumn: DefaultPriceColumn})
	assert.True(t, errors.Is(err, ErrInvalidParameter), "the d column must not replace its source")

	assert.Equal(t, []string{DefaultPriceColumn}, table.Columns())
	assert.Equal(t, 10.0, mustColumn(t, table, DefaultPriceColumn)[9])
}

func Test_FlatWindow_JSON(t *testing.T) {
	var c STOCHConfig
	require.NoError(t, json.Unmarshal([]byte(`{"kWindow": 5, "dWindow": 2, "flatWindow": "undefined"}`), &c))
	assert.Equal(t, FlatWindowUndefined, c.FlatWindow)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"flatWindow":"undefined"`)

	err = json.Unmarshal([]byte(`{"flatWindow": "zero"}`), &c)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
