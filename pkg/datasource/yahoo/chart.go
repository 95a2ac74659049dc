package yahoo

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

/*
chart decodes a saved Yahoo Finance chart document:

{
  "chart": {
    "result": [{
      "meta": {"symbol": "AAPL", "currency": "USD", "exchangeTimezoneName": "America/New_York"},
      "timestamp": [1514903400, 1514989800],
      "indicators": {
        "quote": [{"open": [...], "high": [...], "low": [...], "close": [...], "volume": [...]}],
        "adjclose": [{"adjclose": [...]}]
      }
    }],
    "error": null
  }
}
*/

var (
	ErrNoResult       = errors.New("yahoo chart document has no result")
	ErrChartError     = errors.New("yahoo chart document reports an error")
	ErrLengthMismatch = errors.New("quote series length does not match the timestamps")
)

// quote fields and the table columns they become
var quoteColumns = []struct {
	field  string
	column string
}{
	{"open", "Open"},
	{"high", "High"},
	{"low", "Low"},
	{"close", "Close"},
	{"volume", "Volume"},
}

const AdjCloseColumn = "Adj Close"

// Meta carries the instrument description of the document.
type Meta struct {
	Symbol   string
	Currency string
	Timezone string
}

// ParseChart parses a chart document into a table indexed by the bar
// timestamps truncated to the day in the exchange time zone.
func ParseChart(data []byte) (*types.Table, *Meta, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid chart json")
	}

	chart := v.Get("chart")
	if chart == nil {
		return nil, nil, ErrNoResult
	}

	if e := chart.Get("error"); e != nil && e.Type() != fastjson.TypeNull {
		return nil, nil, errors.Wrapf(ErrChartError, "%s: %s",
			e.GetStringBytes("code"), e.GetStringBytes("description"))
	}

	results := chart.GetArray("result")
	if len(results) == 0 {
		return nil, nil, ErrNoResult
	}
	result := results[0]

	meta := &Meta{
		Symbol:   string(result.GetStringBytes("meta", "symbol")),
		Currency: string(result.GetStringBytes("meta", "currency")),
		Timezone: string(result.GetStringBytes("meta", "exchangeTimezoneName")),
	}

	loc := time.UTC
	if meta.Timezone != "" {
		if l, err := time.LoadLocation(meta.Timezone); err == nil {
			loc = l
		}
	}

	var index []time.Time
	for _, ts := range result.GetArray("timestamp") {
		sec, err := ts.Int64()
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid timestamp")
		}
		t := time.Unix(sec, 0).In(loc)
		index = append(index, time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	}

	table, err := types.NewTable(index)
	if err != nil {
		return nil, nil, err
	}

	quotes := result.GetArray("indicators", "quote")
	if len(quotes) > 0 {
		for _, qc := range quoteColumns {
			values := quotes[0].GetArray(qc.field)
			if values == nil {
				continue
			}
			if err := setSeries(table, qc.column, values); err != nil {
				return nil, nil, err
			}
		}
	}

	if adj := result.GetArray("indicators", "adjclose"); len(adj) > 0 {
		if values := adj[0].GetArray("adjclose"); values != nil {
			if err := setSeries(table, AdjCloseColumn, values); err != nil {
				return nil, nil, err
			}
		}
	}

	return table, meta, nil
}

func setSeries(table *types.Table, column string, values []*fastjson.Value) error {
	if len(values) != table.Len() {
		return errors.Wrapf(ErrLengthMismatch, "%s has %d values, %d timestamps", column, len(values), table.Len())
	}

	out := floats.Fill(len(values), floats.Undefined)
	for i, value := range values {
		if value.Type() != fastjson.TypeNumber {
			continue
		}
		out[i] = value.GetFloat64()
	}

	return table.SetColumn(column, out)
}

// ReadChart reads a chart document from r.
func ReadChart(r io.Reader) (*types.Table, *Meta, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return ParseChart(data)
}

// ReadChartFromFile reads a chart document saved at path.
func ReadChartFromFile(path string) (*types.Table, *Meta, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	table, meta, err := ReadChart(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return table, meta, nil
}
