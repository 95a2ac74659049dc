package datasource

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/seriesta/pkg/datasource/csvsource"
	"github.com/c9s/seriesta/pkg/datasource/yahoo"
	"github.com/c9s/seriesta/pkg/types"
)

const (
	FormatCSV       = "csv"
	FormatYahooJSON = "yahoo-json"
)

var ErrUnsupportedFormat = errors.New("unsupported source format")

// LoadTable reads a saved price history. dateColumn only applies to csv files
// and defaults to csvsource.DefaultDateColumn.
func LoadTable(file, format, dateColumn string) (*types.Table, error) {
	switch format {
	case "", FormatCSV:
		if dateColumn == "" {
			dateColumn = csvsource.DefaultDateColumn
		}
		return csvsource.ReadTableFromCSVWithDateColumn(file, dateColumn)

	case FormatYahooJSON:
		table, meta, err := yahoo.ReadChartFromFile(file)
		if err != nil {
			return nil, err
		}

		log.Infof("loaded %s (%s) chart with %d rows", meta.Symbol, meta.Currency, table.Len())
		return table, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
}
