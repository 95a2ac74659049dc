package csvsource

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

// CSVTableReader reads a price history with a header row into a types.Table.
// The date column becomes the index, every other column is parsed as numbers.
type CSVTableReader struct {
	csv        *csv.Reader
	dateColumn string
}

// NewCSVTableReader creates a reader that indexes rows by DefaultDateColumn.
func NewCSVTableReader(csv *csv.Reader) *CSVTableReader {
	return &CSVTableReader{
		csv:        csv,
		dateColumn: DefaultDateColumn,
	}
}

// NewCSVTableReaderWithDateColumn creates a reader that indexes rows by the given column.
func NewCSVTableReaderWithDateColumn(csv *csv.Reader, dateColumn string) *CSVTableReader {
	return &CSVTableReader{
		csv:        csv,
		dateColumn: dateColumn,
	}
}

// ReadAll reads the header and every record. Rows are sorted by date before
// the table is built; duplicate dates are rejected by types.NewTable.
func (r *CSVTableReader) ReadAll() (*types.Table, error) {
	header, err := r.csv.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}

	dateIdx := -1
	for i, name := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if strings.EqualFold(header[i], r.dateColumn) {
			dateIdx = i
		}
	}
	if dateIdx < 0 {
		return nil, errors.Wrapf(ErrMissingDateColumn, "%q not in header %v", r.dateColumn, header)
	}

	type row struct {
		t      time.Time
		values []float64
	}

	var rows []row
	for line := 2; ; line++ {
		rec, err := r.csv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(rec) < len(header) {
			return nil, errors.Wrapf(ErrNotEnoughColumns, "line %d", line)
		}

		t, err := ParseTime(rec[dateIdx])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		values := make([]float64, len(header))
		for i := range header {
			if i == dateIdx {
				continue
			}
			if values[i], err = ParseValue(rec[i]); err != nil {
				return nil, errors.Wrapf(err, "line %d column %q", line, header[i])
			}
		}

		rows = append(rows, row{t: t, values: values})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].t.Before(rows[j].t)
	})

	index := make([]time.Time, len(rows))
	for i, rw := range rows {
		index[i] = rw.t
	}

	table, err := types.NewTable(index)
	if err != nil {
		return nil, err
	}

	for col, name := range header {
		if col == dateIdx {
			continue
		}

		values := make(floats.Slice, len(rows))
		for i, rw := range rows {
			values[i] = rw.values[col]
		}

		if err := table.SetColumn(name, values); err != nil {
			return nil, err
		}
	}

	log.Debugf("read %d rows with columns %v", table.Len(), table.Columns())
	return table, nil
}

// ReadTableFromCSV reads a single csv file indexed by DefaultDateColumn.
func ReadTableFromCSV(path string) (*types.Table, error) {
	return ReadTableFromCSVWithDateColumn(path, DefaultDateColumn)
}

// ReadTableFromCSVWithDateColumn reads a single csv file indexed by dateColumn.
func ReadTableFromCSVWithDateColumn(path, dateColumn string) (*types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	table, err := NewCSVTableReaderWithDateColumn(reader, dateColumn).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return table, nil
}
