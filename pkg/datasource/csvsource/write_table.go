package csvsource

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/c9s/seriesta/pkg/types"
)

// WriteTable writes the index as the Date column followed by every table
// column in order. Undefined values become empty cells.
func WriteTable(w io.Writer, table *types.Table, dateLayout string) error {
	writer := csv.NewWriter(w)

	columns := table.Columns()
	if err := writer.Write(append([]string{DefaultDateColumn}, columns...)); err != nil {
		return err
	}

	for i, t := range table.Index() {
		record := make([]string, 0, len(columns)+1)
		record = append(record, t.Format(dateLayout))
		for _, name := range columns {
			v, err := table.Value(name, i)
			if err != nil {
				return err
			}
			record = append(record, FormatValue(v))
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTableToCSV writes the table to path, creating the parent directory.
func WriteTableToCSV(path string, table *types.Table, dateLayout string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	return WriteTable(file, table, dateLayout)
}
