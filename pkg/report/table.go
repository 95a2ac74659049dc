package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leekchan/accounting"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/style"
	"github.com/c9s/seriesta/pkg/types"
)

const undefinedCell = "-"

type TableOptions struct {
	Title      string
	Rows       int
	Precision  int
	DateLayout string
	WithColor  bool
}

// PrintTable prints the last Rows rows of the table, one column per table column.
func PrintTable(w io.Writer, t *types.Table, opts TableOptions) {
	if opts.DateLayout == "" {
		opts.DateLayout = "2006-01-02"
	}

	var write func(io.Writer, string, ...interface{})
	tableStyle := style.NewPlainTableStyle()
	if opts.WithColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
		tableStyle = style.NewDefaultTableStyle()
	} else {
		write = func(a io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(a, format, args...)
		}
	}

	if opts.Title != "" {
		write(w, "---- %s ----\n", opts.Title)
	}

	tail := t
	if opts.Rows > 0 {
		tail = t.Tail(opts.Rows)
	}

	columns := tail.Columns()
	header := table.Row{"Date"}
	var columnConfigs []table.ColumnConfig
	for i, name := range columns {
		header = append(header, name)
		columnConfigs = append(columnConfigs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(*tableStyle)
	tw.SetColumnConfigs(columnConfigs)
	tw.AppendHeader(header)

	for i, ts := range tail.Index() {
		row := table.Row{ts.Format(opts.DateLayout)}
		for _, name := range columns {
			v, err := tail.Value(name, i)
			if err != nil {
				row = append(row, undefinedCell)
				continue
			}
			row = append(row, FormatNumber(v, opts.Precision))
		}
		tw.AppendRow(row)
	}

	tw.Render()
}

// FormatNumber formats v with thousand separators; undefined values print as "-".
func FormatNumber(v float64, precision int) string {
	if floats.IsUndefined(v) {
		return undefinedCell
	}
	return accounting.FormatNumberFloat64(v, precision, ",", ".")
}
