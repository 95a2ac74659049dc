package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/seriesta/pkg/datatype/floats"
	"github.com/c9s/seriesta/pkg/types"
)

var ErrNothingToPlot = errors.New("no column has a defined value to plot")

const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// Panel is one chart: a set of table columns drawn over the table index.
type Panel struct {
	Title   string
	Columns []string
	Width   int
	Height  int
}

// NewChart builds a line chart with one time series per column. Undefined
// rows are left out of each series, so warm-up regions are not drawn.
func NewChart(table *types.Table, panel Panel) (*gochart.Chart, error) {
	graph := &gochart.Chart{
		Title:  panel.Title,
		Width:  panel.Width,
		Height: panel.Height,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.2f", vf)
				}
				return ""
			},
		},
	}

	if graph.Width == 0 {
		graph.Width = DefaultWidth
	}
	if graph.Height == 0 {
		graph.Height = DefaultHeight
	}

	for _, name := range panel.Columns {
		values, err := table.Column(name)
		if err != nil {
			return nil, err
		}

		series := gochart.TimeSeries{Name: name}
		for i, t := range table.Index() {
			if floats.IsUndefined(values[i]) {
				continue
			}
			series.XValues = append(series.XValues, t)
			series.YValues = append(series.YValues, values[i])
		}

		if len(series.XValues) == 0 {
			log.Warnf("column %s has no defined value, skipped", name)
			continue
		}

		graph.Series = append(graph.Series, series)
	}

	if len(graph.Series) == 0 {
		return nil, errors.Wrapf(ErrNothingToPlot, "columns %v", panel.Columns)
	}

	graph.Elements = []gochart.Renderable{
		gochart.LegendLeft(graph),
	}
	return graph, nil
}

// Render draws the panel as PNG into w.
func Render(table *types.Table, panel Panel, w io.Writer) error {
	graph, err := NewChart(table, panel)
	if err != nil {
		return err
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return errors.Wrapf(err, "cannot render chart %q", panel.Title)
	}
	return nil
}

// Save draws the panel as PNG into fileName.
func Save(table *types.Table, panel Panel, fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "cannot create on path %s", fileName)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Render(table, panel, f)
}
