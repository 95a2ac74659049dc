package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/seriesta/pkg/chart"
)

func init() {
	ChartCommand.Flags().String("output-dir", ".", "directory the chart files are written to")
	RootCmd.AddCommand(ChartCommand)
}

var ChartCommand = &cobra.Command{
	Use:   "chart [--config=pipeline.yaml] [--output-dir=dir]",
	Short: "create charts from config file",
	RunE:  drawCharts,
}

func drawCharts(cmd *cobra.Command, args []string) error {
	userConfig, table, err := runPipeline()
	if err != nil {
		return err
	}

	if len(userConfig.Charts) == 0 {
		return errors.New("chart config is missing in the config file")
	}

	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "mkdir %s", outputDir)
	}

	// the table is only read from here on, so the panels can be drawn in parallel
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)
	for _, ch := range userConfig.Charts {
		ch := ch
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fileName := filepath.Join(outputDir, ch.File)
			if err := chart.Save(table, ch.Panel(), fileName); err != nil {
				return err
			}

			log.Infof("chart %s saved to %s", ch.Title, fileName)
			return nil
		})
	}

	return g.Wait()
}
