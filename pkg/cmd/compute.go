package cmd

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/seriesta/pkg/cmd/cmdutil"
	"github.com/c9s/seriesta/pkg/datasource/csvsource"
	"github.com/c9s/seriesta/pkg/report"
)

func init() {
	ComputeCmd.Flags().String("output", "", "write the augmented table to this csv file")
	ComputeCmd.Flags().String("date-layout", "2006-01-02", "time layout of the date column")
	cmdutil.OutputFlags(ComputeCmd.Flags())
	RootCmd.AddCommand(ComputeCmd)
}

var ComputeCmd = &cobra.Command{
	Use:   "compute [--config=pipeline.yaml] [--output=out.csv] [--tail=5]",
	Short: "apply the indicators of the pipeline config and print the last rows",
	RunE:  compute,
}

func compute(cmd *cobra.Command, args []string) error {
	userConfig, table, err := runPipeline()
	if err != nil {
		return err
	}

	tail, err := cmd.Flags().GetInt("tail")
	if err != nil {
		return err
	}
	precision, err := cmd.Flags().GetInt("precision")
	if err != nil {
		return err
	}
	withColor, err := cmd.Flags().GetBool("color")
	if err != nil {
		return err
	}
	dateLayout, err := cmd.Flags().GetString("date-layout")
	if err != nil {
		return err
	}

	title := strings.TrimSuffix(filepath.Base(userConfig.Source.File), filepath.Ext(userConfig.Source.File))
	report.PrintTable(cmd.OutOrStdout(), table, report.TableOptions{
		Title:      title,
		Rows:       tail,
		Precision:  precision,
		DateLayout: dateLayout,
		WithColor:  withColor,
	})

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if output != "" {
		if err := csvsource.WriteTableToCSV(output, table, dateLayout); err != nil {
			return err
		}
		log.Infof("wrote %d rows to %s", table.Len(), output)
	}

	return nil
}
