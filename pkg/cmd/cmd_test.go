package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/seriesta/pkg/datasource/csvsource"
	"github.com/c9s/seriesta/pkg/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	require.NoError(t, viper.BindPFlags(RootCmd.PersistentFlags()))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)
}

func TestComputeCmd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "aapl.csv")
	out, err := execute(t, "compute", "--config", "testdata/pipeline.yaml", "--output", output, "--tail", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "AAPL-2018-01")
	assert.Contains(t, out, "MACD Histogram")
	assert.Contains(t, out, "2018-01-31")
	assert.NotContains(t, out, "2018-01-26")

	table, err := csvsource.ReadTableFromCSV(output)
	require.NoError(t, err)
	assert.Equal(t, 21, table.Len())
	for _, column := range []string{"MA20", "BB10 Upper", "RSI14", "MACD Signal", "%K14", "%D3", "RSI5", "StochRSI %K5", "StochRSI %D3"} {
		assert.True(t, table.HasColumn(column), column)
	}
}

func TestChartCmd(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "chart", "--config", "testdata/pipeline.yaml", "--output-dir", dir)
	require.NoError(t, err)

	for _, name := range []string{"aapl.png", "macd.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestComputeCmd_MissingConfig(t *testing.T) {
	_, err := execute(t, "compute", "--config", "testdata/missing.yaml")
	assert.Error(t, err)
}
