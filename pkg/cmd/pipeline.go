package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/c9s/seriesta/pkg/config"
	"github.com/c9s/seriesta/pkg/datasource"
	"github.com/c9s/seriesta/pkg/types"
)

// runPipeline loads the pipeline config, reads its price source and applies
// every indicator.
func runPipeline() (*config.Config, *types.Table, error) {
	configFile := viper.GetString("config")
	if configFile == "" {
		return nil, nil, errors.New("--config is required")
	}

	userConfig, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	table, err := datasource.LoadTable(userConfig.Source.File, string(userConfig.Source.Format), userConfig.Source.DateColumn)
	if err != nil {
		return nil, nil, err
	}

	log.Infof("loaded %d rows from %s, applying %d indicators", table.Len(), userConfig.Source.File, len(userConfig.Indicators))

	table, err = userConfig.Apply(table)
	if err != nil {
		return nil, nil, err
	}

	return userConfig, table, nil
}
