package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/seriesta/pkg/chart"
	"github.com/c9s/seriesta/pkg/indicator"
)

type SourceFormat string

const (
	SourceFormatCSV       SourceFormat = "csv"
	SourceFormatYahooJSON SourceFormat = "yahoo-json"
)

type SourceConfig struct {
	File       string       `json:"file"`
	Format     SourceFormat `json:"format,omitempty"`
	DateColumn string       `json:"dateColumn,omitempty"`
}

type ChartConfig struct {
	Title   string      `json:"title,omitempty"`
	Columns StringSlice `json:"columns"`
	File    string      `json:"file"`
	Width   int         `json:"width,omitempty"`
	Height  int         `json:"height,omitempty"`
}

func (c ChartConfig) Panel() chart.Panel {
	return chart.Panel{
		Title:   c.Title,
		Columns: c.Columns,
		Width:   c.Width,
		Height:  c.Height,
	}
}

// IndicatorConfig is one step of the pipeline, e.g. `- boll: { window: 20 }`.
type IndicatorConfig struct {
	ID      string
	Applier indicator.Applier
}

type Config struct {
	Source     SourceConfig
	Indicators []IndicatorConfig
	Charts     []ChartConfig
}

type Stash map[string]interface{}

func loadStash(configFile string) (Stash, error) {
	config, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	stash := make(Stash)
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".toml":
		err = toml.Unmarshal(config, &stash)
	default:
		err = yaml.Unmarshal(config, stash)
	}

	return stash, err
}

// Load reads a pipeline file, YAML unless the file name ends with .toml. A relative source file is resolved against the
// directory of the pipeline file.
func Load(configFile string) (*Config, error) {
	stash, err := loadStash(configFile)
	if err != nil {
		return nil, err
	}

	config, err := loadStashConfig(stash)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configFile)
	}

	if config.Source.File != "" && !filepath.IsAbs(config.Source.File) {
		config.Source.File = filepath.Join(filepath.Dir(configFile), config.Source.File)
	}

	return config, nil
}

func loadStashConfig(stash Stash) (*Config, error) {
	var config Config

	if conf, ok := stash["source"]; ok {
		if err := reUnmarshal(conf, &config.Source); err != nil {
			return nil, errors.Wrap(err, "source")
		}
	}

	indicators, err := loadIndicators(stash)
	if err != nil {
		return nil, err
	}
	config.Indicators = indicators

	if conf, ok := stash["charts"]; ok {
		if err := reUnmarshal(conf, &config.Charts); err != nil {
			return nil, errors.Wrap(err, "charts")
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func loadIndicators(stash Stash) (indicators []IndicatorConfig, err error) {
	indicatorsConf, ok := stash["indicators"]
	if !ok {
		return indicators, nil
	}

	configList, ok := indicatorsConf.([]interface{})
	if !ok {
		return nil, errors.New("expecting list in indicators")
	}

	for _, entry := range configList {
		var id string
		var conf interface{}

		switch e := entry.(type) {
		case string:
			// a bare id uses the defaults, e.g. `- macd`
			id = e

		case map[string]interface{}:
			if len(e) != 1 {
				return nil, errors.Errorf("indicator entry should have exactly one id, given: %+v", e)
			}
			for k, v := range e {
				id, conf = k, v
			}

		default:
			return nil, errors.Errorf("indicator config should be a map, given: %T %+v", entry, entry)
		}

		id = strings.ToLower(id)
		applier, err := indicator.New(id)
		if err != nil {
			return nil, err
		}

		if conf != nil {
			// decode over the defaults so that omitted fields keep them
			if err := reUnmarshal(conf, applier); err != nil {
				return nil, errors.Wrapf(err, "indicator %s", id)
			}
		}

		indicators = append(indicators, IndicatorConfig{ID: id, Applier: applier})
	}

	return indicators, nil
}

func reUnmarshal(conf interface{}, target interface{}) error {
	plain, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plain, target); err != nil {
		return errors.Wrapf(err, "json parsing error, given payload: %s", plain)
	}

	return nil
}

// Validate reports every problem of the source and chart sections at once.
func (c *Config) Validate() (err error) {
	if c.Source.File == "" {
		err = multierr.Append(err, errors.New("source.file is required"))
	}

	switch c.Source.Format {
	case "":
		c.Source.Format = SourceFormatCSV
	case SourceFormatCSV, SourceFormatYahooJSON:
	default:
		err = multierr.Append(err, errors.Errorf("source.format %q is not one of csv, yahoo-json", c.Source.Format))
	}

	for i, ch := range c.Charts {
		if len(ch.Columns) == 0 {
			err = multierr.Append(err, errors.Errorf("charts[%d] has no columns", i))
		}
		if ch.File == "" {
			err = multierr.Append(err, errors.Errorf("charts[%d].file is required", i))
		}
	}

	return err
}
