package config

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/seriesta/pkg/types"
)

// Apply runs the indicators in order against the table.
func (c *Config) Apply(table *types.Table) (*types.Table, error) {
	for i, ind := range c.Indicators {
		log.Debugf("applying indicator #%d %s: %+v", i, ind.ID, ind.Applier)

		var err error
		table, err = ind.Applier.Apply(table)
		if err != nil {
			return table, errors.Wrapf(err, "indicator #%d %s", i, ind.ID)
		}
	}

	return table, nil
}
