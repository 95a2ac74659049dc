package indicator

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownIndicator = errors.New("unknown indicator")

var constructors = map[string]func() Applier{
	"ma": func() Applier {
		return &MAConfig{Window: 20}
	},
	"ema": func() Applier {
		return &EMAConfig{Window: 20}
	},
	"boll": func() Applier {
		c := DefaultBOLLConfig()
		return &c
	},
	"rsi": func() Applier {
		c := DefaultRSIConfig()
		return &c
	},
	"macd": func() Applier {
		return &MACDConfig{}
	},
	"stoch": func() Applier {
		c := DefaultSTOCHConfig()
		return &c
	},
	"stochrsi": func() Applier {
		c := DefaultStochRSIConfig()
		return &c
	},
}

// New returns the default configuration of the indicator registered as id.
func New(id string) (Applier, error) {
	f, ok := constructors[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIndicator, "%q", id)
	}
	return f(), nil
}

// IDs lists the registered indicator ids.
func IDs() []string {
	var ids []string
	for id := range constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
