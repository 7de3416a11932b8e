// Package provider manages configured audiobook sources and their lifecycle.
package provider

import (
	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/provider/archive"
	"github.com/rymflux-cli/rymflux/provider/custom"
	"github.com/rymflux-cli/rymflux/source"
)

// Source type discriminators recognized in sources.yaml.
const (
	TypeCustom  = "custom"
	TypeArchive = "archive"
)

// SourceConfig is one entry of the declarative source configuration.
type SourceConfig struct {
	Type    string        `mapstructure:"type" yaml:"type"`
	Name    string        `mapstructure:"name" yaml:"name"`
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Rules   *custom.Rules `mapstructure:"rules" yaml:"rules"`
}

// Build constructs the source this config describes. Returns false when the
// entry is malformed; a bad entry is logged and skipped, never fatal.
func (c SourceConfig) Build() (source.Source, bool) {
	switch c.Type {
	case TypeArchive:
		// The archive source ignores base_url and rules entirely.
		if c.Name == "" {
			log.Warnf("skipping archive source config without a name")
			return nil, false
		}
		return archive.New(c.Name), true

	case TypeCustom:
		if c.Name == "" || c.BaseURL == "" || !c.Rules.Valid() {
			log.Warnf("skipping incomplete custom source config %q", c.Name)
			return nil, false
		}

		s, err := custom.New(c.Name, c.BaseURL, *c.Rules)
		if err != nil {
			log.Warnf("skipping custom source %q: %v", c.Name, err)
			return nil, false
		}
		return s, true

	default:
		log.Warnf("skipping source %q with unknown type %q", c.Name, c.Type)
		return nil, false
	}
}
