package provider

import (
	"github.com/rymflux-cli/rymflux/source"
)

// Registry holds the built sources in their configuration order.
// That order is what the search aggregator's output ordering follows.
type Registry struct {
	sources []source.Source
	byName  map[string]source.Source
}

// NewRegistry builds every valid source from the given configs.
// Malformed entries are dropped individually; one bad entry never prevents
// the rest from loading.
func NewRegistry(configs []SourceConfig) *Registry {
	r := &Registry{byName: make(map[string]source.Source)}

	for _, cfg := range configs {
		s, ok := cfg.Build()
		if !ok {
			continue
		}
		if _, dup := r.byName[s.Name()]; dup {
			// First entry wins on name collisions.
			_ = s.Close()
			continue
		}

		r.sources = append(r.sources, s)
		r.byName[s.Name()] = s
	}

	return r
}

// Sources returns all sources in configuration order.
func (r *Registry) Sources() []source.Source {
	return r.sources
}

// Get finds a source by name.
func (r *Registry) Get(name string) (source.Source, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Names returns the source names in configuration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}
	return names
}

// Len returns the number of loaded sources.
func (r *Registry) Len() int {
	return len(r.sources)
}

// Close releases every source. Idempotent.
func (r *Registry) Close() error {
	for _, s := range r.sources {
		_ = s.Close()
	}
	return nil
}
