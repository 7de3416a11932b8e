// Package metadata provides a client for the Google Books volumes API.
package metadata

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/where"
	"github.com/samber/mo"
)

// normalizedTitle returns a lowercased, trimmed string for consistent comparison.
func normalizedTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// cacheData defines the structured format for persisting cached Books records to disk.
type cacheData[T any] struct {
	Volumes map[string]T `json:"volumes"`
}

// cacher provides a generic, thread-safe wrapper for high-level caching operations.
type cacher[T any] struct {
	internal *gache.Cache[*cacheData[T]]
	mu       sync.RWMutex
}

// Get retrieves a value from the cache associated with the specified title.
func (c *cacher[T]) Get(title string) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Volumes[normalizedTitle(title)]; ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

// Set persists a key-value pair to the cache.
func (c *cacher[T]) Set(title string, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		data.Volumes[normalizedTitle(title)] = value
		return c.internal.Set(data)
	}

	internal := &cacheData[T]{Volumes: make(map[string]T)}
	internal.Volumes[normalizedTitle(title)] = value
	return c.internal.Set(internal)
}

// searchCacher persists search result pages for optimized lookup.
var searchCacher = &cacher[[]*Volume]{
	internal: gache.New[*cacheData[[]*Volume]](
		&gache.Options{
			Path:       where.Books(),
			Lifetime:   time.Hour * 24 * 10,
			FileSystem: &filesystem.GacheFs{},
		},
	),
}

// failCacher serves as short-term persistence for failed lookups to mitigate redundant API pressure.
var failCacher = &cacher[bool]{
	internal: gache.New[*cacheData[bool]](
		&gache.Options{
			Path:       filepath.Join(where.Cache(), "books_fail_cache.json"),
			Lifetime:   time.Minute,
			FileSystem: &filesystem.GacheFs{},
		},
	),
}
