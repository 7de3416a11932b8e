// Package source defines the domain models and interfaces for audiobook discovery and retrieval.
package source

import (
	"context"
	"errors"
)

// ErrNotFound reports that a source could not resolve an item into a playable
// audiobook. It covers upstream "no such identifier" responses as well as
// items whose pages yield zero playable chapters.
var ErrNotFound = errors.New("audiobook not found")

// Source defines the required capabilities for an audiobook provider engine.
type Source interface {
	// Name returns the unique identifier for the provider,
	// used to route detail lookups back to the originating source.
	Name() string

	// BaseURL returns the root URL relative links are resolved against.
	BaseURL() string

	// Search executes a query against the provider to discover matching audiobooks.
	// Transport and parse failures degrade to an empty result set rather than
	// an error so that one unreachable host never taints a fan-out.
	Search(ctx context.Context, query string) ([]*AudioItem, error)

	// GetDetails resolves a previously discovered item into a playable
	// audiobook with its chapter list. Returns ErrNotFound when the item
	// cannot be resolved or yields no playable chapters.
	GetDetails(ctx context.Context, item *AudioItem) (*Audiobook, error)

	// Close releases any held connection resources. Idempotent.
	Close() error
}
