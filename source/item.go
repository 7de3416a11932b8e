// Package source defines the domain models and interfaces for audiobook discovery and retrieval.
package source

import "fmt"

// AudioItem represents an audiobook discovered through a provider search.
// It carries just enough identity to request full details later.
// Immutable once produced.
type AudioItem struct {
	// Display title.
	Title string `json:"title"`
	// Name of the source that produced this item.
	SourceName string `json:"source_name"`
	// Absolute URL of the item's page.
	URL string `json:"url"`
}

// String returns the canonical display representation of the item.
func (a *AudioItem) String() string {
	return fmt.Sprintf("%s (%s)", a.Title, a.SourceName)
}
