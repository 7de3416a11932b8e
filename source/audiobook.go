// Package source defines the domain models and interfaces for audiobook discovery and retrieval.
package source

import (
	"encoding/json"

	"github.com/rymflux-cli/rymflux/util"
)

// Chapter represents a single playable segment of an audiobook.
// Owned by exactly one Audiobook and never mutated after creation.
type Chapter struct {
	// Display name (e.g. "Chapter 1").
	Title string `json:"title"`
	// Direct URL to the audio stream/file.
	URL string `json:"url"`
	// Ordering index, 1-based.
	Index uint16 `json:"index"`

	Audiobook *Audiobook `json:"-"`
}

// String returns the canonical string representation of the chapter identifier.
func (c *Chapter) String() string {
	return c.Title
}

// Audiobook is a fully resolved audiobook with its playable chapters.
type Audiobook struct {
	AudioItem

	Author        string `json:"author,omitempty"`
	Description   string `json:"description,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`

	// Chapters in play order. Never empty for a resolved audiobook.
	Chapters []*Chapter `json:"chapters"`
}

// ChapterByURL returns the chapter whose stream URL matches.
// Chapter indices can be gapped (skipped page containers still consume
// an index), so the URL is the only stable handle across fetches.
func (b *Audiobook) ChapterByURL(url string) (*Chapter, bool) {
	for _, chapter := range b.Chapters {
		if chapter.URL == url {
			return chapter, true
		}
	}
	return nil, false
}

// Dirname returns a filesystem-safe name for the audiobook,
// used for temp playlists and cache entries.
func (b *Audiobook) Dirname() string {
	return util.SanitizeFilename(b.Title)
}

// JSON returns the JSON representation of the audiobook.
func (b *Audiobook) JSON() []byte {
	out, _ := json.Marshal(b)
	return out
}
