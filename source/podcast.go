// Package source defines the domain models and interfaces for audiobook discovery and retrieval.
package source

// Episode represents a single installment of a podcast feed.
// No bundled source populates these yet; the shape is fixed here so a future
// feed-backed source slots into the same pipeline as audiobooks.
type Episode struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Index uint16 `json:"index"`

	Podcast *Podcast `json:"-"`
}

func (e *Episode) String() string {
	return e.Title
}

// Podcast is the episodic analog of Audiobook.
type Podcast struct {
	AudioItem

	Description   string `json:"description,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`

	Episodes []*Episode `json:"episodes"`
}
