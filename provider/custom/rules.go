// Package custom implements the rule-driven HTML scraper source.
package custom

// SearchRules describes how to turn a query into a list of audiobook items.
type SearchRules struct {
	// URL template containing a {query} placeholder. May be relative to the
	// source's base URL.
	URL string `mapstructure:"url" yaml:"url"`

	// CSS selector matching one element per search result.
	ItemContainerSelector string `mapstructure:"item_container_selector" yaml:"item_container_selector"`

	// Selectors evaluated within each item container.
	TitleSelector string `mapstructure:"title_selector" yaml:"title_selector"`
	URLSelector   string `mapstructure:"url_selector" yaml:"url_selector"`
}

// DetailsRules describes how to extract an audiobook's metadata and chapters
// from its page.
type DetailsRules struct {
	// CSS selector matching one element per chapter candidate.
	ChapterContainerSelector string `mapstructure:"chapter_container_selector" yaml:"chapter_container_selector"`

	// Selector for the element carrying the chapter's src attribute,
	// evaluated within each chapter container.
	ChapterURLSelector string `mapstructure:"chapter_url_selector" yaml:"chapter_url_selector"`

	// Optional metadata selectors. An absent selector or a selector with no
	// match leaves the corresponding field empty.
	AuthorSelector        string `mapstructure:"author_selector" yaml:"author_selector"`
	DescriptionSelector   string `mapstructure:"description_selector" yaml:"description_selector"`
	CoverImageURLSelector string `mapstructure:"cover_image_url_selector" yaml:"cover_image_url_selector"`
}

// Rules bundles the search and details scraping rules of one source.
type Rules struct {
	Search  SearchRules  `mapstructure:"search" yaml:"search"`
	Details DetailsRules `mapstructure:"details" yaml:"details"`
}

// Valid reports whether the rules carry the required search and details
// selectors. Optional metadata selectors are not checked.
func (r *Rules) Valid() bool {
	if r == nil {
		return false
	}
	s, d := r.Search, r.Details
	return s.URL != "" &&
		s.ItemContainerSelector != "" &&
		s.TitleSelector != "" &&
		s.URLSelector != "" &&
		d.ChapterContainerSelector != "" &&
		d.ChapterURLSelector != ""
}
