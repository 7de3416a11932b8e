// Package metadata provides a client for the Google Books volumes API.
package metadata

import "strings"

// Volume is a single Google Books volume record.
type Volume struct {
	// ID is the unique identifier of the volume on Google Books.
	ID string `json:"id"`
	// VolumeInfo carries the bibliographic fields.
	VolumeInfo struct {
		// Title of the book.
		Title string `json:"title"`
		// Authors of the book.
		Authors []string `json:"authors"`
		// Description is the plot summary or synopsis.
		Description string `json:"description"`
		// Publisher of this edition.
		Publisher string `json:"publisher"`
		// PublishedDate of this edition.
		PublishedDate string `json:"publishedDate"`
		// PageCount of the printed edition.
		PageCount int `json:"pageCount"`
		// Categories the book belongs to.
		Categories []string `json:"categories"`
		// ImageLinks carries cover art URLs.
		ImageLinks struct {
			// Thumbnail is the standard cover image URL.
			Thumbnail string `json:"thumbnail"`
			// SmallThumbnail is the reduced cover image URL.
			SmallThumbnail string `json:"smallThumbnail"`
		} `json:"imageLinks"`
		// Language is the ISO-639-1 code of the text.
		Language string `json:"language"`
		// PreviewLink is the URL of the volume on Google Books.
		PreviewLink string `json:"previewLink"`
	} `json:"volumeInfo"`
}

// Name returns the volume's title.
func (v *Volume) Name() string {
	return v.VolumeInfo.Title
}

// Author returns all authors joined for display.
func (v *Volume) Author() string {
	return strings.Join(v.VolumeInfo.Authors, ", ")
}

// Thumbnail returns the best available cover image URL.
func (v *Volume) Thumbnail() string {
	if v.VolumeInfo.ImageLinks.Thumbnail != "" {
		return v.VolumeInfo.ImageLinks.Thumbnail
	}
	return v.VolumeInfo.ImageLinks.SmallThumbnail
}
