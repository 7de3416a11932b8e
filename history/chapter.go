package history

import (
	"fmt"

	"github.com/rymflux-cli/rymflux/source"
)

// SavedChapter represents a single playback entry preserved in the user's history.
type SavedChapter struct {
	SourceName         string  `json:"source_name"`
	BookTitle          string  `json:"book_title"`
	BookURL            string  `json:"book_url"`
	BookAuthor         string  `json:"book_author"`
	BookChaptersTotal  int     `json:"book_chapters_total"`
	Title              string  `json:"title"`
	URL                string  `json:"url"`
	Index              int     `json:"index"`
	ListenedPercentage float64 `json:"listened_percentage"`
}

func (s *SavedChapter) encode() string {
	return fmt.Sprintf("%s (%s)", s.BookTitle, s.SourceName)
}

func (s *SavedChapter) String() string {
	return fmt.Sprintf("%s : %d / %d", s.BookTitle, s.Index, s.BookChaptersTotal)
}

// Item reconstructs the audio item this record came from, so a history entry
// can be fed back into the detail-merge stage.
func (s *SavedChapter) Item() *source.AudioItem {
	return &source.AudioItem{
		Title:      s.BookTitle,
		SourceName: s.SourceName,
		URL:        s.BookURL,
	}
}

func newSavedChapter(chapter *source.Chapter) *SavedChapter {
	record := &SavedChapter{
		Title: chapter.Title,
		URL:   chapter.URL,
		Index: int(chapter.Index),
	}

	if book := chapter.Audiobook; book != nil {
		record.SourceName = book.SourceName
		record.BookTitle = book.Title
		record.BookURL = book.URL
		record.BookAuthor = book.Author
		record.BookChaptersTotal = len(book.Chapters)
	}

	return record
}
