package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAudioItem(t *testing.T) {
	Convey("AudioItem", t, func() {
		item := &AudioItem{
			Title:      "Moby Dick",
			SourceName: "librivox",
			URL:        "https://example.com/book/42",
		}

		Convey("String() should include title and source", func() {
			So(item.String(), ShouldEqual, "Moby Dick (librivox)")
		})
	})
}

func TestAudiobook(t *testing.T) {
	Convey("Audiobook", t, func() {
		book := &Audiobook{
			AudioItem: AudioItem{
				Title:      "Treasure Island: Part 2",
				SourceName: "archive",
				URL:        "https://archive.org/details/treasure_island",
			},
			Author: "Robert Louis Stevenson",
			Chapters: []*Chapter{
				{Title: "Chapter 1", URL: "https://archive.org/download/ti/01.mp3", Index: 1},
				{Title: "Chapter 2", URL: "https://archive.org/download/ti/02.mp3", Index: 2},
			},
		}

		Convey("Dirname() should be filesystem-safe", func() {
			So(book.Dirname(), ShouldNotContainSubstring, ":")
		})

		Convey("JSON() should round-trip the chapter list", func() {
			out := book.JSON()
			So(string(out), ShouldContainSubstring, `"chapters"`)
			So(string(out), ShouldContainSubstring, "Chapter 2")
		})

		Convey("Chapter String() should return the title", func() {
			So(book.Chapters[0].String(), ShouldEqual, "Chapter 1")
		})
	})
}

func TestChapterByURL(t *testing.T) {
	Convey("ChapterByURL", t, func() {
		// Gapped indices: dead page containers consume index slots,
		// so Index does not correspond to a slice position.
		book := &Audiobook{
			AudioItem: AudioItem{Title: "Dracula", SourceName: "custom"},
			Chapters: []*Chapter{
				{Title: "Chapter 1", URL: "https://example.com/audio/1.mp3", Index: 1},
				{Title: "Chapter 2", URL: "https://example.com/audio/2.mp3", Index: 2},
				{Title: "Chapter 4", URL: "https://example.com/audio/4.mp3", Index: 4},
				{Title: "Chapter 5", URL: "https://example.com/audio/5.mp3", Index: 5},
			},
		}

		Convey("Should resolve a chapter past an index gap", func() {
			chapter, ok := book.ChapterByURL("https://example.com/audio/4.mp3")
			So(ok, ShouldBeTrue)
			So(chapter.Title, ShouldEqual, "Chapter 4")
			So(chapter.Title, ShouldNotEqual, book.Chapters[3].Title)
		})

		Convey("Should resolve the last chapter even when its index exceeds the chapter count", func() {
			chapter, ok := book.ChapterByURL("https://example.com/audio/5.mp3")
			So(ok, ShouldBeTrue)
			So(int(chapter.Index), ShouldBeGreaterThan, len(book.Chapters))
			So(chapter.Title, ShouldEqual, "Chapter 5")
		})

		Convey("Should report a miss for an unknown URL", func() {
			_, ok := book.ChapterByURL("https://example.com/audio/3.mp3")
			So(ok, ShouldBeFalse)
		})
	})
}
