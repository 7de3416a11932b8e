package player

import (
	"fmt"
	"testing"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Should accept http and https URLs", func() {
			for _, raw := range []string{"http://example.com/a.mp3", "https://example.com/a.mp3"} {
				got, err := sanitizeMediaTarget(raw)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, raw)
			}
		})

		Convey("Should reject flag-looking targets", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject control characters", func() {
			_, err := sanitizeMediaTarget("https://example.com/a.mp3\n--evil")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject non-http schemes", func() {
			_, err := sanitizeMediaTarget("ftp://example.com/a.mp3")
			So(err, ShouldNotBeNil)
		})

		Convey("Should clean local paths", func() {
			got, err := sanitizeMediaTarget("./books//chapter.mp3")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "books/chapter.mp3")
		})
	})
}

func TestWritePlaylist(t *testing.T) {
	Convey("WritePlaylist", t, func() {
		book := &source.Audiobook{
			AudioItem: source.AudioItem{Title: "Moby Dick", SourceName: "librivox"},
		}
		for i, u := range []string{
			"https://archive.org/download/md/01.mp3",
			"https://archive.org/download/md/02.mp3",
			"https://archive.org/download/md/03.mp3",
		} {
			book.Chapters = append(book.Chapters, &source.Chapter{
				Title:     fmt.Sprintf("Chapter %d", i+1),
				URL:       u,
				Index:     uint16(i + 1),
				Audiobook: book,
			})
		}

		Convey("Should include every chapter from the given one onward", func() {
			path, err := WritePlaylist(book, book.Chapters[1])
			So(err, ShouldBeNil)

			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldStartWith, "#EXTM3U")
			So(string(content), ShouldNotContainSubstring, "01.mp3")
			So(string(content), ShouldContainSubstring, "02.mp3")
			So(string(content), ShouldContainSubstring, "03.mp3")
		})

		Convey("Nil start means the whole book", func() {
			path, err := WritePlaylist(book, nil)
			So(err, ShouldBeNil)

			content, _ := filesystem.API().ReadFile(path)
			So(string(content), ShouldContainSubstring, "01.mp3")
		})

		Convey("Should fail on an empty chapter list", func() {
			empty := &source.Audiobook{AudioItem: source.AudioItem{Title: "Empty"}}
			_, err := WritePlaylist(empty, nil)
			So(err, ShouldNotBeNil)
		})
	})
}
