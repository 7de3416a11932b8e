package history

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

func testChapter() *source.Chapter {
	book := &source.Audiobook{
		AudioItem: source.AudioItem{
			Title:      "Moby Dick",
			SourceName: "librivox",
			URL:        "https://archive.org/details/moby_dick_librivox",
		},
		Author: "Herman Melville",
	}
	chapter := &source.Chapter{
		Title:     "Chapter 3",
		URL:       "https://archive.org/download/moby_dick_librivox/03.mp3",
		Index:     3,
		Audiobook: book,
	}
	book.Chapters = []*source.Chapter{chapter}
	return chapter
}

func TestHistory(t *testing.T) {
	Convey("Given a chapter", t, func() {
		chapter := testChapter()
		recordKey := fmt.Sprintf("%s (%s)", "Moby Dick", "librivox")

		Convey("When saving the chapter", func() {
			So(Save(chapter, 40.0), ShouldBeNil)

			Convey("Then the record should be retrievable", func() {
				records, err := Get()
				So(err, ShouldBeNil)
				So(records[recordKey], ShouldNotBeNil)
				So(records[recordKey].Title, ShouldEqual, "Chapter 3")
				So(records[recordKey].ListenedPercentage, ShouldEqual, 40.0)
			})

			Convey("Then progress should never regress", func() {
				So(Save(chapter, 10.0), ShouldBeNil)
				records, _ := Get()
				So(records[recordKey].ListenedPercentage, ShouldEqual, 40.0)
			})

			Convey("Then the record should reconstruct its item", func() {
				records, _ := Get()
				item := records[recordKey].Item()
				So(item.SourceName, ShouldEqual, "librivox")
				So(item.URL, ShouldEqual, "https://archive.org/details/moby_dick_librivox")
			})

			Convey("Then removing it should leave no record", func() {
				records, _ := Get()
				So(Remove(records[recordKey]), ShouldBeNil)
				records, _ = Get()
				So(records[recordKey], ShouldBeNil)
			})
		})
	})
}
