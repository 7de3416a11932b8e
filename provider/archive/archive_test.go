package archive

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rymflux-cli/rymflux/source"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestArchive(serverURL string) *Archive {
	a := New("archive")
	a.root = serverURL
	return a
}

func TestArchiveSearch(t *testing.T) {
	Convey("Archive search", t, func() {
		var gotPath, gotQuery, gotRows string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("q")
			gotRows = r.URL.Query().Get("rows")
			fmt.Fprint(w, `{"response":{"docs":[
				{"identifier":"moby_dick_librivox","title":"Moby Dick","creator":["Herman Melville"]},
				{"title":"No Identifier Entry"},
				{"identifier":"white_fang_librivox","title":["White Fang"]}
			]}}`)
		}))
		defer server.Close()

		a := newTestArchive(server.URL)
		defer a.Close()

		Convey("Should map docs with identifiers to items", func() {
			items, err := a.Search(context.Background(), "moby dick")
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/advancedsearch.php")
			So(gotQuery, ShouldContainSubstring, "collection:librivoxaudio")
			So(items, ShouldHaveLength, 2)
			So(items[0].Title, ShouldEqual, "Moby Dick")
			So(items[0].URL, ShouldEqual, server.URL+"/details/moby_dick_librivox")
			So(items[1].Title, ShouldEqual, "White Fang")
		})

		Convey("Should request a bounded row count when no result limit is configured", func() {
			_, err := a.Search(context.Background(), "moby dick")
			So(err, ShouldBeNil)
			So(gotRows, ShouldEqual, "50")
		})

		Convey("Should degrade to empty results on request failure", func() {
			broken := newTestArchive("http://127.0.0.1:1")
			items, err := broken.Search(context.Background(), "anything")
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})
	})
}

func TestArchiveGetDetails(t *testing.T) {
	Convey("Archive details", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/metadata/moby_dick_librivox" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprint(w, `{
				"metadata":{"title":"Moby Dick","creator":"Herman Melville","description":["A whale of a tale."]},
				"files":[
					{"name":"mobydick_02_melville.mp3","title":"Chapter 02"},
					{"name":"mobydick_01_melville.mp3","title":"Chapter 01"},
					{"name":"mobydick_01_melville_64kb.mp3","title":"Chapter 01 (low)"},
					{"name":"mobydick_128kb.mp3"},
					{"name":"cover.jpg"},
					{"name":"mobydick_03_melville.ogg"}
				]
			}`)
		}))
		defer server.Close()

		a := newTestArchive(server.URL)
		defer a.Close()

		item := &source.AudioItem{
			Title:      "Moby Dick",
			SourceName: "archive",
			URL:        server.URL + "/details/moby_dick_librivox",
		}

		Convey("Should filter derived transcodes and sort chapters by title", func() {
			book, err := a.GetDetails(context.Background(), item)
			So(err, ShouldBeNil)
			So(book.Chapters, ShouldHaveLength, 3)
			So(book.Chapters[0].Title, ShouldEqual, "Chapter 01")
			So(book.Chapters[1].Title, ShouldEqual, "Chapter 02")
			// Untitled file falls back to its stem.
			So(book.Chapters[2].Title, ShouldEqual, "mobydick_03_melville")
			So(book.Chapters[0].URL, ShouldEqual, server.URL+"/download/moby_dick_librivox/mobydick_01_melville.mp3")
		})

		Convey("Should fill metadata and synthesize the cover URL", func() {
			book, err := a.GetDetails(context.Background(), item)
			So(err, ShouldBeNil)
			So(book.Author, ShouldEqual, "Herman Melville")
			So(book.Description, ShouldEqual, "A whale of a tale.")
			So(book.CoverImageURL, ShouldEqual, server.URL+"/services/img/moby_dick_librivox")
		})

		Convey("Should report not found for unknown identifiers", func() {
			missing := &source.AudioItem{Title: "x", SourceName: "archive", URL: server.URL + "/details/not_there"}
			_, err := a.GetDetails(context.Background(), missing)
			So(err, ShouldEqual, source.ErrNotFound)
		})

		Convey("Should report not found when no playable files survive", func() {
			empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"metadata":{"title":"Empty"},"files":[{"name":"cover.jpg"},{"name":"x_64kb.mp3"}]}`)
			}))
			defer empty.Close()

			b := newTestArchive(empty.URL)
			_, err := b.GetDetails(context.Background(), &source.AudioItem{URL: empty.URL + "/details/empty_book"})
			So(err, ShouldEqual, source.ErrNotFound)
		})

		Convey("Should report not found for an empty identifier", func() {
			_, err := a.GetDetails(context.Background(), &source.AudioItem{URL: ""})
			So(err, ShouldEqual, source.ErrNotFound)
		})
	})
}
