package custom

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rymflux-cli/rymflux/source"
	. "github.com/smartystreets/goconvey/convey"
)

func testRules() Rules {
	return Rules{
		Search: SearchRules{
			URL:                   "/search?q={query}",
			ItemContainerSelector: "div.result",
			TitleSelector:         "h3",
			URLSelector:           "a",
		},
		Details: DetailsRules{
			ChapterContainerSelector: "li.chapter",
			ChapterURLSelector:       "audio",
			AuthorSelector:           ".author",
			DescriptionSelector:      ".summary",
			CoverImageURLSelector:    "img.cover",
		},
	}
}

func TestScraperSearch(t *testing.T) {
	Convey("Scraper search", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
				<div class="result"><h3> Moby Dick </h3><a href="/book/42">open</a></div>
				<div class="result"><h3>No Link Here</h3></div>
				<div class="result"><h3>White Fang</h3><a href="/book/7">open</a></div>
			</body></html>`)
		}))
		defer server.Close()

		s, err := New("testsource", server.URL, testRules())
		So(err, ShouldBeNil)
		defer s.Close()

		Convey("Should extract items and resolve relative links", func() {
			items, err := s.Search(context.Background(), "moby dick scraper search test")
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			So(items[0].Title, ShouldEqual, "Moby Dick")
			So(items[0].URL, ShouldEqual, server.URL+"/book/42")
			So(items[0].SourceName, ShouldEqual, "testsource")
			So(items[1].Title, ShouldEqual, "White Fang")
		})

		Convey("Should degrade to empty results on unreachable host", func() {
			broken, err := New("broken", "http://127.0.0.1:1", testRules())
			So(err, ShouldBeNil)
			items, err := broken.Search(context.Background(), "anything scraper unreachable test")
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})
	})
}

func TestScraperGetDetails(t *testing.T) {
	Convey("Scraper details", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
				<span class="author">Herman Melville</span>
				<p class="summary">A whale of a tale.</p>
				<img class="cover" src="https://cdn.example.com/moby.jpg"/>
				<ul>
					<li class="chapter"><audio src="https://cdn.example.com/1.mp3"></audio></li>
					<li class="chapter"><span>no audio element resolves here</span></li>
					<li class="chapter"><audio src="https://cdn.example.com/3.mp3"></audio></li>
				</ul>
			</body></html>`)
		}))
		defer server.Close()

		s, err := New("testsource", server.URL, testRules())
		So(err, ShouldBeNil)
		defer s.Close()

		item := &source.AudioItem{Title: "Moby Dick", SourceName: "testsource", URL: server.URL + "/book/42"}

		Convey("Should extract metadata and chapters", func() {
			book, err := s.GetDetails(context.Background(), item)
			So(err, ShouldBeNil)
			So(book.Author, ShouldEqual, "Herman Melville")
			So(book.Description, ShouldEqual, "A whale of a tale.")
			So(book.CoverImageURL, ShouldEqual, "https://cdn.example.com/moby.jpg")
		})

		Convey("Chapter numbering should count skipped containers", func() {
			book, err := s.GetDetails(context.Background(), item)
			So(err, ShouldBeNil)
			So(book.Chapters, ShouldHaveLength, 2)
			So(book.Chapters[0].Title, ShouldEqual, "Chapter 1")
			So(book.Chapters[1].Title, ShouldEqual, "Chapter 3")
		})

		Convey("Should report not found on request failure", func() {
			broken := &source.AudioItem{Title: "x", SourceName: "testsource", URL: "http://127.0.0.1:1/book"}
			_, err := s.GetDetails(context.Background(), broken)
			So(err, ShouldEqual, source.ErrNotFound)
		})
	})
}
