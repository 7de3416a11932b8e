package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/metadata"
	"github.com/rymflux-cli/rymflux/provider"
	"github.com/rymflux-cli/rymflux/provider/custom"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func testRegistry(baseURL string) *provider.Registry {
	return provider.NewRegistry([]provider.SourceConfig{
		{
			Type:    provider.TypeCustom,
			Name:    "site",
			BaseURL: baseURL,
			Rules: &custom.Rules{
				Search: custom.SearchRules{
					URL:                   "/search?q={query}",
					ItemContainerSelector: "div.result",
					TitleSelector:         "h3",
					URLSelector:           "a",
				},
				Details: custom.DetailsRules{
					ChapterContainerSelector: "li.chapter",
					ChapterURLSelector:       "audio",
					AuthorSelector:           ".author",
				},
			},
		},
	})
}

func TestDetails(t *testing.T) {
	Convey("Detail-merge stage", t, func() {
		viper.Set(key.MetadataFetchBooks, false)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
				<span class="author">Scraped Author</span>
				<ul><li class="chapter"><audio src="https://cdn.example.com/1.mp3"></audio></li></ul>
			</body></html>`)
		}))
		defer server.Close()

		registry := testRegistry(server.URL)
		defer registry.Close()

		Convey("Unknown source names are a caller-visible error", func() {
			orphan := &source.AudioItem{Title: "x", SourceName: "gone", URL: server.URL}
			_, err := Details(context.Background(), registry, orphan)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown source")
		})

		Convey("Routes back to the originating source for chapters", func() {
			selected := &source.AudioItem{Title: "Moby Dick", SourceName: "site", URL: server.URL + "/book/42"}
			book, err := Details(context.Background(), registry, selected)
			So(err, ShouldBeNil)
			So(book.Author, ShouldEqual, "Scraped Author")
			So(book.Chapters, ShouldHaveLength, 1)
		})

		Convey("A failed detail lookup fails the whole stage", func() {
			registry := testRegistry("http://127.0.0.1:1")
			defer registry.Close()

			selected := &source.AudioItem{Title: "x", SourceName: "site", URL: "http://127.0.0.1:1/book"}
			_, err := Details(context.Background(), registry, selected)
			So(err, ShouldEqual, source.ErrNotFound)
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Metadata merge precedence", t, func() {
		scraped := func() *source.Audiobook {
			return &source.Audiobook{
				AudioItem:     source.AudioItem{Title: "Moby Dick"},
				Author:        "Scraped Author",
				Description:   "Scraped description.",
				CoverImageURL: "https://site.example.com/cover.jpg",
			}
		}

		Convey("Absent metadata keeps every scraped value", func() {
			book := scraped()
			merge(book, mo.None[*metadata.Volume]())
			So(book.Author, ShouldEqual, "Scraped Author")
			So(book.Description, ShouldEqual, "Scraped description.")
		})

		Convey("Present fields override, missing fields keep scraped values", func() {
			volume := &metadata.Volume{}
			volume.VolumeInfo.Authors = []string{"Herman Melville"}
			volume.VolumeInfo.ImageLinks.Thumbnail = "https://books.example.com/moby.jpg"

			book := scraped()
			merge(book, mo.Some(volume))
			So(book.Author, ShouldEqual, "Herman Melville")
			// No external description, scraped one survives.
			So(book.Description, ShouldEqual, "Scraped description.")
			So(book.CoverImageURL, ShouldEqual, "https://books.example.com/moby.jpg")
		})
	})
}
