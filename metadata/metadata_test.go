package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

const volumesPayload = `{"totalItems":2,"items":[
	{"id":"a","volumeInfo":{"title":"Moby Dick; or, The Whale","authors":["Herman Melville"],
		"description":"Call me Ishmael.","imageLinks":{"thumbnail":"https://books.example.com/moby.jpg"}}},
	{"id":"b","volumeInfo":{"title":"Moby Dick Coloring Book","authors":["Someone Else"]}}
]}`

func TestFindClosest(t *testing.T) {
	Convey("FindClosest", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, volumesPayload)
		}))
		defer server.Close()

		restore := apiURL
		apiURL = server.URL
		defer func() { apiURL = restore }()

		Convey("Should pick the title with the smallest edit distance", func() {
			volume, err := FindClosest(context.Background(), "Moby Dick or The Whale", "")
			So(err, ShouldBeNil)
			So(volume.ID, ShouldEqual, "a")
			So(volume.Author(), ShouldEqual, "Herman Melville")
			So(volume.Thumbnail(), ShouldEqual, "https://books.example.com/moby.jpg")
		})

		Convey("Should fail when the API returns no items", func() {
			empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"totalItems":0}`)
			}))
			defer empty.Close()
			apiURL = empty.URL

			_, err := FindClosest(context.Background(), "a title nobody wrote ever", "")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, volumesPayload)
		}))
		defer server.Close()

		restore := apiURL
		apiURL = server.URL
		defer func() { apiURL = restore }()

		viper.Set(key.MetadataTimeout, "5s")

		Convey("Should return None when enrichment is disabled", func() {
			viper.Set(key.MetadataFetchBooks, false)
			So(Lookup(context.Background(), "Moby Dick", "").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should return the closest volume when enabled", func() {
			viper.Set(key.MetadataFetchBooks, true)
			volume, ok := Lookup(context.Background(), "Moby Dick; or, The Whale", "").Get()
			So(ok, ShouldBeTrue)
			So(volume.Name(), ShouldEqual, "Moby Dick; or, The Whale")
		})

		Convey("Should degrade to None on an unreachable API", func() {
			viper.Set(key.MetadataFetchBooks, true)
			apiURL = "http://127.0.0.1:1"
			So(Lookup(context.Background(), "an unreachable lookup title", "").IsAbsent(), ShouldBeTrue)
		})
	})
}
