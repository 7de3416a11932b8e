package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rymflux-cli/rymflux/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for empty result list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestParseBookPicker(t *testing.T) {
	items := []*source.AudioItem{
		{Title: "Dracula", SourceName: "a"},
		{Title: "Carmilla", SourceName: "a"},
		{Title: "Frankenstein", SourceName: "b"},
	}

	Convey("ParseBookPicker", t, func() {
		Convey("first picks the first item", func() {
			picker, err := ParseBookPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Dracula")
		})

		Convey("last picks the last item", func() {
			picker, err := ParseBookPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Frankenstein")
		})

		Convey("exact matches by title", func() {
			picker, err := ParseBookPicker("exact", "Carmilla")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Carmilla")
			So(picker(items[:1]), ShouldBeNil)
		})

		Convey("index clamps to the last item", func() {
			picker, err := ParseBookPicker("index", "9")
			So(err, ShouldBeNil)
			So(picker(items).Title, ShouldEqual, "Frankenstein")
		})

		Convey("unknown kind is rejected", func() {
			_, err := ParseBookPicker("best", "")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseChaptersFilter(t *testing.T) {
	chapters := []*source.Chapter{
		{Title: "Opening Credits", Index: 1},
		{Title: "Chapter 01", Index: 2},
		{Title: "Chapter 02", Index: 3},
		{Title: "Chapter 03", Index: 4},
	}

	Convey("ParseChaptersFilter", t, func() {
		Convey("all keeps everything", func() {
			filter, err := ParseChaptersFilter("all")
			So(err, ShouldBeNil)
			filtered, err := filter(chapters)
			So(err, ShouldBeNil)
			So(filtered, ShouldHaveLength, 4)
		})

		Convey("range selects an inclusive window", func() {
			filter, err := ParseChaptersFilter("1-2")
			So(err, ShouldBeNil)
			filtered, err := filter(chapters)
			So(err, ShouldBeNil)
			So(filtered, ShouldHaveLength, 2)
			So(filtered[0].Title, ShouldEqual, "Chapter 01")
		})

		Convey("substring matches case-insensitively", func() {
			filter, err := ParseChaptersFilter("@credits@")
			So(err, ShouldBeNil)
			filtered, err := filter(chapters)
			So(err, ShouldBeNil)
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].Title, ShouldEqual, "Opening Credits")
		})

		Convey("out of range index yields nothing", func() {
			filter, err := ParseChaptersFilter("42")
			So(err, ShouldBeNil)
			filtered, err := filter(chapters)
			So(err, ShouldBeNil)
			So(filtered, ShouldBeEmpty)
		})

		Convey("garbage is rejected", func() {
			_, err := ParseChaptersFilter("@unterminated")
			So(err, ShouldNotBeNil)
		})
	})
}
