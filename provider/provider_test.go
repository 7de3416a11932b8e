package provider

import (
	"testing"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/provider/custom"
	"github.com/rymflux-cli/rymflux/where"
	. "github.com/smartystreets/goconvey/convey"
)

func validRules() *custom.Rules {
	return &custom.Rules{
		Search: custom.SearchRules{
			URL:                   "/search?q={query}",
			ItemContainerSelector: "div.result",
			TitleSelector:         "h3",
			URLSelector:           "a",
		},
		Details: custom.DetailsRules{
			ChapterContainerSelector: "li.chapter",
			ChapterURLSelector:       "audio",
		},
	}
}

func TestSourceConfigBuild(t *testing.T) {
	Convey("SourceConfig.Build", t, func() {
		Convey("archive needs only a name", func() {
			s, ok := SourceConfig{Type: TypeArchive, Name: "librivox"}.Build()
			So(ok, ShouldBeTrue)
			So(s.Name(), ShouldEqual, "librivox")
			So(s.Close(), ShouldBeNil)
		})

		Convey("archive without a name is dropped", func() {
			_, ok := SourceConfig{Type: TypeArchive}.Build()
			So(ok, ShouldBeFalse)
		})

		Convey("custom needs name, base_url and complete rules", func() {
			cfg := SourceConfig{Type: TypeCustom, Name: "site", BaseURL: "https://example.com", Rules: validRules()}
			s, ok := cfg.Build()
			So(ok, ShouldBeTrue)
			So(s.BaseURL(), ShouldEqual, "https://example.com")
			So(s.Close(), ShouldBeNil)

			cfg.BaseURL = ""
			_, ok = cfg.Build()
			So(ok, ShouldBeFalse)

			cfg.BaseURL = "https://example.com"
			cfg.Rules = &custom.Rules{}
			_, ok = cfg.Build()
			So(ok, ShouldBeFalse)
		})

		Convey("unknown types are dropped", func() {
			_, ok := SourceConfig{Type: "rss", Name: "feed"}.Build()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Registry", t, func() {
		configs := []SourceConfig{
			{Type: TypeCustom, Name: "site", BaseURL: "https://example.com", Rules: validRules()},
			{Type: "bogus", Name: "dropped"},
			{Type: TypeArchive, Name: "librivox"},
		}

		r := NewRegistry(configs)
		defer r.Close()

		Convey("keeps valid sources in configuration order", func() {
			So(r.Len(), ShouldEqual, 2)
			So(r.Names(), ShouldResemble, []string{"site", "librivox"})
		})

		Convey("Get routes by name", func() {
			s, ok := r.Get("librivox")
			So(ok, ShouldBeTrue)
			So(s.Name(), ShouldEqual, "librivox")

			_, ok = r.Get("absent")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestLoadConfigs(t *testing.T) {
	Convey("LoadConfigs", t, func() {
		filesystem.SetMemMapFs()

		Convey("missing file yields an empty list", func() {
			configs, err := LoadConfigs()
			So(err, ShouldBeNil)
			So(configs, ShouldBeEmpty)
		})

		Convey("reads sources from yaml", func() {
			yaml := `sources:
  - type: archive
    name: librivox
  - type: custom
    name: site
    base_url: https://example.com
    rules:
      search:
        url: /search?q={query}
        item_container_selector: div.result
        title_selector: h3
        url_selector: a
      details:
        chapter_container_selector: li.chapter
        chapter_url_selector: audio
`
			So(filesystem.API().WriteFile(where.SourcesFile(), []byte(yaml), 0644), ShouldBeNil)

			configs, err := LoadConfigs()
			So(err, ShouldBeNil)
			So(configs, ShouldHaveLength, 2)
			So(configs[0].Type, ShouldEqual, TypeArchive)
			So(configs[1].Rules.Search.ItemContainerSelector, ShouldEqual, "div.result")
		})

		Convey("default template parses and builds", func() {
			So(filesystem.API().WriteFile(where.SourcesFile(), []byte(DefaultSourcesFile), 0644), ShouldBeNil)

			configs, err := LoadConfigs()
			So(err, ShouldBeNil)
			So(configs, ShouldHaveLength, 1)

			r := NewRegistry(configs)
			defer r.Close()
			So(r.Names(), ShouldResemble, []string{"librivox"})
		})
	})
}
