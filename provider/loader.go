package provider

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/where"
	"github.com/spf13/viper"
)

// LoadConfigs reads the declarative source list from sources.yaml.
// A missing file yields an empty list, not an error.
func LoadConfigs() ([]SourceConfig, error) {
	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(where.SourcesFile())
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", where.SourcesFile(), err)
	}

	var configs []SourceConfig
	if err := v.UnmarshalKey("sources", &configs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", where.SourcesFile(), err)
	}
	return configs, nil
}

// Load builds the source registry from sources.yaml.
func Load() (*Registry, error) {
	configs, err := LoadConfigs()
	if err != nil {
		return nil, err
	}
	return NewRegistry(configs), nil
}

// DefaultConfigs returns the source list written by "sources init":
// the LibriVox archive plus a commented custom example in the file template.
func DefaultConfigs() []SourceConfig {
	return []SourceConfig{
		{Type: TypeArchive, Name: "librivox"},
	}
}

// DefaultSourcesFile is the sources.yaml template written on "sources init".
const DefaultSourcesFile = `# Audiobook sources, searched in the order listed here.
#
# Two source types are supported:
#
#   archive: the archive.org LibriVox collection. Needs only a name.
#   custom:  a rule-driven scraper for any audiobook site. Needs a base_url
#            and CSS selector rules for search and details pages.
#
sources:
  - type: archive
    name: librivox

  # - type: custom
  #   name: example
  #   base_url: https://audiobooks.example.com
  #   rules:
  #     search:
  #       url: /search?q={query}
  #       item_container_selector: div.book-card
  #       title_selector: h3.title
  #       url_selector: a.book-link
  #     details:
  #       chapter_container_selector: li.chapter
  #       chapter_url_selector: audio
  #       author_selector: span.author
  #       description_selector: div.summary
  #       cover_image_url_selector: img.cover
`

// WriteDefaultSourcesFile creates sources.yaml with the default template.
// Refuses to overwrite an existing file.
func WriteDefaultSourcesFile() error {
	path := where.SourcesFile()
	if exists, _ := filesystem.API().Exists(path); exists {
		return fmt.Errorf("%s already exists", path)
	}
	return filesystem.API().WriteFile(path, []byte(DefaultSourcesFile), 0644)
}
