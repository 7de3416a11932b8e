// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rymflux-cli/rymflux/provider"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/rymflux-cli/rymflux/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	BookPicker     func([]*source.AudioItem) *source.AudioItem
	ChaptersFilter func([]*source.Chapter) ([]*source.Chapter, error)
)

type Options struct {
	Out             io.Writer
	Registry        *provider.Registry
	IncludeMetadata bool
	Json            bool
	Query           string
	BookPicker      mo.Option[BookPicker]
	ChaptersFilter  mo.Option[ChaptersFilter]
	Chapters        bool
}

func ParseBookPicker(kind, value string) (BookPicker, error) {
	switch kind {
	case "first":
		return func(items []*source.AudioItem) *source.AudioItem {
			if len(items) == 0 {
				return nil
			}
			return items[0]
		}, nil
	case "last":
		return func(items []*source.AudioItem) *source.AudioItem {
			if len(items) == 0 {
				return nil
			}
			return items[len(items)-1]
		}, nil
	case "exact":
		return func(items []*source.AudioItem) *source.AudioItem {
			for _, item := range items {
				if item.Title == value {
					return item
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(items []*source.AudioItem) *source.AudioItem {
			if len(items) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(items)-1))
			return items[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseChaptersFilter parses a string description of a chapter filter.
// Format: "first", "last", "all", a range "1-5", a single index "5",
// or a substring match "@text@".
func ParseChaptersFilter(description string) (ChaptersFilter, error) {
	if description == "first" {
		return func(chapters []*source.Chapter) ([]*source.Chapter, error) {
			if len(chapters) == 0 {
				return chapters, nil
			}
			return chapters[:1], nil
		}, nil
	}
	if description == "last" {
		return func(chapters []*source.Chapter) ([]*source.Chapter, error) {
			if len(chapters) == 0 {
				return chapters, nil
			}
			return chapters[len(chapters)-1:], nil
		}, nil
	}
	if description == "all" {
		return func(chapters []*source.Chapter) ([]*source.Chapter, error) {
			return chapters, nil
		}, nil
	}

	// Range: "1-5"
	if strings.Contains(description, "-") {
		parts := strings.Split(description, "-")
		if len(parts) == 2 {
			from, err1 := strconv.ParseUint(parts[0], 10, 16)
			to, err2 := strconv.ParseUint(parts[1], 10, 16)
			if err1 == nil && err2 == nil {
				return func(chapters []*source.Chapter) ([]*source.Chapter, error) {
					start := util.Min(from, uint64(len(chapters)))
					end := util.Min(to+1, uint64(len(chapters)))
					if start > end {
						return []*source.Chapter{}, nil
					}
					return chapters[start:end], nil
				}, nil
			}
		}
	}

	// Substring: "@text@"
	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := description[1 : len(description)-1]
		return func(chapters []*source.Chapter) ([]*source.Chapter, error) {
			return lo.Filter(chapters, func(c *source.Chapter, _ int) bool {
				return strings.Contains(strings.ToLower(c.Title), strings.ToLower(sub))
			}), nil
		}, nil
	}

	// Single index: "5"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(chapters []*source.Chapter) ([]*source.Chapter, error) {
			if uint64(len(chapters)) <= idx {
				return []*source.Chapter{}, nil
			}
			return []*source.Chapter{chapters[idx]}, nil
		}, nil
	}

	return nil, fmt.Errorf("invalid chapter filter: %s", description)
}
