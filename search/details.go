package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/metadata"
	"github.com/rymflux-cli/rymflux/provider"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/samber/mo"
)

// Details resolves a selected item into a full audiobook. The originating
// source's detail lookup and the external metadata lookup run concurrently;
// the former is mandatory, the latter strictly optional. A metadata failure
// or timeout never cancels or corrupts the chapter lookup.
func Details(ctx context.Context, registry *provider.Registry, item *source.AudioItem) (*source.Audiobook, error) {
	s, ok := registry.Get(item.SourceName)
	if !ok {
		return nil, fmt.Errorf("unknown source %q for item %q", item.SourceName, item.Title)
	}

	var (
		wg     sync.WaitGroup
		book   *source.Audiobook
		err    error
		volume mo.Option[*metadata.Volume]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		book, err = s.GetDetails(ctx, item)
	}()
	go func() {
		defer wg.Done()
		// Carries its own deadline so a slow metadata API cannot hold the
		// chapter lookup hostage.
		volume = metadata.Lookup(ctx, item.Title, "")
	}()
	wg.Wait()

	if err != nil {
		return nil, err
	}

	merge(book, volume)
	return book, nil
}

// merge overrides the scraped metadata with the external record where the
// latter actually has something to say. Scraped values survive any gap.
func merge(book *source.Audiobook, volume mo.Option[*metadata.Volume]) {
	v, ok := volume.Get()
	if !ok {
		return
	}

	log.Infof("merging google books metadata into %q", book.Title)

	if authors := strings.TrimSpace(v.Author()); authors != "" {
		book.Author = authors
	}
	if description := v.VolumeInfo.Description; description != "" {
		book.Description = description
	}
	if thumbnail := v.Thumbnail(); thumbnail != "" {
		book.CoverImageURL = thumbnail
	}
}
