// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"io"
	"os"

	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/metadata"
	"github.com/rymflux-cli/rymflux/search"
	"github.com/rymflux-cli/rymflux/source"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	ctx := context.Background()

	// Step 1: Execute concurrent searches across all configured providers.
	items, err := search.All(ctx, options.Registry.Sources(), options.Query)
	if err != nil {
		return err
	}

	// Step 2: Apply selection logic if a picker is defined.
	var selected []*source.AudioItem
	if options.BookPicker.IsPresent() {
		picker := options.BookPicker.MustGet()
		if choice := picker(items); choice != nil {
			selected = []*source.AudioItem{choice}
		}
	} else {
		selected = items
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, []*Book{}, options)
		}
		return nil // Nothing found
	}

	// Step 3: Retrieve chapters and metadata for the selected subset.
	var books []*Book
	if options.Chapters || options.Json {
		for _, item := range selected {
			book, err := prepareBook(ctx, item, options)
			if err != nil {
				return err
			}
			books = append(books, book)
		}
	}

	// Step 4: Dispatch the processed results to the configured output writer.
	if options.Json {
		if len(books) == 0 {
			for _, item := range selected {
				books = append(books, &Book{Source: item.SourceName, Item: item})
			}
		}
		return writeJson(options.Out, books, options)
	}

	if !options.Chapters {
		for _, item := range selected {
			if _, err := io.WriteString(options.Out, item.URL+"\n"); err != nil {
				return err
			}
		}
		return nil
	}

	for _, book := range books {
		for _, chapter := range book.Audiobook.Chapters {
			log.Info("Found " + chapter.Title)
			if _, err := io.WriteString(options.Out, chapter.URL+"\n"); err != nil {
				return err
			}
		}
	}

	return nil
}

func prepareBook(ctx context.Context, item *source.AudioItem, options *Options) (*Book, error) {
	book, err := search.Details(ctx, options.Registry, item)
	if err != nil {
		return nil, err
	}

	if options.ChaptersFilter.IsPresent() {
		filter := options.ChaptersFilter.MustGet()
		filtered, err := filter(book.Chapters)
		if err != nil {
			return nil, err
		}
		book.Chapters = filtered
	}

	prepared := &Book{
		Source:    item.SourceName,
		Item:      item,
		Audiobook: book,
	}

	if options.IncludeMetadata {
		prepared.Metadata = metadata.Lookup(ctx, book.Title, book.Author).OrElse(nil)
	}

	return prepared, nil
}

func writeJson(out io.Writer, books []*Book, options *Options) error {
	data, err := asJson(books, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
