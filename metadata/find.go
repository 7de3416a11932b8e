// Package metadata provides a client for the Google Books volumes API.
package metadata

import (
	"context"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/samber/lo"
)

// FindClosest returns the volume whose title is closest to the given one.
// It levenshtein compares the given title with every candidate the search
// returned.
func FindClosest(ctx context.Context, title, author string) (*Volume, error) {
	title = normalizedTitle(title)

	volumes, err := SearchByTitle(ctx, title, author)
	if err != nil {
		return nil, err
	}

	if len(volumes) == 0 {
		err := fmt.Errorf("no results found on google books for %q", title)
		log.Error(err)
		return nil, err
	}

	// Apply Levenshtein distance to identify the most relevant match from search results.
	closest := lo.MinBy(volumes, func(a, b *Volume) bool {
		return levenshtein.Distance(
			title,
			normalizedTitle(a.Name()),
		) < levenshtein.Distance(
			title,
			normalizedTitle(b.Name()),
		)
	})

	log.Info("Found closest match: " + closest.Name())
	return closest, nil
}
