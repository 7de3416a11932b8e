// Package metadata provides a client for the Google Books volumes API.
package metadata

import (
	"context"
	"time"

	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Lookup enriches an audiobook title with external metadata. It runs under
// its own deadline, independent of whatever deadline the caller's context
// carries, and never fails outward: every error degrades to None so that
// enrichment stays strictly optional.
func Lookup(ctx context.Context, title, author string) mo.Option[*Volume] {
	if !viper.GetBool(key.MetadataFetchBooks) {
		return mo.None[*Volume]()
	}

	timeout := viper.GetDuration(key.MetadataTimeout)
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	volume, err := FindClosest(ctx, title, author)
	if err != nil {
		log.Infof("metadata lookup for %q skipped: %v", title, err)
		return mo.None[*Volume]()
	}

	return mo.Some(volume)
}
