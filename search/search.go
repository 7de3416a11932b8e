// Package search implements the concurrent search fan-out across sources and
// the detail-merge stage that follows a selection.
package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/query"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/spf13/viper"
)

// ErrNoSources reports that the fan-out had nothing to query. Callers
// distinguish this from a legitimate empty result set.
var ErrNoSources = errors.New("no sources configured")

// DefaultTimeout bounds the whole fan-out when the configuration carries no
// usable value.
const DefaultTimeout = 10 * time.Second

// slot holds one source's outcome. Only slots marked done are collected, so
// a source finishing after the deadline can never slip results into a round
// that already gave up on it.
type slot struct {
	items []*source.AudioItem
	err   error
	done  bool
}

// All fans the query out to every source concurrently and flattens the
// results in source registration order. One overall deadline covers the whole
// round; sources still outstanding when it expires are dropped for this
// round, while the ones that already finished keep their results. A failing
// source is logged and excluded, never fatal to the round.
func All(ctx context.Context, sources []source.Source, searchQuery string) ([]*source.AudioItem, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	_ = query.Remember(searchQuery, 1)

	ctx, cancel := context.WithTimeout(ctx, Timeout())
	defer cancel()

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		slots = make([]slot, len(sources))
	)

	for i, s := range sources {
		wg.Add(1)
		go func(i int, s source.Source) {
			defer wg.Done()

			items, err := s.Search(ctx, searchQuery)

			mu.Lock()
			slots[i] = slot{items: items, err: err, done: true}
			mu.Unlock()
		}(i, s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warnf("search round hit its deadline, collecting settled sources only")
	}

	mu.Lock()
	defer mu.Unlock()

	var flattened []*source.AudioItem
	for i, s := range sources {
		current := slots[i]
		switch {
		case !current.done:
			log.Warnf("source %s did not finish in time, dropping it for this round", s.Name())
		case current.err != nil:
			log.Warnf("source %s failed: %v", s.Name(), current.err)
		default:
			flattened = append(flattened, current.items...)
		}
	}

	return flattened, nil
}

// Timeout returns the configured fan-out deadline.
func Timeout() time.Duration {
	timeout := viper.GetDuration(key.SearchTimeout)
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}
