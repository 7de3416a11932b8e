package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

// stubSource is an in-memory source with a scriptable search outcome.
type stubSource struct {
	name  string
	items []*source.AudioItem
	err   error
	delay time.Duration
}

func (s *stubSource) Name() string    { return s.name }
func (s *stubSource) BaseURL() string { return "https://" + s.name + ".example.com" }
func (s *stubSource) Close() error    { return nil }

func (s *stubSource) Search(ctx context.Context, query string) ([]*source.AudioItem, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, s.err
}

func (s *stubSource) GetDetails(ctx context.Context, item *source.AudioItem) (*source.Audiobook, error) {
	return nil, source.ErrNotFound
}

func item(title, sourceName string) *source.AudioItem {
	return &source.AudioItem{Title: title, SourceName: sourceName, URL: "https://example.com/" + title}
}

func TestAll(t *testing.T) {
	Convey("Search fan-out", t, func() {
		viper.Set(key.SearchTimeout, "2s")

		Convey("Should report ErrNoSources for an empty registry", func() {
			_, err := All(context.Background(), nil, "dracula")
			So(errors.Is(err, ErrNoSources), ShouldBeTrue)
		})

		Convey("Should flatten results in registration order, not completion order", func() {
			slow := &stubSource{name: "slow", delay: 200 * time.Millisecond, items: []*source.AudioItem{item("a", "slow")}}
			fast := &stubSource{name: "fast", items: []*source.AudioItem{item("b", "fast"), item("c", "fast")}}

			results, err := All(context.Background(), []source.Source{slow, fast}, "ordering test")
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 3)
			So(results[0].Title, ShouldEqual, "a")
			So(results[1].Title, ShouldEqual, "b")
			So(results[2].Title, ShouldEqual, "c")
		})

		Convey("Should isolate a failing source", func() {
			broken := &stubSource{name: "broken", err: errors.New("boom")}
			healthy := &stubSource{name: "healthy", items: []*source.AudioItem{item("kept", "healthy")}}

			results, err := All(context.Background(), []source.Source{broken, healthy}, "isolation test")
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 1)
			So(results[0].Title, ShouldEqual, "kept")
		})

		Convey("Should keep settled sources and drop outstanding ones on timeout", func() {
			viper.Set(key.SearchTimeout, "150ms")
			quick := &stubSource{name: "quick", items: []*source.AudioItem{item("settled", "quick")}}
			stuck := &stubSource{name: "stuck", delay: 5 * time.Second, items: []*source.AudioItem{item("late", "stuck")}}

			start := time.Now()
			results, err := All(context.Background(), []source.Source{quick, stuck}, "timeout test")
			So(err, ShouldBeNil)
			So(time.Since(start), ShouldBeLessThan, time.Second)
			So(results, ShouldHaveLength, 1)
			So(results[0].Title, ShouldEqual, "settled")
		})

		Convey("An empty round is a valid outcome", func() {
			quiet := &stubSource{name: "quiet", items: []*source.AudioItem{}}
			results, err := All(context.Background(), []source.Source{quiet}, "empty round test")
			So(err, ShouldBeNil)
			So(results, ShouldBeEmpty)
		})
	})
}

func TestTimeout(t *testing.T) {
	Convey("Timeout", t, func() {
		Convey("Should fall back to the default on a missing value", func() {
			viper.Set(key.SearchTimeout, "")
			So(Timeout(), ShouldEqual, DefaultTimeout)
		})

		Convey("Should honor the configured duration", func() {
			viper.Set(key.SearchTimeout, "3s")
			So(Timeout(), ShouldEqual, 3*time.Second)
		})
	})
}
