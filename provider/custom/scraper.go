// Package custom implements the rule-driven HTML scraper source.
package custom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rymflux-cli/rymflux/internal/cache"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/network"
	"github.com/rymflux-cli/rymflux/source"
)

// Scraper is a source.Source driven entirely by declarative selector rules.
// One instance per configured site; each owns its HTTP client.
type Scraper struct {
	name    string
	baseURL *url.URL
	rules   Rules
	client  *http.Client
}

// New constructs a rule-driven source for the given site.
func New(name, baseURL string, rules Rules) (*Scraper, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("source %s: parse base url: %w", name, err)
	}

	return &Scraper{
		name:    name,
		baseURL: base,
		rules:   rules,
		client:  network.NewBrowserClient(),
	}, nil
}

// Name returns the provider name.
func (s *Scraper) Name() string {
	return s.name
}

// BaseURL returns the root URL relative links are resolved against.
func (s *Scraper) BaseURL() string {
	return s.baseURL.String()
}

// Close releases idle connections. Idempotent.
func (s *Scraper) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// Search scrapes the site's search page for audiobooks matching the query.
// Transport and parse failures degrade to an empty result set.
func (s *Scraper) Search(ctx context.Context, query string) ([]*source.AudioItem, error) {
	cacheKey := cache.GenerateKey(query, s.name)
	var cached []*source.AudioItem
	if cache.Read(cacheKey, &cached) {
		return cached, nil
	}

	target, err := s.searchURL(query)
	if err != nil {
		log.Warnf("source %s: %v", s.name, err)
		return []*source.AudioItem{}, nil
	}

	doc, err := s.fetchDocument(ctx, target)
	if err != nil {
		log.Warnf("source %s: search %q: %v", s.name, query, err)
		return []*source.AudioItem{}, nil
	}

	items := make([]*source.AudioItem, 0)
	doc.Find(s.rules.Search.ItemContainerSelector).Each(func(_ int, container *goquery.Selection) {
		title := strings.TrimSpace(container.Find(s.rules.Search.TitleSelector).First().Text())
		href, ok := container.Find(s.rules.Search.URLSelector).First().Attr("href")
		if title == "" || !ok || href == "" {
			// Malformed result card, skip it.
			return
		}

		items = append(items, &source.AudioItem{
			Title:      title,
			SourceName: s.name,
			URL:        s.resolve(href),
		})
	})

	if len(items) > 0 {
		_ = cache.Write(cacheKey, items)
	}
	return items, nil
}

// GetDetails scrapes the item's page for metadata and chapters.
// Missing metadata selectors leave fields empty; only a failed page request
// makes the whole lookup fail.
func (s *Scraper) GetDetails(ctx context.Context, item *source.AudioItem) (*source.Audiobook, error) {
	doc, err := s.fetchDocument(ctx, item.URL)
	if err != nil {
		log.Warnf("source %s: details for %q: %v", s.name, item.Title, err)
		return nil, source.ErrNotFound
	}

	book := &source.Audiobook{AudioItem: *item}

	d := s.rules.Details
	if d.AuthorSelector != "" {
		book.Author = strings.TrimSpace(doc.Find(d.AuthorSelector).First().Text())
	}
	if d.DescriptionSelector != "" {
		book.Description = strings.TrimSpace(doc.Find(d.DescriptionSelector).First().Text())
	}
	if d.CoverImageURLSelector != "" {
		if src, ok := doc.Find(d.CoverImageURLSelector).First().Attr("src"); ok {
			book.CoverImageURL = src
		}
	}

	doc.Find(d.ChapterContainerSelector).Each(func(i int, container *goquery.Selection) {
		// The chapter number counts every container, including skipped
		// ones, so numbering stays aligned with the page layout.
		src, ok := container.Find(d.ChapterURLSelector).First().Attr("src")
		if !ok || src == "" {
			return
		}

		book.Chapters = append(book.Chapters, &source.Chapter{
			Title:     fmt.Sprintf("Chapter %d", i+1),
			URL:       src,
			Index:     uint16(i + 1),
			Audiobook: book,
		})
	})

	return book, nil
}

// searchURL substitutes the query into the rule template and resolves it
// against the base URL.
func (s *Scraper) searchURL(query string) (string, error) {
	raw := strings.ReplaceAll(s.rules.Search.URL, "{query}", url.QueryEscape(query))
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse search url template: %w", err)
	}
	return s.baseURL.ResolveReference(parsed).String(), nil
}

// resolve turns a possibly relative href into an absolute URL.
func (s *Scraper) resolve(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	return s.baseURL.ResolveReference(parsed).String()
}

func (s *Scraper) fetchDocument(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
