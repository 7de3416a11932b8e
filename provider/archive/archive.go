// Package archive implements the archive.org audiobook source backed by the
// LibriVox collection.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/network"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	// Name identifies this source in configs and detail-merge routing.
	Name = "archive"

	root       = "https://archive.org"
	collection = "librivoxaudio"

	// defaultRows bounds search requests when no result limit is configured.
	defaultRows = 50
)

// searchResponse mirrors the advancedsearch.php JSON envelope.
type searchResponse struct {
	Response struct {
		Docs []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	Identifier string     `json:"identifier"`
	Title      flexString `json:"title"`
	Creator    flexString `json:"creator"`
}

// metadataResponse mirrors the /metadata/{identifier} JSON document.
type metadataResponse struct {
	Metadata struct {
		Title       flexString `json:"title"`
		Creator     flexString `json:"creator"`
		Description flexString `json:"description"`
	} `json:"metadata"`
	Files []metadataFile `json:"files"`
}

type metadataFile struct {
	Name  string     `json:"name"`
	Title flexString `json:"title"`
}

// Archive is the fixed archive.org source. Its base URL is hardcoded and
// ignores whatever the configuration carries.
type Archive struct {
	name   string
	root   string
	client *http.Client
}

// New constructs the archive.org source under the given display name.
func New(name string) *Archive {
	if name == "" {
		name = Name
	}
	return &Archive{
		name:   name,
		root:   root,
		client: network.NewClient(),
	}
}

func (a *Archive) Name() string {
	return a.name
}

func (a *Archive) BaseURL() string {
	return a.root
}

// Close releases idle connections. Idempotent.
func (a *Archive) Close() error {
	a.client.CloseIdleConnections()
	return nil
}

// Search queries the advanced-search endpoint for LibriVox audiobooks.
// Request and parse failures degrade to an empty result set.
func (a *Archive) Search(ctx context.Context, query string) ([]*source.AudioItem, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("collection:%s AND title:(%s)", collection, query))
	params.Add("fl[]", "identifier")
	params.Add("fl[]", "title")
	params.Add("fl[]", "creator")
	rows := viper.GetInt(key.SearchResultLimit)
	if rows <= 0 {
		rows = defaultRows
	}
	params.Set("rows", strconv.Itoa(rows))
	params.Set("output", "json")

	var parsed searchResponse
	if err := a.fetchJSON(ctx, a.root+"/advancedsearch.php?"+params.Encode(), &parsed); err != nil {
		log.Warnf("source %s: search %q: %v", a.name, query, err)
		return []*source.AudioItem{}, nil
	}

	items := make([]*source.AudioItem, 0, len(parsed.Response.Docs))
	for _, doc := range parsed.Response.Docs {
		if doc.Identifier == "" {
			continue
		}

		title := doc.Title.First()
		if title == "" {
			title = doc.Identifier
		}

		items = append(items, &source.AudioItem{
			Title:      title,
			SourceName: a.name,
			URL:        fmt.Sprintf("%s/details/%s", a.root, doc.Identifier),
		})
	}
	return items, nil
}

// GetDetails resolves an item into an audiobook via the per-identifier
// metadata document. Returns ErrNotFound when the identifier is missing,
// the request fails, or no playable files survive the quality filter.
func (a *Archive) GetDetails(ctx context.Context, item *source.AudioItem) (*source.Audiobook, error) {
	identifier := a.identifierOf(item)
	if identifier == "" {
		return nil, source.ErrNotFound
	}

	var parsed metadataResponse
	if err := a.fetchJSON(ctx, fmt.Sprintf("%s/metadata/%s", a.root, identifier), &parsed); err != nil {
		log.Warnf("source %s: metadata for %s: %v", a.name, identifier, err)
		return nil, source.ErrNotFound
	}

	book := &source.Audiobook{
		AudioItem: source.AudioItem{
			Title:      item.Title,
			SourceName: a.name,
			URL:        item.URL,
		},
		Author:        "Unknown",
		CoverImageURL: fmt.Sprintf("%s/services/img/%s", a.root, identifier),
	}

	if title := parsed.Metadata.Title.First(); title != "" {
		book.Title = title
	}
	if creator := parsed.Metadata.Creator.String(); creator != "" {
		book.Author = creator
	}
	book.Description = parsed.Metadata.Description.First()

	for _, file := range parsed.Files {
		if !playable(file.Name) {
			continue
		}

		title := file.Title.First()
		if title == "" {
			title = strings.TrimSuffix(path.Base(file.Name), path.Ext(file.Name))
		}

		book.Chapters = append(book.Chapters, &source.Chapter{
			Title:     title,
			URL:       fmt.Sprintf("%s/download/%s/%s", a.root, identifier, file.Name),
			Audiobook: book,
		})
	}

	if len(book.Chapters) == 0 {
		return nil, source.ErrNotFound
	}

	// The raw file order is not track order; lexicographic titles derived
	// from the archive's file naming approximate it.
	slices.SortFunc(book.Chapters, func(a, b *source.Chapter) int {
		return strings.Compare(a.Title, b.Title)
	})
	for i, chapter := range book.Chapters {
		chapter.Index = uint16(i + 1)
	}

	return book, nil
}

// identifierOf extracts the archive identifier from the item's details URL.
func (a *Archive) identifierOf(item *source.AudioItem) string {
	trimmed := strings.TrimRight(item.URL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return strings.TrimSpace(trimmed)
	}
	return strings.TrimSpace(trimmed[idx+1:])
}

// playable filters for primary-quality audio files, excluding the derived
// 64kb/128kb transcodes the archive generates alongside the originals.
func playable(name string) bool {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".mp3") && !strings.HasSuffix(lower, ".ogg") {
		return false
	}
	return !strings.Contains(lower, "64kb") && !strings.Contains(lower, "128kb")
}

func (a *Archive) fetchJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
