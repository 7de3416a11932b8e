// Package metadata provides a client for the Google Books volumes API.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/network"
)

// apiURL is the Google Books volumes endpoint. A variable so tests can point
// it at a local server.
var apiURL = "https://www.googleapis.com/books/v1/volumes"

// maxResults bounds how many candidate volumes one lookup considers.
const maxResults = 5

// searchResponse defines the anticipated JSON response structure for volume searches.
type searchResponse struct {
	TotalItems int       `json:"totalItems"`
	Items      []*Volume `json:"items"`
}

// SearchByTitle returns volumes matching the given title, optionally narrowed
// by author. Results are cached to not spam the API.
func SearchByTitle(ctx context.Context, title, author string) ([]*Volume, error) {
	title = normalizedTitle(title)

	if _, failed := failCacher.Get(cacheKey(title, author)).Get(); failed {
		return nil, fmt.Errorf("lookup recently failed for %s", title)
	}

	if volumes, ok := searchCacher.Get(cacheKey(title, author)).Get(); ok {
		return volumes, nil
	}

	log.Infof("Searching google books for %q", title)

	q := fmt.Sprintf("intitle:%s", title)
	if author != "" {
		q += fmt.Sprintf(" inauthor:%s", author)
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("printType", "books")
	if apiKey := APIKey(); apiKey != "" {
		params.Set("key", apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		_ = failCacher.Set(cacheKey(title, author), true)
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_ = failCacher.Set(cacheKey(title, author), true)
		log.Error("Google books returned status code " + strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error(err)
		return nil, err
	}

	volumes := response.Items
	if volumes == nil {
		volumes = []*Volume{}
	}

	log.Infof("Got %d volumes from google books for %q", len(volumes), title)
	_ = searchCacher.Set(cacheKey(title, author), volumes)
	return volumes, nil
}

func cacheKey(title, author string) string {
	if author == "" {
		return title
	}
	return title + "|" + normalizedTitle(author)
}
