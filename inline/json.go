// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/rymflux-cli/rymflux/metadata"
	"github.com/rymflux-cli/rymflux/source"
)

type Book struct {
	// Source is the name of the provider.
	Source string `json:"source"`
	// Item is the search result as the source returned it.
	Item *source.AudioItem `json:"item"`
	// Audiobook holds chapters and description when details were fetched.
	Audiobook *source.Audiobook `json:"audiobook,omitempty"`
	// Metadata is the matched external volume (optional).
	Metadata *metadata.Volume `json:"metadata,omitempty"`
}

type Output struct {
	Query  string  `json:"query"`
	Result []*Book `json:"result"`
}

func asJson(books []*Book, query string) ([]byte, error) {
	if books == nil {
		books = []*Book{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: books,
	})
}
