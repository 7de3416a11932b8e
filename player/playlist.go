// Package player defines a unified abstraction layer for audio playback engines.
package player

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/rymflux-cli/rymflux/where"
)

// WritePlaylist renders the audiobook's chapters from the given one onward
// into an m3u file under the temp directory, so mpv advances through the
// rest of the book on its own. Returns the playlist path.
func WritePlaylist(book *source.Audiobook, from *source.Chapter) (string, error) {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")

	started := from == nil
	for _, chapter := range book.Chapters {
		if !started {
			if chapter == from || chapter.URL == from.URL {
				started = true
			} else {
				continue
			}
		}

		fmt.Fprintf(&b, "#EXTINF:-1,%s - %s\n", book.Title, chapter.Title)
		b.WriteString(chapter.URL)
		b.WriteString("\n")
	}

	if started && b.Len() > len("#EXTM3U\n") {
		path := filepath.Join(where.Temp(), book.Dirname()+".m3u")
		if err := filesystem.API().WriteFile(path, []byte(b.String()), 0644); err != nil {
			return "", fmt.Errorf("write playlist: %w", err)
		}
		return path, nil
	}

	return "", fmt.Errorf("no chapters to play for %q", book.Title)
}
