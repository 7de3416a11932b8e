// Package history provides the implementation for tracking and persisting listening progress.
package history

import (
	"github.com/metafates/gache"
	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/rymflux-cli/rymflux/where"
)

// cacher provides an abstracted, disk-backed registry for playback progress records.
var cacher = gache.New[map[string]*SavedChapter](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of historical playback records from the persistent store.
func Get() (map[string]*SavedChapter, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedChapter), nil
	}
	return cached, nil
}

// Save persists the playback progress of a specific chapter to the history registry.
// One record per audiobook per source; replaying an earlier chapter never
// regresses the recorded progress.
func Save(chapter *source.Chapter, percentage float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedChapter(chapter)

	if existing, exists := saved[record.encode()]; exists {
		if percentage < existing.ListenedPercentage {
			percentage = existing.ListenedPercentage
		}
	}
	record.ListenedPercentage = percentage

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific playback record from the history registry.
func Remove(chapter *SavedChapter) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, chapter.encode())
	return cacher.Set(saved)
}
