// Package mini implements a lightweight, minimalist interface for audiobook search and playback.
package mini

import (
	"context"
	"errors"
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"github.com/rymflux-cli/rymflux/history"
	"github.com/rymflux-cli/rymflux/key"
	"github.com/rymflux-cli/rymflux/open"
	"github.com/rymflux-cli/rymflux/player"
	"github.com/rymflux-cli/rymflux/query"
	"github.com/rymflux-cli/rymflux/search"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/rymflux-cli/rymflux/style"
	"github.com/rymflux-cli/rymflux/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type state int

const (
	searchState state = iota + 1
	itemSelectState
	chapterSelectState
	playState
	historySelectState
	quitState
)

const (
	actionSearchAgain = "New search"
	actionBack        = "Back"
)

func (m *mini) handleSearchState() error {
	var searchLoop func() error
	title("Search Audiobooks")

	searchLoop = func() error {
		in, err := getInput("Title:", query.SuggestMany, func(s string) bool {
			return s != ""
		})
		if err != nil {
			return err
		}

		erase := progress("Searching all sources..")
		items, err := search.All(context.Background(), m.registry.Sources(), in)
		erase()
		if err != nil {
			return err
		}

		if limit := viper.GetInt(key.SearchResultLimit); limit > 0 && len(items) > limit {
			items = items[:limit]
		}

		if len(items) == 0 {
			fail("No search results found")
			return searchLoop()
		}

		m.query = in
		m.cachedItems[in] = items
		m.newState(itemSelectState)
		return nil
	}

	return searchLoop()
}

func (m *mini) handleItemSelectState() error {
	title("Query Results >>")

	picked, action, err := menu("Pick an audiobook", m.cachedItems[m.query], actionSearchAgain)
	if err != nil {
		return err
	}

	if action == actionSearchAgain {
		m.newState(searchState)
		return nil
	}

	m.selectedItem = picked
	m.newState(chapterSelectState)
	return nil
}

func (m *mini) handleChapterSelectState() error {
	erase := progress("Fetching details..")
	book, err := search.Details(context.Background(), m.registry, m.selectedItem)
	erase()

	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			fail("No playable chapters found")
			m.selectedItem = nil
			m.newState(itemSelectState)
			return nil
		}
		return err
	}

	m.book = book

	title(book.Title)
	if book.Author != "" {
		fmt.Println(style.Bold("by " + book.Author))
	}
	if book.Description != "" {
		fmt.Println(style.Faint(wordwrap.String(book.Description, util.Min(truncateAt, 80))))
	}
	fmt.Println(style.Faint(util.Quantify(len(book.Chapters), "chapter", "chapters")))

	const actionOpen = "Open in browser"

	picked, action, err := menu("Pick a chapter", book.Chapters, actionOpen, actionBack)
	if err != nil {
		return err
	}

	switch action {
	case actionBack:
		m.newState(itemSelectState)
		return nil
	case actionOpen:
		if err := open.Start(book.URL); err != nil {
			fail(err.Error())
		}
		return nil
	}

	m.startChapter = picked
	m.newState(playState)
	return nil
}

func (m *mini) handlePlayState() error {
	playlist, err := player.WritePlaylist(m.book, m.startChapter)
	if err != nil {
		return err
	}

	p := player.New()
	if err := p.Play(playlist, m.book.Title, nil); err != nil {
		return err
	}
	defer p.Close()

	volume := viper.GetInt(key.PlayerVolume)
	_ = p.SetVolume(volume)

	if viper.GetBool(key.HistorySaveOnPlay) {
		chapter := m.startChapter
		completionAt := viper.GetFloat64(key.PlayerCompletionPercentage)
		p.StartIPCTicker(func(timePos, duration int) {
			if duration <= 0 {
				return
			}
			_ = history.Save(chapter, listenedPercentage(timePos, duration, completionAt))
		})
	}

	seekStep := float64(viper.GetInt(key.PlayerSeekStep))

	const (
		actionPause    = "Play / Pause"
		actionForward  = "Seek forward"
		actionRewind   = "Seek backward"
		actionLouder   = "Volume up"
		actionQuieter  = "Volume down"
		actionChapters = "Chapters"
	)

	for {
		util.ClearScreen()
		title(fmt.Sprintf("Now playing: %s", m.book.Title))
		fmt.Println(style.Faint(fmt.Sprintf("starting from %s", m.startChapter.Title)))

		_, action, err := menu("Controls", []fmt.Stringer{},
			actionPause, actionForward, actionRewind,
			actionLouder, actionQuieter, actionChapters, actionSearchAgain,
		)
		if err != nil {
			return err
		}

		switch action {
		case actionPause:
			_ = p.TogglePause()
		case actionForward:
			_ = p.SeekBy(seekStep)
		case actionRewind:
			_ = p.SeekBy(-seekStep)
		case actionLouder:
			volume = util.Min(volume+10, 100)
			_ = p.SetVolume(volume)
		case actionQuieter:
			volume = util.Max(volume-10, 0)
			_ = p.SetVolume(volume)
		case actionChapters:
			m.newState(chapterSelectState)
			return nil
		case actionSearchAgain:
			m.newState(searchState)
			return nil
		}
	}
}

// listenedPercentage converts a playback position into saved progress.
// Positions at or past the completion threshold count as fully listened,
// so a chapter abandoned during its outro is still marked finished.
func listenedPercentage(timePos, duration int, completionAt float64) float64 {
	pct := float64(timePos) / float64(duration) * 100
	if completionAt > 0 && pct >= completionAt {
		return 100
	}
	return pct
}

func (m *mini) handleHistorySelectState() error {
	h, err := history.Get()
	if err != nil {
		return err
	}

	records := lo.Values(h)
	if len(records) == 0 {
		fail("History is empty")
		m.newState(searchState)
		return nil
	}

	title("History Results >>")
	record, _, err := menu("Continue listening", records)
	if err != nil {
		return err
	}

	m.selectedItem = record.Item()

	erase := progress("Fetching details..")
	book, err := search.Details(context.Background(), m.registry, m.selectedItem)
	erase()
	if err != nil {
		return err
	}

	if len(book.Chapters) == 0 {
		fail("No playable chapters found")
		m.newState(searchState)
		return nil
	}

	m.book = book
	if chapter, ok := book.ChapterByURL(record.URL); ok {
		m.startChapter = chapter
	} else {
		m.startChapter = book.Chapters[0]
	}

	m.newState(playState)
	return nil
}
