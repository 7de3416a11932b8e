// Package mini implements a lightweight, minimalist interface for audiobook search and playback.
package mini

import (
	"errors"
	"fmt"
	"os"

	"github.com/rymflux-cli/rymflux/provider"
	"github.com/rymflux-cli/rymflux/source"
	"github.com/rymflux-cli/rymflux/util"
)

var truncateAt = 100

type Options struct {
	Continue bool
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	registry *provider.Registry

	cachedItems map[string][]*source.AudioItem

	query        string
	selectedItem *source.AudioItem
	book         *source.Audiobook
	startChapter *source.Chapter
}

func newMini(registry *provider.Registry) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		registry:      registry,
		cachedItems:   make(map[string][]*source.AudioItem),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

func Run(options *Options) error {
	registry, err := provider.Load()
	if err != nil {
		return err
	}
	defer registry.Close()

	// No sources at all is a setup problem, not an empty search.
	if registry.Len() == 0 {
		return fmt.Errorf("no sources configured, run \"rymflux sources init\" to create %s", "sources.yaml")
	}

	m := newMini(registry)
	m.state = searchState
	if options.Continue {
		m.state = historySelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case searchState:
		return m.handleSearchState()
	case itemSelectState:
		return m.handleItemSelectState()
	case chapterSelectState:
		return m.handleChapterSelectState()
	case playState:
		return m.handlePlayState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
