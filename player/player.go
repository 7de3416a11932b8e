// Package player defines a unified abstraction layer for audio playback engines.
// The architecture supports multiple backends, with the primary implementation targeting 'mpv' via its JSON-IPC interface.
package player

import (
	"github.com/rymflux-cli/rymflux/key"
	"github.com/spf13/viper"
)

// Player encapsulates the required capabilities for an audio playback backend.
type Player interface {
	// Play starts playback of the given URL with the specified title.
	// If a player instance is already running, it loads the new file into it.
	Play(url string, title string, headers map[string]string) error

	// TogglePause inverts the current playback suspension state.
	TogglePause() error

	// GetTimePos retrieves the current absolute playback position in seconds.
	GetTimePos() (float64, error)

	// GetDuration retrieves the total temporal length of the active media file in seconds.
	GetDuration() (float64, error)

	// GetPercentListened calculates the relative playback completion percentage (0-100).
	GetPercentListened() (float64, error)

	// GetPausedStatus retrieves the current suspension state of the playback engine.
	GetPausedStatus() (bool, error)

	// HasActivePlayback verifies if the player has a media file currently initialized and active.
	HasActivePlayback() (bool, error)

	// Seek transitions the playback position to a specific absolute timestamp in seconds.
	Seek(seconds float64) error

	// SeekBy shifts the playback position relative to the current one.
	// Negative values rewind.
	SeekBy(seconds float64) error

	// SetVolume adjusts the playback volume (0-100).
	SetVolume(volume int) error

	// IsRunning validates the liveness of the underlying playback process or handler.
	IsRunning() bool

	// Close terminates the playback engine and releases all associated system resources.
	Close() error

	// Socket retrieves the identifier for the Inter-Process Communication (IPC) channel.
	Socket() string

	// StartIPCTicker initializes a background synchronization task to poll playback metrics.
	// It executes the provided callback at regular intervals (typically 1Hz) with current state data.
	StartIPCTicker(callback func(timePos int, duration int))

	// StopIPCTicker terminates the background synchronization task.
	StopIPCTicker()

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}
}

// New constructs the playback backend selected in the configuration.
// Unknown engines fall back to mpv rather than failing.
func New() Player {
	switch viper.GetString(key.Player) {
	case "iina":
		return NewIINA()
	default:
		return NewMPV()
	}
}
