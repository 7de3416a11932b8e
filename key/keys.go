// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Search Behavior - these keys govern the concurrent fan-out across configured sources.
const (
	SearchTimeout              = "search.timeout"
	SearchResultLimit          = "search.result_limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Metadata Enrichment - these keys govern the optional Google Books lookup during detail fetches.
const (
	MetadataFetchBooks = "metadata.fetch_books"
	MetadataTimeout    = "metadata.timeout"
)

// History Tracking - these keys configure the persistence of listening state.
const (
	HistorySaveOnPlay = "history.save_on_play"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Command-Line Interface - these keys define general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Media Playback - these keys maintain the state and configuration for the external audio player.
const (
	Player                     = "player.engine"
	PlayerVolume               = "player.volume"
	PlayerSeekStep             = "player.seek_step"
	PlayerCompletionPercentage = "player.completion_percentage"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
