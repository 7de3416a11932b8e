// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/rymflux-cli/rymflux/constant"
	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "RYMFLUX_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It follows the XDG_CONFIG_HOME specification on Linux and the equivalent user
// profile paths on Darwin and Windows.
// Direct override: the resolution can be explicitly specified via the RYMFLUX_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Rymflux))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Rymflux))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// SourcesFile resolves the absolute path to the declarative source configuration file.
func SourcesFile() string {
	return filepath.Join(Config(), "sources.yaml")
}

// History resolves the absolute path to the localized listening history persistence file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Books resolves the absolute path to the localized Google Books metadata cache.
func Books() string {
	return filepath.Join(Cache(), "books.json")
}

// Queries resolves the absolute path to the localized search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp resolves a unique, volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Rymflux))
}
