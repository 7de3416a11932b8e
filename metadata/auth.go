// Package metadata provides a client for the Google Books volumes API.
package metadata

import (
	"fmt"
	"os"

	"github.com/rymflux-cli/rymflux/log"
	"github.com/zalando/go-keyring"
)

const (
	// keyringService is the generic service identifier for the system keyring.
	keyringService = "rymflux"
	// keyringUser is the specific key used for storing the Books API key.
	keyringUser = "books_api_key"

	// EnvAPIKey overrides the keyring, useful for headless environments.
	EnvAPIKey = "RYMFLUX_BOOKS_API_KEY"
)

// SetAPIKey saves the Google Books API key to the system keyring.
// The API works without a key at a lower rate limit, so this is optional.
func SetAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("api key cannot be empty")
	}
	if err := keyring.Set(keyringService, keyringUser, apiKey); err != nil {
		log.Error("Failed to save api key to keyring: " + err.Error())
		return err
	}
	return nil
}

// APIKey retrieves the Google Books API key from the environment or the
// system keyring. Returns an empty string when none is configured.
func APIKey() string {
	if apiKey := os.Getenv(EnvAPIKey); apiKey != "" {
		return apiKey
	}

	apiKey, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		// Common to not have a key at all, log only for diagnostics.
		log.Infof("No books api key in keyring: %v", err)
		return ""
	}
	return apiKey
}

// DeleteAPIKey removes the Google Books API key from the system keyring.
func DeleteAPIKey() error {
	if err := keyring.Delete(keyringService, keyringUser); err != nil {
		log.Error("Failed to delete api key from keyring: " + err.Error())
		return err
	}
	return nil
}
