package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rymflux-cli/rymflux/filesystem"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/rymflux-cli/rymflux/network"
	"github.com/rymflux-cli/rymflux/where"
)

// RemoteSourcesURL is where "sources update" fetches the curated source list.
const RemoteSourcesURL = "https://raw.githubusercontent.com/rymflux-cli/sources/main/sources.yaml"

// UpdateSources replaces the local sources.yaml with the curated remote list
// when the two differ. It uses a SHA-256 hash check to avoid redundant disk
// writes and an atomic swap to prevent a corrupt state. Reports whether an
// update was applied.
func UpdateSources(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, RemoteSourcesURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetch remote sources: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("remote sources returned status %d", resp.StatusCode)
	}

	remote, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	path := where.SourcesFile()
	if local, err := filesystem.API().ReadFile(path); err == nil {
		if sha256.Sum256(local) == sha256.Sum256(remote) {
			return false, nil
		}
	}

	tmp := path + ".tmp"
	if err := filesystem.API().WriteFile(tmp, remote, 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := filesystem.API().Rename(tmp, path); err != nil {
		_ = filesystem.API().Remove(tmp)
		return false, fmt.Errorf("swap %s: %w", path, err)
	}

	log.Infof("updated source list at %s", path)
	return true, nil
}
