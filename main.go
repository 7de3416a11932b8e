// Package main is the entry point for the rymflux application.
package main

import (
	"github.com/rymflux-cli/rymflux/cmd"
	"github.com/rymflux-cli/rymflux/config"
	"github.com/rymflux-cli/rymflux/internal/cache"
	"github.com/rymflux-cli/rymflux/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// CollectGarbage runs in the background on its own.
	cache.CollectGarbage()

	cmd.Execute()
}
