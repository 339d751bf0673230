package cli

import (
	"github.com/charmbracelet/log"

	"github.com/ang-cai/dinner/pkg/cache"
)

// openCache builds the result cache for a command invocation.
// A cache that cannot be opened (e.g. read-only filesystem) degrades to the
// null cache with a warning instead of failing the command - planning still
// works, it just recomputes.
func openCache(disabled bool, dir string, logger *log.Logger) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warnf("result cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return c
}
