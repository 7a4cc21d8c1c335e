package cmd

import (
	"github.com/strelow/gitref/internal/catalog"
	"github.com/strelow/gitref/internal/config"
)

// resolveCatalog picks the catalog a non-interactive command runs against:
// an explicit --catalog path wins, then a path from the config file, then
// the embedded set.
func resolveCatalog(flagPath string) (catalog.Catalog, error) {
	if flagPath != "" {
		return catalog.LoadFile(flagPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return catalog.Catalog{}, err
	}
	if cfg.Catalog != "" {
		return catalog.LoadFile(cfg.Catalog)
	}
	return catalog.Load()
}
