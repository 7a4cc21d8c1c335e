// Package watch reloads the catalog file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/strelow/gitref/internal/catalog"
)

// ReloadFunc receives the outcome of each reload attempt: the fresh
// catalog when the file parsed and validated, or the error that rejected
// it. A rejection never carries a catalog.
type ReloadFunc func(catalog.Catalog, error)

// debounce collapses editor write bursts into a single reload.
const debounce = 250 * time.Millisecond

// Catalog watches a catalog file and reloads it on change, delivering
// reload outcomes through notify until ctx is cancelled. The watch is
// placed on the parent directory: editors save by rename-and-replace, and
// a watch on the file itself dies with the old inode. A reload that fails
// to parse or validate is delivered as an error so the session can show
// it; the previous catalog stays live.
func Catalog(ctx context.Context, path string, logger *zap.Logger, notify ReloadFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch catalog dir: %w", err)
	}

	logger.Info("watcher started", zap.String("catalog", abs))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(debounce)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher stopped")
			return nil

		case <-reloadCh:
			c, loadErr := catalog.LoadFile(abs)
			if loadErr != nil {
				logger.Warn("catalog reload rejected", zap.Error(loadErr))
				if notify != nil {
					notify(catalog.Catalog{}, loadErr)
				}
				continue
			}
			if c.HasCategory(catalog.AllCategories) {
				logger.Warn("catalog declares the literal category \"All\"; it cannot be selected separately")
			}
			logger.Info("catalog reloaded", zap.Int("commands", len(c.Commands)))
			if notify != nil {
				notify(c, nil)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(watchErr))
		}
	}
}
