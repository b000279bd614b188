package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor write bursts into one conversion.
const watchDebounce = 100 * time.Millisecond

// Watch converts matching files under the input root as they are
// written, until ctx is canceled. Intended for iterating on individual
// corpus files; a full batch should use Run.
func (e *Engine) Watch(ctx context.Context) error {
	info, err := os.Stat(e.cfg.InputRoot)
	if err != nil {
		return fmt.Errorf("input root: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if info.IsDir() {
		if err := e.watchDirs(watcher); err != nil {
			return fmt.Errorf("failed to watch input root: %w", err)
		}
	} else {
		// Watch the parent: editors replace files on save.
		if err := watcher.Add(filepath.Dir(e.cfg.InputRoot)); err != nil {
			return fmt.Errorf("failed to watch input file: %w", err)
		}
	}

	e.logger.Info("watching for changes", "input", e.cfg.InputRoot)

	timers := make(map[string]*time.Timer)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, e.cfg.Extension) {
				continue
			}
			if !info.IsDir() && event.Name != e.cfg.InputRoot {
				continue
			}
			path := event.Name
			if t, ok := timers[path]; ok {
				t.Stop()
			}
			timers[path] = time.AfterFunc(watchDebounce, func() {
				e.convertChanged(path, !info.IsDir())
			})
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watch error", "error", werr)
		}
	}
}

func (e *Engine) watchDirs(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(e.cfg.InputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != e.cfg.InputRoot {
			if !e.cfg.Recursive || strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
		}
		return watcher.Add(path)
	})
}

func (e *Engine) convertChanged(path string, single bool) {
	rel := filepath.Base(path)
	if !single {
		if r, err := filepath.Rel(e.cfg.InputRoot, path); err == nil {
			rel = r
		}
	}
	res := e.convertOne(rel, single)
	if res.Status == StatusSucceeded {
		e.logger.Info("reconverted", "path", rel)
	} else {
		e.logger.Error("reconversion failed", "path", rel, "error", res.Message)
	}
}
