package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover determines the eligible input set. Returns the relative
// paths of matching files, sorted, and whether InputRoot is a single
// file rather than a directory.
func (e *Engine) Discover() ([]string, bool, error) {
	info, err := os.Stat(e.cfg.InputRoot)
	if err != nil {
		return nil, false, fmt.Errorf("input root: %w", err)
	}

	if !info.IsDir() {
		return []string{filepath.Base(e.cfg.InputRoot)}, true, nil
	}

	var files []string
	err = filepath.WalkDir(e.cfg.InputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != e.cfg.InputRoot && !e.cfg.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), e.cfg.Extension) {
			return nil
		}
		rel, err := filepath.Rel(e.cfg.InputRoot, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("walking input root: %w", err)
	}
	sort.Strings(files)
	return files, false, nil
}
