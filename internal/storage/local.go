// Package storage provides the filesystem operations the postprocess
// pipeline needs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Lister enumerates candidate files and checks paths.
type Lister interface {
	List(dir, pattern string) ([]string, error)
	Exists(path string) bool
}

// LocalFiles implements Lister against the local filesystem.
type LocalFiles struct{}

// List returns the files in dir whose base name matches the glob
// pattern, sorted so results do not depend on enumeration order. An
// empty pattern matches everything.
func (LocalFiles) List(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var results []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if pattern != "" {
			ok, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		results = append(results, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(results)
	return results, nil
}

// Exists checks whether a file exists.
func (LocalFiles) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
