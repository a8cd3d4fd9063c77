package scenepath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS is the read-only filesystem surface the resolvers need.
type FS interface {
	// Glob returns the paths matching a filepath.Match pattern, in slash form.
	Glob(pattern string) ([]string, error)
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}

// OSFS implements FS on the local filesystem.
type OSFS struct{}

func (OSFS) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.FromSlash(pattern))
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		matches[i] = filepath.ToSlash(match)
	}
	return matches, nil
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(filepath.FromSlash(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)

func escapeGlob(literal string) string {
	return globEscaper.Replace(literal)
}
