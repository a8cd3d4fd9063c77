package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Create makes every leaf directory of nodes under root and returns the leaves
// that did not exist before. Running it again on the same tree creates
// nothing.
func Create(root string, nodes []Node) ([]string, error) {
	root = strings.TrimRight(filepath.ToSlash(root), "/")
	if root == "" {
		return nil, errors.New("scaffold: project root is empty")
	}
	var created []string
	for _, leaf := range Leaves(root, nodes) {
		native := filepath.FromSlash(leaf)
		info, err := os.Stat(native)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return created, fmt.Errorf("scaffold: %s exists and is not a directory", leaf)
		case !errors.Is(err, fs.ErrNotExist):
			return created, fmt.Errorf("scaffold: stat %s: %w", leaf, err)
		}
		if err := os.MkdirAll(native, 0o755); err != nil {
			return created, fmt.Errorf("scaffold: create %s: %w", leaf, err)
		}
		created = append(created, leaf)
	}
	return created, nil
}
