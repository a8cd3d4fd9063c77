package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Touch creates each path, along with its parent directories, as a small
// placeholder file.
func Touch(t testing.TB, paths ...string) {
	t.Helper()

	for _, path := range paths {
		path = filepath.FromSlash(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte("eve"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
