package testsupport

import (
	"context"
	"testing"

	"eve/internal/catalog"
	"eve/internal/config"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddProject inserts a project for tests using the provided store.
func AddProject(t testing.TB, store *catalog.Store, name string) *catalog.Project {
	t.Helper()

	project, err := store.AddProject(context.Background(), catalog.Project{Name: name})
	if err != nil {
		t.Fatalf("store.AddProject: %v", err)
	}
	return project
}
