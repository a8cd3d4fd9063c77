package preflight_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eve/internal/preflight"
	"eve/internal/testsupport"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if r := preflight.CheckDirectoryAccess("dir", dir); !r.Passed {
		t.Fatalf("expected pass, got %+v", r)
	}

	missing := filepath.Join(dir, "missing")
	if r := preflight.CheckDirectoryAccess("dir", missing); r.Passed || !strings.Contains(r.Detail, "does not exist") {
		t.Fatalf("expected missing failure, got %+v", r)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if r := preflight.CheckDirectoryAccess("dir", file); r.Passed || !strings.Contains(r.Detail, "not a directory") {
		t.Fatalf("expected not-a-directory failure, got %+v", r)
	}

	if r := preflight.CheckDirectoryAccess("dir", ""); r.Passed {
		t.Fatalf("expected failure for empty path, got %+v", r)
	}
}

func TestCheckBinary(t *testing.T) {
	testsupport.NewConfig(t, testsupport.WithStubbedBinaries("eve-stub"))

	if r := preflight.CheckBinary("stub", "eve-stub"); !r.Passed {
		t.Fatalf("expected stub binary to resolve, got %+v", r)
	}
	if r := preflight.CheckBinary("missing", "eve-missing-binary"); r.Passed {
		t.Fatalf("expected missing binary to fail, got %+v", r)
	}
	if r := preflight.CheckBinary("empty", " "); r.Passed || r.Detail != "command not configured" {
		t.Fatalf("expected unconfigured failure, got %+v", r)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithProject("Avatar"), testsupport.WithStubbedBinaries())
	if err := os.MkdirAll(filepath.Join(cfg.Paths.ProjectsDir, "Avatar"), 0o755); err != nil {
		t.Fatalf("mkdir project: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	testsupport.MustOpenCatalog(t, cfg)

	results := preflight.RunAll(context.Background(), cfg)
	var names []string
	for _, r := range results {
		names = append(names, r.Name)
	}
	want := "Projects directory,Project root,Catalog directory,Catalog,Houdini"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("checks = %s, want %s", got, want)
	}
	if failed := preflight.Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %+v", failed)
	}

	cfg.Project.Name = ""
	cfg.Houdini.Binary = "eve-missing-binary"
	results = preflight.RunAll(context.Background(), cfg)
	failed := preflight.Failed(results)
	if len(results) != 4 || len(failed) != 1 || failed[0].Name != "Houdini" {
		t.Fatalf("unexpected results %+v", results)
	}
}
