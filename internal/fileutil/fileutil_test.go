package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPublishCopyCreatesParents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "work.hip")
	dst := filepath.Join(dir, "PROD", "3D", "scenes", "AST_NYC_002.hip")

	if err := os.WriteFile(src, []byte("scene data"), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := PublishCopy(src, dst); err != nil {
		t.Fatalf("PublishCopy: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "scene data" {
		t.Fatalf("content mismatch: got %q", got)
	}
	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the destination, found %d entries", len(entries))
	}
}

func TestPublishCopyReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "work.hip")
	dst := filepath.Join(dir, "AST_NYC_001.hip")
	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := PublishCopy(src, dst); err != nil {
		t.Fatalf("PublishCopy: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestPublishCopyErrors(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.hip")

	if err := PublishCopy(filepath.Join(dir, "missing.hip"), dst); err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("destination should not exist after failure: %v", err)
	}
	if err := PublishCopy(dir, dst); err == nil {
		t.Fatal("expected error for directory source")
	}
	if err := PublishCopy(dst, dst); err == nil {
		t.Fatal("expected error when copying onto itself")
	}
}
