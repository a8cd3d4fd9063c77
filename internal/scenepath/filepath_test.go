package scenepath

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, raw string) FilePath {
	t.Helper()
	fp, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return fp
}

func TestNextVersionIncrementsAndPads(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"S:/loc/AST_NYC_001.hip", "S:/loc/AST_NYC_002.hip"},
		{"S:/loc/AST_NYC_009.hip", "S:/loc/AST_NYC_010.hip"},
		{"S:/loc/AST_NYC_099.hip", "S:/loc/AST_NYC_100.hip"},
		{"S:/loc/001/code_name_001.mb", "S:/loc/002/code_name_002.mb"},
		{"S:/loc/CACHE_041.abc", "S:/loc/CACHE_042.abc"},
	}
	for _, tc := range tests {
		fp := mustParse(t, tc.raw)
		next, err := NextVersion(fp)
		if err != nil {
			t.Fatalf("NextVersion(%q): %v", tc.raw, err)
		}
		if next.Raw() != tc.want {
			t.Fatalf("NextVersion(%q) = %q, want %q", tc.raw, next.Raw(), tc.want)
		}
		if next.VersionNumber() != fp.VersionNumber()+1 {
			t.Fatalf("expected version %d, got %d", fp.VersionNumber()+1, next.VersionNumber())
		}
		if fp.Raw() != tc.raw {
			t.Fatalf("NextVersion mutated its input: %q", fp.Raw())
		}
	}
}

func TestWithVersionMirrorsFolderVersion(t *testing.T) {
	fp := mustParse(t, "/show/lookdev/014/LDV_tree_014.hip")
	moved, err := fp.WithVersion(120)
	if err != nil {
		t.Fatalf("WithVersion: %v", err)
	}
	if moved.FolderVersion() != moved.Version() || moved.Version() != "120" {
		t.Fatalf("expected folder and file version 120, got folder=%q file=%q", moved.FolderVersion(), moved.Version())
	}
	if !strings.HasSuffix(moved.Location(), "/120/") {
		t.Fatalf("expected version folder renamed, got %q", moved.Location())
	}
	if moved.Raw() != Build(moved) {
		t.Fatalf("raw %q out of sync with Build %q", moved.Raw(), Build(moved))
	}
	if moved.Name() != moved.Code()+"_"+moved.Version()+"."+moved.Extension() {
		t.Fatalf("name invariant broken: %q", moved.Name())
	}
}

func TestWithVersionRejectsOverflow(t *testing.T) {
	fp := mustParse(t, "S:/loc/AST_NYC_999.hip")
	if _, err := NextVersion(fp); !errors.Is(err, ErrVersionOverflow) {
		t.Fatalf("expected ErrVersionOverflow, got %v", err)
	}
	if _, err := fp.WithVersion(-1); !errors.Is(err, ErrVersionOverflow) {
		t.Fatalf("expected ErrVersionOverflow for negative version, got %v", err)
	}
}

func TestZeroFilePath(t *testing.T) {
	var fp FilePath
	if !fp.IsZero() {
		t.Fatal("expected zero FilePath")
	}
	if mustParse(t, "S:/loc/AST_NYC_001.hip").IsZero() {
		t.Fatal("parsed FilePath should not be zero")
	}
}
