package scenepath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLatestVersionConsultsDisk(t *testing.T) {
	fsys := newMemFS("/a/NYC/AST_NYC_001.hip", "/a/NYC/AST_NYC_003.hip")
	r := NewVersionResolver(fsys, nil)

	fp := mustParse(t, "/a/NYC/AST_NYC_001.hip")
	latest, err := r.LatestVersion(fp)
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}
	if latest.Version() != "004" {
		t.Fatalf("expected version 004, got %q", latest.Version())
	}
	if latest.Raw() != "/a/NYC/AST_NYC_004.hip" {
		t.Fatalf("unexpected latest path %q", latest.Raw())
	}

	next, err := NextVersion(fp)
	if err != nil {
		t.Fatalf("NextVersion: %v", err)
	}
	if next.Version() != "002" {
		t.Fatalf("NextVersion should ignore disk, got %q", next.Version())
	}
}

func TestMaxExistingVersionIgnoresOtherFamilies(t *testing.T) {
	fsys := newMemFS(
		"/a/NYC/AST_NYC_002.hip",
		"/a/NYC/AST_NYC_TREE_009.hip",
		"/a/NYC/AST_NYC_005.bgeo",
		"/a/NYC/AST_NYC_final.hip",
		"/a/NYC/other/AST_NYC_007.hip",
	)
	r := NewVersionResolver(fsys, nil)

	got, err := r.MaxExistingVersion("/a/NYC/", "AST_NYC", "hip")
	if err != nil {
		t.Fatalf("MaxExistingVersion: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected max version 2, got %d", got)
	}
}

func TestMaxExistingVersionEmptyFamily(t *testing.T) {
	r := NewVersionResolver(newMemFS("/a/NYC/AST_LA_004.hip"), nil)

	_, err := r.MaxExistingVersion("/a/NYC/", "AST_NYC", "hip")
	if !errors.Is(err, ErrNoVersionsFound) {
		t.Fatalf("expected ErrNoVersionsFound, got %v", err)
	}
	var notFound *NoVersionsFoundError
	if !errors.As(err, &notFound) || notFound.Code != "AST_NYC" {
		t.Fatalf("expected *NoVersionsFoundError for AST_NYC, got %#v", err)
	}

	_, err = r.LatestVersion(mustParse(t, "/a/NYC/AST_NYC_001.hip"))
	if !errors.Is(err, ErrNoVersionsFound) {
		t.Fatalf("expected LatestVersion to surface ErrNoVersionsFound, got %v", err)
	}
}

func TestVersionsAcrossVersionFolders(t *testing.T) {
	fsys := newMemFS(
		"/show/lookdev/001/LDV_tree_001.hip",
		"/show/lookdev/002/LDV_tree_002.hip",
		"/show/lookdev/004/LDV_tree_004.hip",
		"/show/lookdev/005/LDV_tree_002.hip",
		"/show/lookdev/abc/LDV_tree_009.hip",
	)
	r := NewVersionResolver(fsys, nil)
	fp := mustParse(t, "/show/lookdev/001/LDV_tree_001.hip")

	members, err := r.Versions(fp)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	var got []string
	for _, m := range members {
		got = append(got, m.Version())
	}
	if len(got) != 3 || got[0] != "001" || got[1] != "002" || got[2] != "004" {
		t.Fatalf("unexpected versions %v", got)
	}

	latest, err := r.LatestVersion(fp)
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}
	if latest.Raw() != "/show/lookdev/005/LDV_tree_005.hip" {
		t.Fatalf("unexpected latest path %q", latest.Raw())
	}
	if latest.FolderVersion() != latest.Version() {
		t.Fatalf("folder version %q not mirrored to %q", latest.FolderVersion(), latest.Version())
	}
}

func TestLastVersion(t *testing.T) {
	r := NewVersionResolver(newMemFS("/a/CACHE_004.abc", "/a/CACHE_011.abc"), nil)
	last, err := r.LastVersion(mustParse(t, "/a/CACHE_001.abc"))
	if err != nil {
		t.Fatalf("LastVersion: %v", err)
	}
	if last != 11 {
		t.Fatalf("expected 11, got %d", last)
	}
}

func TestVersionResolverEscapesGlobLiterals(t *testing.T) {
	fsys := newMemFS("/a/[wip]/AST_NYC_002.hip", "/a/w/AST_NYC_008.hip")
	r := NewVersionResolver(fsys, nil)

	got, err := r.MaxExistingVersion("/a/[wip]/", "AST_NYC", "hip")
	if err != nil {
		t.Fatalf("MaxExistingVersion: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected literal directory match, got version %d", got)
	}
}

func TestVersionResolverOnDisk(t *testing.T) {
	dir := filepath.ToSlash(t.TempDir())
	for _, name := range []string{"AST_NYC_001.hip", "AST_NYC_003.hip", "AST_NYC_002.hip"} {
		if err := os.WriteFile(filepath.FromSlash(dir+"/"+name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	r := NewVersionResolver(nil, nil)

	got, err := r.MaxExistingVersion(dir+"/", "AST_NYC", "hip")
	if err != nil {
		t.Fatalf("MaxExistingVersion: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
