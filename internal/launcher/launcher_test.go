package launcher_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"eve/internal/launcher"
	"eve/internal/testsupport"
)

func TestEnvironment(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithProject("Avatar"))
	eveRoot := filepath.ToSlash(cfg.Paths.EveRoot)
	root := filepath.ToSlash(filepath.Join(cfg.Paths.ProjectsDir, "Avatar"))

	env, err := launcher.Environment(cfg, "")
	if err != nil {
		t.Fatalf("Environment: %v", err)
	}
	want := launcher.Env{
		"EVE_ROOT":         eveRoot,
		"EVE_PROJECT":      root,
		"EVE_PROJECT_NAME": "Avatar",
		"JOB":              root + "/PROD/3D",
		"HOUDINI_PATH":     eveRoot + "/tools/houdini/settings;&",
		"PYTHONPATH":       eveRoot + "/dna;" + eveRoot + "/tools;&",
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Fatalf("environment mismatch (-want +got):\n%s", diff)
	}

	other, err := launcher.Environment(cfg, "VEX")
	if err != nil {
		t.Fatalf("Environment(VEX): %v", err)
	}
	if other[launcher.EnvProjectName] != "VEX" || !strings.HasSuffix(other[launcher.EnvProject], "/VEX") {
		t.Fatalf("explicit project not honored: %v", other)
	}
}

func TestEnvironmentRequiresProject(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if _, err := launcher.Environment(cfg, ""); err == nil {
		t.Fatal("expected error without a project")
	}
	cfg.Paths.EveRoot = ""
	if _, err := launcher.Environment(cfg, "Avatar"); err == nil {
		t.Fatal("expected error without eve_root")
	}
}

func TestHDAScanPathSkipsBackups(t *testing.T) {
	root3D := t.TempDir()
	for _, dir := range []string{"hda/ASSETS", "hda/FX/backup", "hda/FX/sim"} {
		if err := os.MkdirAll(filepath.Join(root3D, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	got, err := launcher.HDAScanPath(root3D)
	if err != nil {
		t.Fatalf("HDAScanPath: %v", err)
	}
	base := filepath.ToSlash(root3D) + "/hda"
	want := strings.Join([]string{base, base + "/ASSETS", base + "/FX", base + "/FX/sim", "&"}, ";")
	if got != want {
		t.Fatalf("HDAScanPath = %q, want %q", got, want)
	}

	empty, err := launcher.HDAScanPath(t.TempDir())
	if err != nil || empty != "" {
		t.Fatalf("expected empty scan path without hda dir, got %q, %v", empty, err)
	}
}

func TestMergeOverridesInPlace(t *testing.T) {
	env := launcher.Env{"JOB": "/p/PROD/3D", "EVE_ROOT": "/eve"}
	got := env.Merge([]string{"PATH=/bin", "JOB=/old"})
	want := []string{"PATH=/bin", "JOB=/p/PROD/3D", "EVE_ROOT=/eve"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestLaunchStartsStub(t *testing.T) {
	testsupport.NewConfig(t, testsupport.WithStubbedBinaries("houdini-stub"))

	pid, err := launcher.Launch(context.Background(), "houdini-stub", os.Environ())
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if pid <= 0 {
		t.Fatalf("expected a pid, got %d", pid)
	}

	if _, err := launcher.Launch(context.Background(), "definitely-not-installed-eve", nil); err == nil {
		t.Fatal("expected error for a missing binary")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := launcher.Launch(ctx, "houdini-stub", nil); err == nil {
		t.Fatal("expected error for a cancelled context")
	}
}
