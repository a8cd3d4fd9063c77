package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eve/internal/scenepath"
	"eve/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out := env.mustRun(t, "config", "validate")
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out = env.mustRun(t, "config", "init", "--path", target)
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if _, _, err := env.run(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
}

func TestPathParseAndNext(t *testing.T) {
	out, _, err := runCLI(t, "", "", "path", "parse", "--json", "E:/shows/VEX/lookdev/003/LDV_tree_bark_003.hip")
	if err != nil {
		t.Fatalf("path parse: %v", err)
	}
	var view pathView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode parse output: %v", err)
	}
	if view.Code != "LDV_tree_bark" || view.Version != "003" || view.FolderVersion != "003" || view.Base != "tree_bark" {
		t.Fatalf("unexpected fields %+v", view)
	}

	out, _, err = runCLI(t, "", "", "path", "next", "E:/shows/VEX/lookdev/003/LDV_tree_bark_003.hip")
	if err != nil {
		t.Fatalf("path next: %v", err)
	}
	if strings.TrimSpace(out) != "E:/shows/VEX/lookdev/004/LDV_tree_bark_004.hip" {
		t.Fatalf("unexpected next path %q", out)
	}

	if _, _, err := runCLI(t, "", "", "path", "parse", "no_separator_001.hip"); !errors.Is(err, scenepath.ErrMalformedPath) {
		t.Fatalf("expected ErrMalformedPath, got %v", err)
	}
}

func TestCatalogToSaveFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	requireContains(t, env.mustRun(t, "project", "add", "VEX", "--description", "homework"), "Added project VEX")
	requireContains(t, env.mustRun(t, "asset", "add", "ROCK", "--category", "prop"), "Added prop asset ROCK")
	env.mustRun(t, "sequence", "add", "homework")
	requireContains(t, env.mustRun(t, "shot", "add", "L02", "--sequence", "homework", "--asset", "ROCK"), "Added shot homework/L02 (1001-1100)")

	requireContains(t, env.mustRun(t, "project", "list"), "VEX")
	show := env.mustRun(t, "project", "show")
	requireContains(t, show, "Assets")
	requireContains(t, env.mustRun(t, "asset", "list"), "prop")
	requireContains(t, env.mustRun(t, "shot", "list", "--sequence", "homework"), "1920x1080")

	assetPath := strings.TrimSpace(env.mustRun(t, "path", "asset", "--asset", "ROCK"))
	if assetPath != env.root+"/PROD/3D/scenes/ASSETS/PROPS/ROCK/AST_ROCK_001.hip" {
		t.Fatalf("unexpected asset path %q", assetPath)
	}
	shotPath := strings.TrimSpace(env.mustRun(t, "path", "shot", "--sequence", "homework", "--shot", "L02", "--version", "3"))
	if shotPath != env.root+"/PROD/3D/scenes/SHOTS/RENDER/homework/L02/RND_L02_003.hip" {
		t.Fatalf("unexpected shot path %q", shotPath)
	}

	// Nothing on disk yet: every policy keeps the requested path.
	if got := strings.TrimSpace(env.mustRun(t, "save", assetPath, "--on-conflict", "prompt")); got != assetPath {
		t.Fatalf("expected unchanged save path, got %q", got)
	}

	testsupport.Touch(t, assetPath, strings.Replace(assetPath, "_001.", "_002.", 1))

	next := strings.TrimSpace(env.mustRun(t, "save", assetPath, "--on-conflict", "next"))
	if next != strings.Replace(assetPath, "_001.", "_003.", 1) {
		t.Fatalf("expected version 003, got %q", next)
	}
	if got := strings.TrimSpace(env.mustRun(t, "save", assetPath, "--force")); got != assetPath {
		t.Fatalf("expected overwrite of %q, got %q", assetPath, got)
	}
	if _, stderr, err := env.run(t, "save", assetPath, "--on-conflict", "cancel"); !errors.Is(err, scenepath.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	} else {
		requireContains(t, stderr, "Save cancelled")
	}
	if _, _, err := env.run(t, "save", assetPath, "--on-conflict", "prompt"); err == nil || !strings.Contains(err.Error(), "not a terminal") {
		t.Fatalf("expected non-interactive prompt error, got %v", err)
	}

	latest := strings.TrimSpace(env.mustRun(t, "path", "asset", "--asset", "ROCK", "--latest"))
	if latest != next {
		t.Fatalf("expected --latest to match %q, got %q", next, latest)
	}
	versions := env.mustRun(t, "path", "versions", assetPath)
	requireContains(t, versions, "AST_ROCK_002.hip")
	requireContains(t, strings.TrimSpace(env.mustRun(t, "path", "latest", assetPath)), "AST_ROCK_003.hip")
}

func TestCatalogCommandsNeedProject(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := env.run(t, "asset", "list"); err == nil || !strings.Contains(err.Error(), "eve project add VEX") {
		t.Fatalf("expected missing project hint, got %v", err)
	}
	if _, _, err := env.run(t, "--project", "", "path", "asset", "--asset", "ROCK"); err == nil {
		t.Fatal("expected error for unknown project")
	}
}

func TestScaffoldAndLaunchDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "project", "add", "VEX")
	env.mustRun(t, "sequence", "add", "homework")
	env.mustRun(t, "shot", "add", "L02", "--sequence", "homework")

	requireContains(t, env.mustRun(t, "scaffold"), "Created")
	for _, dir := range []string{
		"/PROD/3D/scenes/ASSETS/CHARACTERS",
		"/PROD/3D/scenes/SHOTS/RENDER/homework/L02",
		"/PREP/PIPELINE/genes",
	} {
		if info, err := os.Stat(filepath.FromSlash(env.root + dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected %s to be scaffolded: %v", dir, err)
		}
	}
	requireContains(t, env.mustRun(t, "scaffold"), "Created 0 directories")

	out := env.mustRun(t, "launch", "--dry-run")
	requireContains(t, out, "JOB")
	requireContains(t, out, env.root+"/PROD/3D")
	requireContains(t, out, "HOUDINI_OTLSCAN_PATH")
}

func TestDoctor(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())
	if err := os.MkdirAll(filepath.FromSlash(env.root), 0o755); err != nil {
		t.Fatalf("mkdir project root: %v", err)
	}
	if err := os.MkdirAll(env.cfg.Paths.ProjectsDir, 0o755); err != nil {
		t.Fatalf("mkdir projects dir: %v", err)
	}

	out := env.mustRun(t, "doctor")
	requireContains(t, out, "Houdini")
	requireContains(t, out, "[OK]")
}

func TestPromptDecider(t *testing.T) {
	fp, err := scenepath.Parse("/a/CACHE_001.abc")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out strings.Builder
	decider := newPromptDecider(strings.NewReader("maybe\nn\n"), &out)
	decision, err := decider.Decide(context.Background(), fp)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision != scenepath.DecisionSaveNextVersion {
		t.Fatalf("expected save next version, got %v", decision)
	}
	requireContains(t, out.String(), "[o]verwrite / save [n]ext version / [c]ancel")
	requireContains(t, out.String(), `Unrecognized answer "maybe"`)

	if _, err := newPromptDecider(strings.NewReader(""), &out).Decide(context.Background(), fp); err == nil {
		t.Fatal("expected error when input closes")
	}
	last, err := newPromptDecider(strings.NewReader("o"), &out).Decide(context.Background(), fp)
	if err != nil || last != scenepath.DecisionOverwrite {
		t.Fatalf("expected overwrite from unterminated answer, got %v, %v", last, err)
	}
}

func TestSaveFromCopiesToResolvedPath(t *testing.T) {
	env := setupCLITestEnv(t)
	work := filepath.Join(t.TempDir(), "untitled.hip")
	if err := os.WriteFile(work, []byte("scene"), 0o644); err != nil {
		t.Fatalf("write work file: %v", err)
	}
	target := env.root + "/PROD/3D/scenes/ASSETS/PROPS/ROCK/AST_ROCK_001.hip"
	testsupport.Touch(t, target)

	got := strings.TrimSpace(env.mustRun(t, "save", target, "--on-conflict", "next", "--from", work))
	want := env.root + "/PROD/3D/scenes/ASSETS/PROPS/ROCK/AST_ROCK_002.hip"
	if got != want {
		t.Fatalf("save resolved %q, want %q", got, want)
	}
	data, err := os.ReadFile(filepath.FromSlash(want))
	if err != nil {
		t.Fatalf("read saved scene: %v", err)
	}
	if string(data) != "scene" {
		t.Fatalf("unexpected saved content %q", data)
	}
}
