package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"eve/internal/config"
)

// Environment variable names exported to the host application.
const (
	EnvEveRoot      = "EVE_ROOT"
	EnvProject      = "EVE_PROJECT"
	EnvProjectName  = "EVE_PROJECT_NAME"
	EnvJob          = "JOB"
	EnvHoudiniPath  = "HOUDINI_PATH"
	EnvPythonPath   = "PYTHONPATH"
	EnvOTLScanPath  = "HOUDINI_OTLSCAN_PATH"
	houdiniDefaults = "&"
	pathListSep     = ";"
)

var hdaSkipDirs = map[string]bool{"backup": true}

// Env maps variable names to values.
type Env map[string]string

// Merge returns base ("KEY=value" entries) with env applied on top. Keys in
// base keep their position; new keys are appended in sorted order.
func (e Env) Merge(base []string) []string {
	out := make([]string, 0, len(base)+len(e))
	seen := make(map[string]bool, len(e))
	for _, entry := range base {
		key, _, _ := strings.Cut(entry, "=")
		if value, ok := e[key]; ok {
			out = append(out, key+"="+value)
			seen[key] = true
			continue
		}
		out = append(out, entry)
	}
	keys := make([]string, 0, len(e))
	for key := range e {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, key+"="+e[key])
	}
	return out
}

// Environment returns the variables the host application needs to work in
// projectName. An empty projectName selects the configured project.
func Environment(cfg *config.Config, projectName string) (Env, error) {
	if cfg == nil {
		return nil, errors.New("launcher: config is nil")
	}
	eveRoot := strings.TrimSpace(cfg.Paths.EveRoot)
	if eveRoot == "" {
		return nil, errors.New("launcher: paths.eve_root is not set")
	}

	var root string
	if strings.TrimSpace(projectName) == "" {
		projectName = cfg.Project.Name
		root = cfg.ProjectRoot()
	} else {
		root = cfg.ProjectRootFor(projectName)
	}
	projectName = strings.TrimSpace(projectName)
	if projectName == "" || root == "" {
		return nil, errors.New("launcher: no project selected")
	}

	eveRoot = filepath.ToSlash(eveRoot)
	root = filepath.ToSlash(root)
	job := root + "/PROD/3D"

	env := Env{
		EnvEveRoot:     eveRoot,
		EnvProject:     root,
		EnvProjectName: projectName,
		EnvJob:         job,
		EnvHoudiniPath: eveRoot + "/tools/houdini/settings" + pathListSep + houdiniDefaults,
		EnvPythonPath:  eveRoot + "/dna" + pathListSep + eveRoot + "/tools" + pathListSep + houdiniDefaults,
	}
	scan, err := HDAScanPath(job)
	if err != nil {
		return nil, err
	}
	if scan != "" {
		env[EnvOTLScanPath] = scan
	}
	return env, nil
}

// HDAScanPath lists the digital asset directories under root3D/hda, skipping
// backup folders, as a search path ending in the host defaults. It returns ""
// when the project has no hda directory.
func HDAScanPath(root3D string) (string, error) {
	hdaRoot := filepath.Join(filepath.FromSlash(root3D), "hda")
	if _, err := os.Stat(hdaRoot); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	var dirs []string
	err := filepath.WalkDir(hdaRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if hdaSkipDirs[d.Name()] {
			return filepath.SkipDir
		}
		dirs = append(dirs, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", hdaRoot, err)
	}
	return strings.Join(append(dirs, houdiniDefaults), pathListSep), nil
}
