package preflight

import (
	"context"
	"path/filepath"

	"eve/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckDirectoryAccess("Projects directory", cfg.Paths.ProjectsDir))

	if root := cfg.ProjectRoot(); root != "" {
		results = append(results, CheckDirectoryAccess("Project root", root))
	}

	if cfg.Paths.DatabasePath != "" {
		results = append(results, CheckDirectoryAccess("Catalog directory", filepath.Dir(cfg.Paths.DatabasePath)))
		results = append(results, CheckCatalog(ctx, cfg.Paths.DatabasePath))
	}

	results = append(results, CheckBinary("Houdini", cfg.Houdini.Binary))
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
