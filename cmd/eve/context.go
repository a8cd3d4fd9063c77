package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"eve/internal/catalog"
	"eve/internal/config"
	"eve/internal/logging"
	"eve/internal/scenepath"
)

type commandContext struct {
	configFlag  *string
	projectFlag *string
	sessionID   string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, projectFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		projectFlag: projectFlag,
		sessionID:   uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.projectFlag != nil {
			if name := strings.TrimSpace(*c.projectFlag); name != "" {
				cfg.Project.Name = name
				cfg.Project.Root = ""
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the session logger, tagged with component. Logger construction
// failures fall back to a discarding logger so commands still run.
func (c *commandContext) log(component string) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return logging.NewComponentLogger(c.logger, component)
}

// commandCtx returns the cobra context annotated with the session and the
// active project.
func (c *commandContext) commandCtx(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithSessionID(ctx, c.sessionID)
	if cfg, err := c.ensureConfig(); err == nil && cfg.Project.Name != "" {
		ctx = logging.WithProject(ctx, cfg.Project.Name)
	}
	return ctx
}

func (c *commandContext) withCatalog(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// activeProject resolves the selected project in the catalog.
func (c *commandContext) activeProject(ctx context.Context, store *catalog.Store) (*catalog.Project, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Project.Name == "" {
		return nil, errors.New("no project selected; pass --project or set project.name")
	}
	project, err := store.GetProjectByName(ctx, cfg.Project.Name)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, fmt.Errorf("project %q is not in the catalog; add it with `eve project add %s`", cfg.Project.Name, cfg.Project.Name)
	}
	return project, err
}

func (c *commandContext) builder() (*scenepath.Builder, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	root := cfg.ProjectRoot()
	if root == "" {
		return nil, scenepath.ErrMissingProjectRoot
	}
	return scenepath.NewBuilder(filepath.ToSlash(root), scenepath.WithSceneExtension(cfg.Naming.SceneExtension))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
