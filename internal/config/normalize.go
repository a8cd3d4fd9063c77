package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeProject(); err != nil {
		return err
	}
	c.normalizeNaming()
	c.normalizeHoudini()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.EveRoot) == "" {
		if value, ok := os.LookupEnv("EVE_ROOT"); ok {
			c.Paths.EveRoot = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Paths.EveRoot, err = expandPath(strings.TrimSpace(c.Paths.EveRoot)); err != nil {
		return fmt.Errorf("paths.eve_root: %w", err)
	}
	if c.Paths.ProjectsDir, err = expandPath(strings.TrimSpace(c.Paths.ProjectsDir)); err != nil {
		return fmt.Errorf("paths.projects_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		c.Paths.DatabasePath = defaultDatabasePath
	}
	if c.Paths.DatabasePath, err = expandPath(strings.TrimSpace(c.Paths.DatabasePath)); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeProject() error {
	c.Project.Name = strings.TrimSpace(c.Project.Name)
	if c.Project.Name == "" {
		if value, ok := os.LookupEnv("EVE_PROJECT_NAME"); ok {
			c.Project.Name = strings.TrimSpace(value)
		}
	}
	c.Project.Root = strings.TrimSpace(c.Project.Root)
	if c.Project.Root == "" {
		if value, ok := os.LookupEnv("EVE_PROJECT"); ok {
			c.Project.Root = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Project.Root, err = expandPath(c.Project.Root); err != nil {
		return fmt.Errorf("project.root: %w", err)
	}
	return nil
}

func (c *Config) normalizeNaming() {
	ext := strings.TrimSpace(c.Naming.SceneExtension)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = defaultSceneExtension
	}
	c.Naming.SceneExtension = ext
	c.Naming.OnConflict = strings.ToLower(strings.TrimSpace(c.Naming.OnConflict))
	if c.Naming.OnConflict == "" {
		c.Naming.OnConflict = defaultOnConflict
	}
}

func (c *Config) normalizeHoudini() {
	c.Houdini.Binary = strings.TrimSpace(c.Houdini.Binary)
	if c.Houdini.Binary == "" {
		c.Houdini.Binary = defaultHoudiniBinary
	}
	c.Houdini.Build = strings.TrimSpace(c.Houdini.Build)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
}
