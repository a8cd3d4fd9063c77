package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateNaming() error {
	switch c.Naming.OnConflict {
	case ConflictPrompt, ConflictOverwrite, ConflictNext, ConflictCancel:
	default:
		return fmt.Errorf("naming.on_conflict: unsupported value %q (want prompt, overwrite, next, or cancel)", c.Naming.OnConflict)
	}
	if strings.ContainsAny(c.Naming.SceneExtension, "/._") {
		return fmt.Errorf("naming.scene_extension: %q must not contain '/', '.', or '_'", c.Naming.SceneExtension)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Paths.DatabasePath == "" {
		return errors.New("paths.database_path must be set")
	}
	return nil
}
