// Package config loads, normalizes, and validates Eve configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EVE_PROJECT and EVE_ROOT. The Config type centralizes every knob the CLI
// needs, so the project root, catalog database, and host application settings
// are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors. The
// path engine in internal/scenepath never reads the environment itself; it is
// handed the resolved project root from here.
package config
