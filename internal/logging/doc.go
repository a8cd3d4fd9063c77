// Package logging assembles structured slog loggers and formatting helpers used
// across Eve commands.
//
// It owns the configurable console/JSON handlers, routes file output through a
// rotating lumberjack writer, and exposes context-aware helpers so command code
// can tag log lines with the active project and invocation session. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
