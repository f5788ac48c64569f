// Package logging assembles the structured slog loggers used across reviewd.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and provides context-aware helpers so request handling
// code automatically tags log lines with session and correlation IDs. A
// no-op logger is available for tests and wiring code that cannot fail.
package logging
