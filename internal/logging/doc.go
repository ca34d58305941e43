// Package logging assembles structured slog loggers used across corpusprep
// commands.
//
// It owns the console (charmbracelet/log) and JSON handlers, centralizes level
// and output plumbing, and provides a no-op logger for tests and wiring code
// that cannot fail. Logs always target stderr by default because several tools
// stream their results on stdout.
package logging
