// Package logging assembles the slog loggers used across pvrank.
//
// It owns the console and JSON handlers, level parsing, and the standardized
// field keys (component, event_type, error_hint, impact) so every component
// emits records with the same shape. Loggers write to stderr by default; stdout
// is reserved for command output. NewNop is available for tests and wiring code
// that has no logger to pass.
package logging
