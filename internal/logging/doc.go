// Package logging builds the slog loggers used throughout the organizer and
// provides typed attribute helpers so call sites stay terse.
package logging
