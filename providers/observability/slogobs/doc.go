// Package slogobs implements [observability.Provider] on top of Go's
// standard library slog. Log events go to a JSON handler or, for local
// development, a colorized console handler (lmittmann/tint); metrics are
// kept in memory and surfaced as debug log entries.
package slogobs
