// Package zapobs implements [observability.Provider] on top of
// go.uber.org/zap, for embedding the recovery engine into services that
// already standardize on zap. Metrics are echoed as debug log entries, like
// slogobs.
package zapobs
