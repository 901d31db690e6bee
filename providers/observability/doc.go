// Package observability defines the minimal diagnostics capability consumed
// by the recovery engine: structured logging plus lightweight metrics,
// composed into a single injectable [Provider].
//
// The engine treats its observer as advisory only; nothing recorded here
// ever influences a recovery result. Implementations live in the slogobs,
// zapobs and promobs subpackages; [Nop] provides the silent default.
//
// The semconv.go file contains the standard attribute-key and metric-name
// constants that should be used when recording observations, ensuring
// consistency across providers and components.
package observability
