package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Recovery Attributes ---

const (
	// AttrInputLength is the byte length of the raw completion text
	AttrInputLength = "input.length"

	// AttrInputExcerpt is a windowed excerpt of the input around a parse error
	AttrInputExcerpt = "input.excerpt"

	// AttrErrorOffset is the byte offset reported by the JSON parser
	AttrErrorOffset = "error.offset"

	// AttrRecoveryMethod is the strategy that produced the result
	// ("direct", "advanced_repair", "fallback")
	AttrRecoveryMethod = "recovery.method"

	// AttrRepairedLength is the byte length of the text after structural repair
	AttrRepairedLength = "repair.length"

	// AttrRunID is a caller-supplied identifier correlating all diagnostics
	// of one invocation
	AttrRunID = "run.id"
)

// --- Metric Names ---

const (
	// MetricRecoveryCount counts finished recovery attempts, labeled by method
	MetricRecoveryCount = "recovery.count"

	// MetricRecoveryDuration records end-to-end recovery time in seconds
	MetricRecoveryDuration = "recovery.duration"
)
