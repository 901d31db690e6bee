// Package recovery turns malformed LLM completion text back into structured
// data. Models that are asked for JSON routinely return truncated output,
// unterminated strings, or trailing garbage; this package recovers what it
// can instead of failing the surrounding workflow.
//
// The [Engine] applies an ordered chain of strategies and stops at the first
// one that yields valid JSON:
//
//  1. Direct parse: strict decoding of the unmodified input.
//  2. Structural repair: trim to the first '{', close an unterminated
//     string, truncate at the last balanced position, re-close open braces
//     and brackets, and strip trailing commas.
//  3. Fallback: substitute the fixed record from [core/risk], the only
//     case reported as a failure.
//
// [Engine.Recover] is total: it never returns an error and never panics,
// whatever the input. Each call is stateless, so one Engine may be shared
// freely across goroutines.
//
// The repair stage is deliberately heuristic. It targets the failure modes
// of truncated model output, not arbitrary broken JSON; for a lenient,
// grammar-aware decode on top of this engine see the core/parse package.
package recovery
