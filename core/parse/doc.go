// Package parse provides typed decoding of raw LLM text output. Because
// language models frequently wrap JSON in narrative prose or markdown code
// fences and truncate long responses, this package first extracts a
// candidate, then runs structural recovery via [core/recovery.Engine], then
// falls back to automatic JSON repair before giving up with a clear error.
//
// The main entry point is the generic [ParseAs] function. Unlike
// [core/recovery.Engine.Recover], which is total and substitutes a fallback
// record, ParseAs is for callers that want their own type or an error.
package parse
