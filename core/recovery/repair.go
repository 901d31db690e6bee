package recovery

import (
	"regexp"
	"strings"
)

// trailingComma matches a comma that directly precedes a closing brace or
// bracket, allowing intervening whitespace.
var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// repairStructure applies the structural heuristics to raw and returns a
// candidate for strict parsing. The boolean is false when no candidate could
// be produced (no '{' in the input, or no usable truncation point).
//
// Steps, in order:
//
//  1. Trim whitespace and leading prose up to the first '{'.
//  2. If a quote-toggle scan ends inside a string literal, append exactly
//     one closing quote.
//  3. Truncate at the last balanced position, dropping trailing characters
//     that over-close the structure. A boundary at index 0 (a lone '{') is
//     degenerate and rejected.
//  4. Re-scan and append closers for every brace and bracket still open.
//  5. Strip commas left dangling before a closer.
//
// The result is not guaranteed to parse; the caller decides what a failed
// candidate means.
func repairStructure(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	text = text[start:]

	state := scanText(text)
	if state.inString {
		text += `"`
		state = scanText(text)
	}

	if state.lastBalanced <= 0 {
		return "", false
	}
	text = text[:state.lastBalanced+1]

	state = scanText(text)
	text += state.closers()

	return trailingComma.ReplaceAllString(text, "$1"), true
}
