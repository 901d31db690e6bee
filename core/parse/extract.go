package parse

import "strings"

const fence = "```"

// ExtractCandidate strips the wrappers models commonly place around JSON and
// returns the innermost candidate text. It handles, in order:
//
//   - a ```json code fence anywhere in the text (preamble prose before it is
//     dropped, everything after the closing fence is dropped)
//   - a generic ``` code fence at the start of the text
//
// Unfenced prose before the JSON object is left alone; the recovery engine
// trims to the first '{' itself. An unterminated fence keeps everything
// after the opening marker.
func ExtractCandidate(text string) string {
	text = strings.TrimSpace(text)

	if start := strings.Index(text, fence+"json"); start >= 0 {
		rest := text[start+len(fence+"json"):]
		if end := strings.Index(rest, fence); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	if strings.HasPrefix(text, fence) {
		text = strings.TrimPrefix(text, fence)
		text = strings.TrimSpace(text)
		text = strings.TrimSuffix(text, fence)
		return strings.TrimSpace(text)
	}

	return text
}
