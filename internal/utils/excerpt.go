package utils

import "strings"

// Excerpt returns the slice of s surrounding pos (up to window bytes on each
// side) followed by a second line carrying a caret under the offending
// position. It is used to show where a JSON parser gave up on a completion.
// pos is clamped into s.
func Excerpt(s string, pos, window int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + window
	if end > len(s) {
		end = len(s)
	}
	marker := strings.Repeat(" ", pos-start) + "^"
	return s[start:end] + "\n" + marker
}
