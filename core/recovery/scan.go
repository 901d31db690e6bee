package recovery

// scanState is the bookkeeping for one forward pass over a repair candidate:
// delimiter depths, string and escape flags, the stack of open delimiters,
// and the last index that qualified as a balanced truncation boundary.
// A fresh state is built per pass and discarded afterwards.
type scanState struct {
	braces       int
	brackets     int
	inString     bool
	escaped      bool
	lastBalanced int
	open         []byte
}

// scanText runs a single forward pass over text and returns the final state.
//
// The in-string flag flips on every unescaped '"'. A '\' marks the next
// character as escaped and consumes it without further inspection. Brace and
// bracket depths only move outside of strings, and may go negative when the
// text closes more than it opened.
//
// lastBalanced tracks the highest index at which the scan sits outside a
// string with both depths non-negative. A quote that closes a string
// qualifies; escape characters and characters inside a string do not. It is
// -1 if no index ever qualified.
func scanText(text string) scanState {
	state := scanState{lastBalanced: -1}
	for i := 0; i < len(text); i++ {
		if state.escaped {
			state.escaped = false
			continue
		}
		switch text[i] {
		case '\\':
			state.escaped = true
			continue
		case '"':
			state.inString = !state.inString
		case '{':
			if !state.inString {
				state.braces++
				state.open = append(state.open, '{')
			}
		case '[':
			if !state.inString {
				state.brackets++
				state.open = append(state.open, '[')
			}
		case '}':
			if !state.inString {
				state.braces--
				state.pop()
			}
		case ']':
			if !state.inString {
				state.brackets--
				state.pop()
			}
		}
		if !state.inString && state.braces >= 0 && state.brackets >= 0 {
			state.lastBalanced = i
		}
	}
	return state
}

// pop removes the most recent open delimiter. Unmatched closers pop whatever
// is on top; over-closed text empties the stack and the depth counters go
// negative instead.
func (s *scanState) pop() {
	if n := len(s.open); n > 0 {
		s.open = s.open[:n-1]
	}
}

// closers returns the closing delimiters for every still-open brace and
// bracket, innermost first, so that appending them to the scanned text
// closes the structure in proper nesting order.
func (s *scanState) closers() string {
	out := make([]byte, 0, len(s.open))
	for i := len(s.open) - 1; i >= 0; i-- {
		if s.open[i] == '{' {
			out = append(out, '}')
		} else {
			out = append(out, ']')
		}
	}
	return string(out)
}
