package recovery

import "testing"

func TestScanText(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		wantBraces       int
		wantBrackets     int
		wantInString     bool
		wantLastBalanced int
	}{
		{
			name:             "empty input records no boundary",
			input:            "",
			wantLastBalanced: -1,
		},
		{
			name:             "balanced object ends at the final brace",
			input:            `{}`,
			wantLastBalanced: 1,
		},
		{
			name:             "open object counts its brace",
			input:            `{"a": 1`,
			wantBraces:       1,
			wantLastBalanced: 6,
		},
		{
			name:             "unterminated string freezes the boundary before it opens",
			input:            `{"a": "b`,
			wantBraces:       1,
			wantInString:     true,
			wantLastBalanced: 5,
		},
		{
			name:             "closing quote is a valid boundary",
			input:            `{"a": "b"`,
			wantBraces:       1,
			wantLastBalanced: 8,
		},
		{
			name:             "escaped quote does not close the string",
			input:            `{"a": "x\"y`,
			wantBraces:       1,
			wantInString:     true,
			wantLastBalanced: 5,
		},
		{
			name:             "escaped quote inside a closed string",
			input:            `{"a": "x\"y"}`,
			wantLastBalanced: 12,
		},
		{
			name:             "delimiters inside strings are ignored",
			input:            `{"a": "{[["}`,
			wantLastBalanced: 11,
		},
		{
			name:             "unmatched closer goes negative and stops tracking",
			input:            `{"a": 1}]`,
			wantBrackets:     -1,
			wantLastBalanced: 7,
		},
		{
			name:             "nested openers accumulate",
			input:            `{"a": [{`,
			wantBraces:       2,
			wantBrackets:     1,
			wantLastBalanced: 7,
		},
		{
			name:             "tracking resumes when depth recovers",
			input:            `{"a": 1}]{`,
			wantBraces:       1,
			wantBrackets:     -1,
			wantLastBalanced: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := scanText(tt.input)
			if state.braces != tt.wantBraces {
				t.Errorf("braces = %d, want %d", state.braces, tt.wantBraces)
			}
			if state.brackets != tt.wantBrackets {
				t.Errorf("brackets = %d, want %d", state.brackets, tt.wantBrackets)
			}
			if state.inString != tt.wantInString {
				t.Errorf("inString = %v, want %v", state.inString, tt.wantInString)
			}
			if state.lastBalanced != tt.wantLastBalanced {
				t.Errorf("lastBalanced = %d, want %d", state.lastBalanced, tt.wantLastBalanced)
			}
		})
	}
}

func TestScanState_Closers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{}`, ""},
		{`{`, "}"},
		{`[`, "]"},
		{`{"a": [`, "]}"},
		{`{"a": [{`, "}]}"},
		{`[[{`, "}]]"},
		{`{"a": [1, 2]`, "}"},
	}

	for _, tt := range tests {
		state := scanText(tt.input)
		if got := state.closers(); got != tt.want {
			t.Errorf("closers(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
