package parse

import (
	"context"
	"strings"
	"testing"

	"github.com/rfpscan/jsonrescue/core/recovery"
	"github.com/rfpscan/jsonrescue/core/risk"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseAs_ValidJSON(t *testing.T) {
	engine := recovery.New()

	got, err := ParseAs[person](context.Background(), engine, `{"name": "John", "age": 30}`)
	if err != nil {
		t.Fatalf("ParseAs failed: %v", err)
	}
	if got.Name != "John" || got.Age != 30 {
		t.Errorf("got %+v", got)
	}
}

func TestParseAs_FencedJSON(t *testing.T) {
	engine := recovery.New()
	content := "Here is the data you asked for:\n```json\n{\"name\": \"John\", \"age\": 30}\n```\nLet me know if you need more."

	got, err := ParseAs[person](context.Background(), engine, content)
	if err != nil {
		t.Fatalf("ParseAs failed: %v", err)
	}
	if got.Name != "John" || got.Age != 30 {
		t.Errorf("got %+v", got)
	}
}

func TestParseAs_TruncatedReport(t *testing.T) {
	engine := recovery.New()
	content := `{"overall_assessment": {"risk_score": 15, "risk_level": "medium"`

	got, err := ParseAs[risk.Report](context.Background(), engine, content)
	if err != nil {
		t.Fatalf("ParseAs failed: %v", err)
	}
	if got.OverallAssessment.RiskLevel != "medium" {
		t.Errorf("risk_level = %q, want %q", got.OverallAssessment.RiskLevel, "medium")
	}
	if got.OverallAssessment.RiskScore != 15 {
		t.Errorf("risk_score = %v, want 15", got.OverallAssessment.RiskScore)
	}
}

func TestParseAs_LenientRepair(t *testing.T) {
	engine := recovery.New()

	// Unquoted keys and single quotes defeat the structural heuristics and
	// reach the jsonrepair pass.
	got, err := ParseAs[person](context.Background(), engine, `{name: 'John', age: 30}`)
	if err != nil {
		t.Fatalf("ParseAs failed: %v", err)
	}
	if got.Name != "John" || got.Age != 30 {
		t.Errorf("got %+v", got)
	}
}

func TestParseAs_UnrecoverableContent(t *testing.T) {
	engine := recovery.New()

	if _, err := ParseAs[person](context.Background(), engine, "I have no idea."); err == nil {
		t.Error("expected an error for prose content")
	}
}

func TestExtractCandidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "json fence is unwrapped",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "json fence with preamble and trailer",
			input: "Sure thing!\n```json\n{\"a\": 1}\n```\nAnything else?",
			want:  `{"a": 1}`,
		},
		{
			name:  "generic fence is unwrapped",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "unterminated fence keeps the tail",
			input: "```json\n{\"a\": 1",
			want:  `{"a": 1`,
		},
		{
			name:  "whitespace is trimmed",
			input: "  {\"a\": 1}  ",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCandidate(tt.input); got != tt.want {
				t.Errorf("ExtractCandidate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAs_FencedTruncatedReport(t *testing.T) {
	engine := recovery.New()
	content := "```json\n" + `{"overall_assessment": {"risk_score": 15}, "risk_assessments": [{"category": "test", "description": "incomplete`

	got, err := ParseAs[risk.Report](context.Background(), engine, content)
	if err != nil {
		t.Fatalf("ParseAs failed: %v", err)
	}
	if len(got.RiskAssessments) != 1 {
		t.Fatalf("risk_assessments has %d items, want 1", len(got.RiskAssessments))
	}
	if !strings.HasPrefix(got.RiskAssessments[0].Description, "incomplete") {
		t.Errorf("description = %q", got.RiskAssessments[0].Description)
	}
}
