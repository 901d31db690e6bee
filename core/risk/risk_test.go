package risk

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFallback_IsFixed(t *testing.T) {
	if !reflect.DeepEqual(Fallback(), Fallback()) {
		t.Fatal("Fallback must return identical records on every call")
	}

	record := Fallback()
	if record.OverallAssessment.RiskLevel != "medium" {
		t.Errorf("overall risk_level = %q, want %q", record.OverallAssessment.RiskLevel, "medium")
	}
	if record.OverallAssessment.RiskScore != 10 {
		t.Errorf("overall risk_score = %v, want 10", record.OverallAssessment.RiskScore)
	}
	if len(record.RiskAssessments) != 1 {
		t.Fatalf("risk_assessments has %d items, want 1", len(record.RiskAssessments))
	}

	item := record.RiskAssessments[0]
	if item.Category != "Technical Analysis Error" {
		t.Errorf("category = %q", item.Category)
	}
	if item.Likelihood != 2 || item.Impact != 3 || item.RiskScore != 6 {
		t.Errorf("likelihood/impact/risk_score = %d/%d/%v, want 2/3/6",
			item.Likelihood, item.Impact, item.RiskScore)
	}
}

func TestFallback_WireFormat(t *testing.T) {
	encoded, err := json.Marshal(Fallback())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	overall, ok := wire["overall_assessment"].(map[string]any)
	if !ok {
		t.Fatal("overall_assessment missing or wrong type")
	}
	for _, key := range []string{"risk_score", "risk_level", "summary", "recommendations"} {
		if _, ok := overall[key]; !ok {
			t.Errorf("overall_assessment missing %q", key)
		}
	}

	items, ok := wire["risk_assessments"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("risk_assessments = %#v", wire["risk_assessments"])
	}
	item := items[0].(map[string]any)
	for _, key := range []string{
		"category", "subcategory", "description", "likelihood", "impact",
		"risk_score", "risk_level", "key_findings", "mitigation_strategies",
		"regulatory_references", "industry_best_practices",
	} {
		if _, ok := item[key]; !ok {
			t.Errorf("assessment missing %q", key)
		}
	}
}

func TestReport_Validate(t *testing.T) {
	if err := Fallback().Validate(); err != nil {
		t.Errorf("fallback record must validate, got %v", err)
	}

	var empty Report
	if err := empty.Validate(); err == nil {
		t.Error("zero report must not validate")
	}

	partial := Report{
		OverallAssessment: OverallAssessment{RiskLevel: "low", Summary: "ok"},
	}
	if err := partial.Validate(); err == nil {
		t.Error("report without risk_assessments must not validate")
	}

	complete := partial
	complete.RiskAssessments = []Assessment{}
	if err := complete.Validate(); err != nil {
		t.Errorf("report with empty assessments list must validate, got %v", err)
	}
}
