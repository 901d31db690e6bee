package parse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/rfpscan/jsonrescue/core/recovery"
)

// ParseAs decodes LLM completion text into the target type T.
//
// It first strips code fences with [ExtractCandidate], then runs the
// recovery engine. When the engine recovers valid JSON (directly or through
// structural repair), that text is unmarshaled into T. When the engine falls
// back, the candidate is handed to jsonrepair for a lenient, grammar-aware
// rewrite that catches failure modes the structural heuristics do not
// attempt, such as single-quoted strings or unquoted keys, and the repaired
// text is unmarshaled instead.
//
// engine must not be nil. The returned error describes the last failing
// step; T's zero value accompanies every error.
//
// Example:
//
//	engine := recovery.New()
//	report, err := parse.ParseAs[risk.Report](ctx, engine, completion)
func ParseAs[T any](ctx context.Context, engine *recovery.Engine, content string) (T, error) {
	var result T
	candidate := ExtractCandidate(content)

	if recovered := engine.Recover(ctx, candidate); recovered.Success {
		if err := json.Unmarshal([]byte(recovered.Text), &result); err != nil {
			return result, fmt.Errorf("recovered JSON does not match %T: %w", result, err)
		}
		return result, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return result, fmt.Errorf("failed to recover content as %T: %w", result, err)
	}
	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
	}
	return result, nil
}
