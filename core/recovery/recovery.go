package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rfpscan/jsonrescue/core/risk"
	"github.com/rfpscan/jsonrescue/internal/utils"
	"github.com/rfpscan/jsonrescue/providers/observability"
)

// Method identifies the strategy that produced a Result.
type Method string

const (
	// MethodDirect means the input parsed as-is.
	MethodDirect Method = "direct"
	// MethodAdvancedRepair means the input parsed after structural repair.
	MethodAdvancedRepair Method = "advanced_repair"
	// MethodFallback means no parse succeeded and the fixed record was substituted.
	MethodFallback Method = "fallback"
)

// fallbackError is the fixed message surfaced on the terminal fallback result.
const fallbackError = "All JSON parsing methods failed"

// DefaultErrorWindow is the number of bytes of context logged on each side
// of a parse-error offset.
const DefaultErrorWindow = 100

// Result is the outcome of one recovery attempt.
//
// Success reports whether Data was decoded from syntactically valid JSON,
// either directly or after repair. When Success is false, Data holds the
// fixed record from [risk.Fallback] and Error carries the terminal message;
// Error is empty otherwise.
//
// Text preserves the exact text that parsed, so callers can decode it into
// their own types without re-running recovery. It is empty on fallback and
// excluded from the JSON form of the result.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Method  Method `json:"method"`
	Error   string `json:"error,omitempty"`
	Text    string `json:"-"`
}

// Engine recovers structured data from untrusted completion text. The zero
// cost of sharing it comes from having no per-call state: every invocation
// scans its own input with fresh bookkeeping, so a single Engine is safe for
// concurrent use without coordination.
type Engine struct {
	obs    observability.Provider
	window int
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver routes the engine's diagnostics to obs. Diagnostics are
// advisory only and never affect the returned Result. A nil obs is ignored.
func WithObserver(obs observability.Provider) Option {
	return func(e *Engine) {
		if obs != nil {
			e.obs = obs
		}
	}
}

// WithErrorWindow sets how many bytes of context are logged around a parse
// error offset. Values below 1 keep [DefaultErrorWindow].
func WithErrorWindow(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.window = n
		}
	}
}

// New creates an Engine. Without options it is silent (nop observer) and
// uses [DefaultErrorWindow].
func New(opts ...Option) *Engine {
	engine := &Engine{
		obs:    observability.Nop(),
		window: DefaultErrorWindow,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// strategy is one entry in the ordered recovery chain: a method tag plus an
// attempt function. Attempts report success through the boolean; they never
// let an internal failure escape.
type strategy struct {
	method Method
	apply  func(ctx context.Context, raw string) (Result, bool)
}

// Recover runs the strategy chain over raw and returns the first successful
// result, or the fallback result if every strategy fails. It accepts any
// input, including empty or binary text, and always returns a value.
func (e *Engine) Recover(ctx context.Context, raw string) Result {
	start := time.Now()
	e.obs.Debug(ctx, "starting JSON recovery",
		observability.Int(observability.AttrInputLength, len(raw)),
	)

	chain := []strategy{
		{method: MethodDirect, apply: e.directParse},
		{method: MethodAdvancedRepair, apply: e.structuralRepair},
	}
	for _, s := range chain {
		if result, ok := s.apply(ctx, raw); ok {
			e.record(ctx, s.method, start)
			return result
		}
	}

	e.obs.Warn(ctx, "all parsing methods failed, using fallback record")
	e.record(ctx, MethodFallback, start)
	return Result{
		Success: false,
		Data:    risk.Fallback(),
		Method:  MethodFallback,
		Error:   fallbackError,
	}
}

// directParse attempts strict decoding of the unmodified input. On failure
// it logs the parser's error offset, when one is available, with a windowed
// excerpt of the surrounding input.
func (e *Engine) directParse(ctx context.Context, raw string) (Result, bool) {
	var data any
	err := json.Unmarshal([]byte(raw), &data)
	if err == nil {
		e.obs.Debug(ctx, "direct parsing successful")
		return Result{Success: true, Data: data, Method: MethodDirect, Text: raw}, true
	}

	attrs := []observability.Attribute{observability.Error(err)}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset := int(syntaxErr.Offset)
		attrs = append(attrs,
			observability.Int(observability.AttrErrorOffset, offset),
			observability.String(observability.AttrInputExcerpt, utils.Excerpt(raw, offset, e.window)),
		)
	}
	e.obs.Debug(ctx, "direct parsing failed", attrs...)
	return Result{}, false
}

// structuralRepair attempts to build a parseable candidate via
// repairStructure and strictly decodes it. Any failure along the way simply
// reports false so the chain can fall through.
func (e *Engine) structuralRepair(ctx context.Context, raw string) (Result, bool) {
	repaired, ok := repairStructure(raw)
	if !ok {
		e.obs.Debug(ctx, "structural repair found no usable object")
		return Result{}, false
	}

	var data any
	if err := json.Unmarshal([]byte(repaired), &data); err != nil {
		e.obs.Debug(ctx, "structural repair produced invalid JSON",
			observability.Error(err),
			observability.Int(observability.AttrRepairedLength, len(repaired)),
		)
		return Result{}, false
	}

	e.obs.Debug(ctx, "advanced repair successful",
		observability.Int(observability.AttrRepairedLength, len(repaired)),
	)
	return Result{Success: true, Data: data, Method: MethodAdvancedRepair, Text: repaired}, true
}

// record emits the per-attempt outcome metrics.
func (e *Engine) record(ctx context.Context, method Method, start time.Time) {
	methodAttr := observability.String(observability.AttrRecoveryMethod, string(method))
	e.obs.Counter(observability.MetricRecoveryCount).Add(ctx, 1, methodAttr)
	e.obs.Histogram(observability.MetricRecoveryDuration).Record(ctx, time.Since(start).Seconds(), methodAttr)
}
