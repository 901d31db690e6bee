package slogobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lmittmann/tint"

	"github.com/rfpscan/jsonrescue/providers/observability"
)

// Observer implements observability.Provider using Go's standard library
// slog. Metrics are held in memory and echoed as debug log entries, which is
// enough observability for a library that runs one call at a time; use
// promobs when metrics need to be scraped.
type Observer struct {
	logger  *slog.Logger
	metrics *metricsStore
}

// Ensure Observer implements observability.Provider
var _ observability.Provider = (*Observer)(nil)

// New creates a new slog-based observer. Without options the format and
// level come from the RESCUE_LOG_FORMAT and RESCUE_LOG_LEVEL environment
// variables, defaulting to console format at INFO on stderr.
//
// Example usage:
//
//	// Use defaults from environment
//	observer := slogobs.New()
//
//	// Explicit configuration
//	observer := slogobs.New(
//	    slogobs.WithFormat(slogobs.FormatJSON),
//	    slogobs.WithLevel(slog.LevelDebug),
//	)
//
//	// Use existing logger
//	observer := slogobs.New(slogobs.WithLogger(slog.Default()))
func New(opts ...Option) *Observer {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		var handler slog.Handler
		switch cfg.format {
		case FormatJSON:
			handler = slog.NewJSONHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
		default:
			handler = tint.NewHandler(cfg.output, &tint.Options{
				Level:      cfg.level,
				NoColor:    !cfg.colors,
				TimeFormat: time.Kitchen,
			})
		}
		logger = slog.New(handler)
	}

	return &Observer{
		logger:  logger,
		metrics: &metricsStore{},
	}
}

// --- LOGGING ---

// Debug logs a message at DEBUG level with optional structured attributes.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs a message at INFO level with optional structured attributes.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a message at WARN level with optional structured attributes.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs a message at ERROR level with optional structured attributes.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs...)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs ...observability.Attribute) {
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, logAttrs...)
}

// --- METRICS ---

// Counter returns the named counter. Repeated calls with the same name
// return the same instance, so callers can fetch it on every use.
func (o *Observer) Counter(name string) observability.Counter {
	return o.metrics.counter(name, o.logger)
}

// Histogram returns the named histogram. Repeated calls with the same name
// return the same instance.
func (o *Observer) Histogram(name string) observability.Histogram {
	return o.metrics.histogram(name, o.logger)
}

// metricsStore lazily creates named metric instances (thread-safe).
type metricsStore struct {
	counters   sync.Map // name -> *slogCounter
	histograms sync.Map // name -> *slogHistogram
}

func (m *metricsStore) counter(name string, logger *slog.Logger) *slogCounter {
	actual, _ := m.counters.LoadOrStore(name, &slogCounter{name: name, logger: logger})
	return actual.(*slogCounter)
}

func (m *metricsStore) histogram(name string, logger *slog.Logger) *slogHistogram {
	actual, _ := m.histograms.LoadOrStore(name, &slogHistogram{name: name, logger: logger})
	return actual.(*slogHistogram)
}

type slogCounter struct {
	name   string
	logger *slog.Logger
	mu     sync.Mutex
	value  int64
}

// Add increments the counter by value and logs the updated total at DEBUG
// level. It implements [observability.Counter].
func (c *slogCounter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	current := c.value
	c.mu.Unlock()

	logAttrs := []slog.Attr{
		slog.String("metric", c.name),
		slog.Int64("value", current),
		slog.Int64("delta", value),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Counter", logAttrs...)
}

type slogHistogram struct {
	name   string
	logger *slog.Logger
}

// Record logs a histogram observation at DEBUG level. It implements
// [observability.Histogram].
func (h *slogHistogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	logAttrs := []slog.Attr{
		slog.String("metric", h.name),
		slog.Float64("value", value),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	h.logger.LogAttrs(ctx, slog.LevelDebug, "Histogram", logAttrs...)
}
