package zapobs

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rfpscan/jsonrescue/providers/observability"
)

// Observer implements observability.Provider using a zap logger.
type Observer struct {
	logger   *zap.Logger
	counters sync.Map // name -> *counter
}

// Ensure Observer implements observability.Provider
var _ observability.Provider = (*Observer)(nil)

// New creates a zap-backed observer writing through logger. A nil logger
// yields a silent observer (zap.NewNop).
func New(logger *zap.Logger) *Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Observer{logger: logger}
}

// --- LOGGING ---

// Debug logs a message at DEBUG level with optional structured attributes.
func (o *Observer) Debug(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Debug(msg, fields(attrs)...)
}

// Info logs a message at INFO level with optional structured attributes.
func (o *Observer) Info(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Info(msg, fields(attrs)...)
}

// Warn logs a message at WARN level with optional structured attributes.
func (o *Observer) Warn(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Warn(msg, fields(attrs)...)
}

// Error logs a message at ERROR level with optional structured attributes.
func (o *Observer) Error(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Error(msg, fields(attrs)...)
}

func fields(attrs []observability.Attribute) []zap.Field {
	out := make([]zap.Field, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, zap.Any(attr.Key, attr.Value))
	}
	return out
}

// --- METRICS ---

// Counter returns the named counter. Repeated calls with the same name
// return the same instance.
func (o *Observer) Counter(name string) observability.Counter {
	actual, _ := o.counters.LoadOrStore(name, &counter{name: name, logger: o.logger})
	return actual.(*counter)
}

// Histogram returns a histogram that logs each observation at DEBUG level.
func (o *Observer) Histogram(name string) observability.Histogram {
	return histogram{name: name, logger: o.logger}
}

type counter struct {
	name   string
	logger *zap.Logger
	mu     sync.Mutex
	value  int64
}

// Add implements [observability.Counter].
func (c *counter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	current := c.value
	c.mu.Unlock()

	zapFields := append(fields(attrs),
		zap.String("metric", c.name),
		zap.Int64("value", current),
		zap.Int64("delta", value),
	)
	c.logger.Debug("Counter", zapFields...)
}

type histogram struct {
	name   string
	logger *zap.Logger
}

// Record implements [observability.Histogram].
func (h histogram) Record(_ context.Context, value float64, attrs ...observability.Attribute) {
	zapFields := append(fields(attrs),
		zap.String("metric", h.name),
		zap.Float64("value", value),
	)
	h.logger.Debug("Histogram", zapFields...)
}
