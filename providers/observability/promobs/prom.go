package promobs

import (
	"context"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rfpscan/jsonrescue/providers/observability"
)

// methodLabel is the one label carried by every collector. Prometheus
// requires label names up front, so the dynamic attribute list is reduced to
// the recovery-method attribute; other attributes are ignored.
const methodLabel = "method"

// Observer implements observability.Provider with Prometheus-backed metrics.
// Collectors are created lazily per metric name and registered once.
type Observer struct {
	registerer prometheus.Registerer
	delegate   observability.Provider

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

// Ensure Observer implements observability.Provider
var _ observability.Provider = (*Observer)(nil)

// Option configures an Observer.
type Option func(*Observer)

// WithLogDelegate forwards log events to p. Without it, log events are
// dropped and only metrics are recorded.
func WithLogDelegate(p observability.Provider) Option {
	return func(o *Observer) {
		if p != nil {
			o.delegate = p
		}
	}
}

// New creates a Prometheus-backed observer registering its collectors with
// registerer. A nil registerer uses prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer, opts ...Option) *Observer {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	observer := &Observer{
		registerer: registerer,
		delegate:   observability.Nop(),
		counters:   map[string]*prometheus.CounterVec{},
		histograms: map[string]*prometheus.HistogramVec{},
	}
	for _, opt := range opts {
		opt(observer)
	}
	return observer
}

// --- METRICS ---

// Counter returns the named counter, creating and registering it on first
// use. Names are sanitized to Prometheus conventions ("recovery.count"
// becomes "recovery_count").
func (o *Observer) Counter(name string) observability.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()

	vec, ok := o.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: sanitize(name) + "_total",
			Help: "Counter " + name,
		}, []string{methodLabel})
		o.registerer.MustRegister(vec)
		o.counters[name] = vec
	}
	return promCounter{vec: vec}
}

// Histogram returns the named histogram, creating and registering it on
// first use.
func (o *Observer) Histogram(name string) observability.Histogram {
	o.mu.Lock()
	defer o.mu.Unlock()

	vec, ok := o.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    sanitize(name) + "_seconds",
			Help:    "Histogram " + name,
			Buckets: prometheus.DefBuckets,
		}, []string{methodLabel})
		o.registerer.MustRegister(vec)
		o.histograms[name] = vec
	}
	return promHistogram{vec: vec}
}

type promCounter struct {
	vec *prometheus.CounterVec
}

// Add implements [observability.Counter].
func (c promCounter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	c.vec.WithLabelValues(methodValue(attrs)).Add(float64(value))
}

type promHistogram struct {
	vec *prometheus.HistogramVec
}

// Record implements [observability.Histogram].
func (h promHistogram) Record(_ context.Context, value float64, attrs ...observability.Attribute) {
	h.vec.WithLabelValues(methodValue(attrs)).Observe(value)
}

// methodValue extracts the recovery-method attribute, if present.
func methodValue(attrs []observability.Attribute) string {
	for _, attr := range attrs {
		if attr.Key == observability.AttrRecoveryMethod {
			if s, ok := attr.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}

// sanitize maps a dotted metric name onto the Prometheus character set.
func sanitize(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}

// --- LOGGING ---

// Debug forwards to the delegate provider.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.delegate.Debug(ctx, msg, attrs...)
}

// Info forwards to the delegate provider.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.delegate.Info(ctx, msg, attrs...)
}

// Warn forwards to the delegate provider.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.delegate.Warn(ctx, msg, attrs...)
}

// Error forwards to the delegate provider.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.delegate.Error(ctx, msg, attrs...)
}
