package observability

import "context"

// Nop returns a Provider that discards every log event and metric. It is the
// default observer for components that were not configured with one, so call
// sites never need nil checks.
func Nop() Provider {
	return nopProvider{}
}

type nopProvider struct{}

var _ Provider = nopProvider{}

func (nopProvider) Counter(string) Counter     { return nopCounter{} }
func (nopProvider) Histogram(string) Histogram { return nopHistogram{} }

func (nopProvider) Debug(context.Context, string, ...Attribute) {}
func (nopProvider) Info(context.Context, string, ...Attribute)  {}
func (nopProvider) Warn(context.Context, string, ...Attribute)  {}
func (nopProvider) Error(context.Context, string, ...Attribute) {}

type nopCounter struct{}

func (nopCounter) Add(context.Context, int64, ...Attribute) {}

type nopHistogram struct{}

func (nopHistogram) Record(context.Context, float64, ...Attribute) {}
