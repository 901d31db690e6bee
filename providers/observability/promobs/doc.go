// Package promobs implements the metrics half of [observability.Provider]
// with Prometheus collectors, so recovery outcomes can be scraped in
// production. Log events are forwarded to an optional delegate provider and
// dropped otherwise.
package promobs
