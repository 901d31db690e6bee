// Package risk defines the risk-assessment record shape produced by the
// upstream analysis model, along with the fixed fallback record substituted
// when a model response cannot be recovered as JSON.
//
// The recovery engine itself does not enforce this schema on successfully
// parsed data; a repaired response may be missing any of these fields.
// Callers that need the full shape should decode into [Report] and check it
// with [Report.Validate] before building downstream output.
package risk
