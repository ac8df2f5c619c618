// internal/common/report/report.go
package report

import (
	"fmt"
	"strings"
	"time"
)

// StreamSummary captures the outcome of one entity stream.
type StreamSummary struct {
	Stream     string `json:"stream"`
	Planned    int    `json:"planned"`
	Generated  int    `json:"generated"`
	Dropped    int    `json:"dropped"`
	Generative int    `json:"generative"`
	Template   int    `json:"template"`
}

// SinkSummary captures the outcome of one sink write.
type SinkSummary struct {
	Sink   string `json:"sink"`
	Status string `json:"status"` // "ok" or "failed"
	Error  string `json:"error,omitempty"`
}

// RunReport is the caller-facing summary of a full pipeline run. Dropped
// items are reported here explicitly; streams never shrink without the
// report saying so.
type RunReport struct {
	RunID           string          `json:"run_id"`
	Model           string          `json:"model"`
	TemplatesOnly   bool            `json:"templates_only"`
	Parallel        bool            `json:"parallel"`
	Seed            int64           `json:"seed"`
	StartedAt       time.Time       `json:"started_at"`
	Duration        time.Duration   `json:"duration"`
	Customers       int             `json:"customers"`
	Streams         []StreamSummary `json:"streams"`
	Sinks           []SinkSummary   `json:"sinks"`
	ValidationError string          `json:"validation_error,omitempty"`
}

// TotalGenerated returns the number of records produced across all streams,
// customers excluded.
func (r *RunReport) TotalGenerated() int {
	total := 0
	for _, s := range r.Streams {
		total += s.Generated
	}
	return total
}

// TotalDropped returns the number of planned items lost to task failures.
func (r *RunReport) TotalDropped() int {
	total := 0
	for _, s := range r.Streams {
		total += s.Dropped
	}
	return total
}

// Degraded reports whether any stream lost items, any sink write failed, or
// the output failed schema validation.
func (r *RunReport) Degraded() bool {
	if r.TotalDropped() > 0 || r.ValidationError != "" {
		return true
	}
	for _, s := range r.Sinks {
		if s.Status != "ok" {
			return true
		}
	}
	return false
}

// Fields flattens the report for structured logging.
func (r *RunReport) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"run_id":      r.RunID,
		"customers":   r.Customers,
		"generated":   r.TotalGenerated(),
		"dropped":     r.TotalDropped(),
		"duration_ms": r.Duration.Milliseconds(),
	}
	for _, s := range r.Streams {
		fields[s.Stream] = s.Generated
	}
	return fields
}

// Text renders a short human-readable summary used for notifications.
func (r *RunReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset generation run %s completed in %s\n", r.RunID, r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "Customers: %d\n", r.Customers)
	for _, s := range r.Streams {
		fmt.Fprintf(&b, "%s: %d generated (%d planned, %d dropped)\n", s.Stream, s.Generated, s.Planned, s.Dropped)
	}
	for _, s := range r.Sinks {
		if s.Status == "ok" {
			fmt.Fprintf(&b, "sink %s: ok\n", s.Sink)
		} else {
			fmt.Fprintf(&b, "sink %s: FAILED (%s)\n", s.Sink, s.Error)
		}
	}
	if r.ValidationError != "" {
		fmt.Fprintf(&b, "schema validation: FAILED (%s)\n", r.ValidationError)
	}
	return b.String()
}
