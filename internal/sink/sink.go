// internal/sink/sink.go

// Package sink persists a generated dataset bundle. The JSON file sink is
// mandatory; the Kafka, warehouse and search sinks are opt-in and a failure
// in any of them degrades the run instead of aborting it.
package sink

import (
	"context"

	"synthgen/internal/dataset"
)

// Sink writes one run's complete dataset bundle to a persistence target.
type Sink interface {
	// Name identifies the sink in logs, metrics and the run report.
	Name() string
	Write(ctx context.Context, bundle *dataset.Bundle) error
}
