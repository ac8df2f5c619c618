// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItemsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthgen_items_generated_total",
			Help: "Total number of dataset items generated, by stream and text source",
		},
		[]string{"stream", "source"},
	)

	ItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthgen_items_dropped_total",
			Help: "Total number of dataset items dropped after task failure",
		},
		[]string{"stream"},
	)

	SynthesisFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthgen_synthesis_fallbacks_total",
			Help: "Total number of generative attempts that fell back to a template",
		},
		[]string{"stream", "reason"},
	)

	SynthesisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "synthgen_synthesis_duration_seconds",
			Help: "Duration of text synthesis per item in seconds",
		},
		[]string{"stream"},
	)

	GenAIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthgen_genai_requests_total",
			Help: "Total number of requests sent to the generative text backend",
		},
		[]string{"status"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "synthgen_cache_hits_total",
			Help: "Total number of generated-text cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "synthgen_cache_misses_total",
			Help: "Total number of generated-text cache misses",
		},
	)

	SinkWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthgen_sink_writes_total",
			Help: "Total number of sink write operations, by sink and outcome",
		},
		[]string{"sink", "status"},
	)
)
