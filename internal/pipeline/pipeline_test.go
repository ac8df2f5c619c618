// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/internal/common/config"
	"synthgen/internal/common/logger"
	"synthgen/internal/common/report"
	"synthgen/internal/dataset"
	"synthgen/internal/sink"
	"synthgen/internal/synthesis"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ==========================
// Test Helper Functions
// ==========================

func testConfig(t *testing.T, customers int, parallel bool) *config.Config {
	cfg := &config.Config{}
	cfg.Generation = config.GenerationConfig{
		Customers:     customers,
		TemplateRatio: 1.0,
		TemplatesOnly: true,
		Parallel:      parallel,
		Seed:          424242,
		MinTextLength: 10,
	}
	cfg.Sinks.Output = config.OutputConfig{
		Dir:              t.TempDir(),
		CustomersFile:    "customers.json",
		InteractionsFile: "customer_interactions.json",
		ReviewsFile:      "product_reviews.json",
		TicketsFile:      "support_tickets.json",
		ValidateSchema:   true,
	}
	return cfg
}

func newTestRunner(t *testing.T, cfg *config.Config, extra ...sink.Sink) *Runner {
	log := logger.NewTestLogger(t)
	engine := synthesis.NewEngine(synthesis.Config{
		TemplateRatio: cfg.Generation.TemplateRatio,
		MinTextLength: cfg.Generation.MinTextLength,
	}, nil, nil, log)

	validator, err := sink.NewValidator()
	require.NoError(t, err)

	sinks := append([]sink.Sink{sink.NewFileSink(cfg.Sinks.Output, log)}, extra...)
	return NewRunner(cfg, engine, sinks, validator, nil, nil, log)
}

func readStream[T any](t *testing.T, dir, name string) []T {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	var records []T
	require.NoError(t, json.Unmarshal(raw, &records))
	return records
}

// failingSink always errors; used to exercise optional-sink degradation.
type failingSink struct{}

func (failingSink) Name() string                                  { return "broken" }
func (failingSink) Write(context.Context, *dataset.Bundle) error { return errors.New("unreachable") }

// recordingNotifier captures the report handed to Notify.
type recordingNotifier struct {
	rep *report.RunReport
}

func (n *recordingNotifier) Notify(_ context.Context, rep *report.RunReport) error {
	n.rep = rep
	return nil
}

// ==========================
// End-to-End Scenario (N=10, sequential, templates-only)
// ==========================

func TestRunner_Run_ConcreteScenario(t *testing.T) {
	cfg := testConfig(t, 10, false)
	rep, err := newTestRunner(t, cfg).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rep.ValidationError)
	assert.Zero(t, rep.TotalDropped())

	dir := cfg.Sinks.Output.Dir
	customers := readStream[dataset.Customer](t, dir, "customers.json")
	interactions := readStream[dataset.Interaction](t, dir, "customer_interactions.json")
	reviews := readStream[dataset.Review](t, dir, "product_reviews.json")
	tickets := readStream[dataset.Ticket](t, dir, "support_tickets.json")

	assert.Len(t, customers, 10)
	assert.Len(t, interactions, 30)
	assert.Len(t, reviews, 20)
	assert.Len(t, tickets, 20)

	assert.Equal(t, "INT-001", interactions[0].InteractionID)
	assert.Equal(t, "REV-001", reviews[0].ReviewID)
	assert.Equal(t, "TICKET-001", tickets[0].TicketID)
	assert.LessOrEqual(t, interactions[0].InteractionDate, interactions[1].InteractionDate)
	assert.LessOrEqual(t, reviews[0].ReviewDate, reviews[1].ReviewDate)
	assert.LessOrEqual(t, tickets[0].TicketDate, tickets[1].TicketDate)
}

func TestRunner_Run_DatasetProperties(t *testing.T) {
	cfg := testConfig(t, 100, false)
	rep, err := newTestRunner(t, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rep.ValidationError)

	dir := cfg.Sinks.Output.Dir
	customers := readStream[dataset.Customer](t, dir, "customers.json")
	interactions := readStream[dataset.Interaction](t, dir, "customer_interactions.json")
	reviews := readStream[dataset.Review](t, dir, "product_reviews.json")
	tickets := readStream[dataset.Ticket](t, dir, "support_tickets.json")

	known := make(map[string]bool, len(customers))
	for _, c := range customers {
		known[c.CustomerID] = true
	}

	// Dense unique ids with the stream prefix
	idPattern := regexp.MustCompile(`^INT-\d{3}$`)
	seen := make(map[string]bool)
	for i, in := range interactions {
		assert.Regexp(t, idPattern, in.InteractionID)
		assert.False(t, seen[in.InteractionID], "duplicate id %s", in.InteractionID)
		seen[in.InteractionID] = true
		assert.True(t, known[in.CustomerID], "interaction %d references unknown customer", i)
	}
	assert.True(t, sort.SliceIsSorted(interactions, func(i, j int) bool {
		return interactions[i].InteractionDate < interactions[j].InteractionDate
	}))

	// Tone quotas for 200 reviews are 100 positive / 60 negative / 40
	// neutral; jitter keeps positive in {4,5}, negative in {1,2} and
	// neutral in {2,3,4}, so the rating histogram is bounded by the quotas.
	high, low, mid := 0, 0, 0
	for _, r := range reviews {
		assert.True(t, known[r.CustomerID])
		assert.GreaterOrEqual(t, r.ReviewRating, 1)
		assert.LessOrEqual(t, r.ReviewRating, 5)
		switch {
		case r.ReviewRating >= 4:
			high++
		case r.ReviewRating <= 2:
			low++
		default:
			mid++
		}
	}
	assert.GreaterOrEqual(t, high, 100, "every positive review rates 4-5")
	assert.GreaterOrEqual(t, low, 60, "every negative review rates 1-2")
	assert.LessOrEqual(t, mid, 40, "only neutral reviews rate 3")

	// Non-English share ≈ 20% within ±10pp for N≥100 items
	foreign := 0
	for _, r := range reviews {
		if r.ReviewLanguage != dataset.LanguageEnglish {
			foreign++
		}
	}
	share := float64(foreign) / float64(len(reviews))
	assert.InDelta(t, 0.2, share, 0.1)

	for _, tk := range tickets {
		assert.True(t, known[tk.CustomerID])
		assert.NotEmpty(t, tk.TicketSubcategory)
		assert.NotEmpty(t, tk.TicketStatus)
	}
}

// ==========================
// Shape Idempotence and Concurrency Modes
// ==========================

func TestRunner_Run_ShapeIdempotentAcrossModes(t *testing.T) {
	seqCfg := testConfig(t, 25, false)
	parCfg := testConfig(t, 25, true)

	seqRep, err := newTestRunner(t, seqCfg).Run(context.Background())
	require.NoError(t, err)
	parRep, err := newTestRunner(t, parCfg).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, seqRep.Streams, 3)
	require.Len(t, parRep.Streams, 3)
	for i := range seqRep.Streams {
		assert.Equal(t, seqRep.Streams[i].Stream, parRep.Streams[i].Stream)
		assert.Equal(t, seqRep.Streams[i].Generated, parRep.Streams[i].Generated,
			"concurrency mode must not change stream size")
	}
	assert.Zero(t, seqRep.TotalDropped())
	assert.Zero(t, parRep.TotalDropped())
}

func TestRunner_Run_EmptyPopulation(t *testing.T) {
	cfg := testConfig(t, 0, false)
	rep, err := newTestRunner(t, cfg).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, rep.TotalGenerated())

	customers := readStream[dataset.Customer](t, cfg.Sinks.Output.Dir, "customers.json")
	assert.Empty(t, customers)
}

// ==========================
// Degradation Paths
// ==========================

func TestRunner_Run_OptionalSinkFailureDegrades(t *testing.T) {
	cfg := testConfig(t, 5, false)
	rep, err := newTestRunner(t, cfg, failingSink{}).Run(context.Background())

	require.NoError(t, err, "optional sink failures must not fail the run")
	require.Len(t, rep.Sinks, 2)
	assert.Equal(t, "ok", rep.Sinks[0].Status)
	assert.Equal(t, "failed", rep.Sinks[1].Status)
	assert.True(t, rep.Degraded())
}

func TestRunner_Run_MandatoryFileSinkFailureAborts(t *testing.T) {
	cfg := testConfig(t, 5, false)
	// A file path in place of the output dir makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg.Sinks.Output.Dir = filepath.Join(blocker, "data")

	rep, err := newTestRunner(t, cfg).Run(context.Background())

	assert.Error(t, err)
	require.Len(t, rep.Sinks, 1)
	assert.Equal(t, "failed", rep.Sinks[0].Status)
}

func TestRunner_Run_NotifierReceivesReport(t *testing.T) {
	cfg := testConfig(t, 5, false)
	log := logger.NewTestLogger(t)
	engine := synthesis.NewEngine(synthesis.Config{TemplateRatio: 1, MinTextLength: 10}, nil, nil, log)
	notifier := &recordingNotifier{}
	runner := NewRunner(cfg, engine, []sink.Sink{sink.NewFileSink(cfg.Sinks.Output, log)}, nil, notifier, nil, log)

	rep, err := runner.Run(context.Background())

	require.NoError(t, err)
	require.NotNil(t, notifier.rep)
	assert.Equal(t, rep.RunID, notifier.rep.RunID)
	assert.Contains(t, notifier.rep.Text(), "Customers: 5")
}
