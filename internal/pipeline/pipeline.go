// internal/pipeline/pipeline.go

// Package pipeline runs the generation batch end to end: population build,
// distribution planning, coordinated synthesis, sequencing and persistence.
package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"synthgen/internal/common/config"
	"synthgen/internal/common/logger"
	"synthgen/internal/common/metrics"
	"synthgen/internal/common/observability"
	"synthgen/internal/common/report"
	"synthgen/internal/dataset"
	"synthgen/internal/planner"
	"synthgen/internal/population"
	"synthgen/internal/sink"
	"synthgen/internal/synthesis"
)

// streamSeedStride keeps per-task seeds of different streams disjoint; each
// stream plans at most dataset.MaxStreamItems tasks.
const streamSeedStride = 1 << 20

// Notifier delivers the finished run report out of band. A nil Notifier
// skips notification.
type Notifier interface {
	Notify(ctx context.Context, rep *report.RunReport) error
}

// Runner wires the whole batch together. Construct once per run.
type Runner struct {
	cfg      *config.Config
	engine   *synthesis.Engine
	sinks    []sink.Sink
	schema   *sink.Validator
	notifier Notifier
	obs      *observability.Observability
	logger   logger.Logger
}

// NewRunner creates a runner. sinks[0] must be the mandatory file sink; any
// further sinks are optional and their failures degrade instead of aborting.
func NewRunner(cfg *config.Config, engine *synthesis.Engine, sinks []sink.Sink,
	schema *sink.Validator, notifier Notifier, obs *observability.Observability, log logger.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		engine:   engine,
		sinks:    sinks,
		schema:   schema,
		notifier: notifier,
		obs:      obs,
		logger: log.With(map[string]interface{}{
			"component": "pipeline",
		}),
	}
}

// Run executes one batch and returns the run report. The report is returned
// even when err is non-nil so callers can see how far the run got. Only the
// mandatory file sink can fail the run; everything else degrades into the
// report.
func (r *Runner) Run(ctx context.Context) (*report.RunReport, error) {
	seed := r.cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rep := &report.RunReport{
		RunID:         uuid.New().String(),
		TemplatesOnly: r.cfg.Generation.TemplatesOnly,
		Parallel:      r.cfg.Generation.Parallel,
		Seed:          seed,
		StartedAt:     time.Now().UTC(),
		Customers:     r.cfg.Generation.Customers,
	}
	if !r.cfg.Generation.TemplatesOnly {
		rep.Model = r.cfg.GenAI.Model
	}
	log := r.logger.With(map[string]interface{}{
		"run_id": rep.RunID,
	})
	log.Info("starting generation run", map[string]interface{}{
		"customers": r.cfg.Generation.Customers,
		"parallel":  r.cfg.Generation.Parallel,
		"seed":      seed,
	})

	// The builder and planner share one generator; per-item synthesis gets
	// independent per-task generators from the coordinator.
	rng := rand.New(rand.NewSource(seed))
	customers := population.NewBuilder(rng, log).Build(r.cfg.Generation.Customers)
	plan := planner.NewPlanner(rng, log).Plan(customers)

	bundle := &dataset.Bundle{Customers: customers}
	bundle.Interactions = runStream(ctx, r, rep, log, seed, 0, plan.Interactions,
		dataset.StreamInteractions, r.engine.BuildInteraction)
	bundle.Reviews = runStream(ctx, r, rep, log, seed, 1, plan.Reviews,
		dataset.StreamReviews, r.engine.BuildReview)
	bundle.Tickets = runStream(ctx, r, rep, log, seed, 2, plan.Tickets,
		dataset.StreamTickets, r.engine.BuildTicket)

	if r.schema != nil && r.cfg.Sinks.Output.ValidateSchema {
		if err := r.schema.ValidateBundle(bundle); err != nil {
			// A schema failure means a generator bug, not bad input; the
			// dataset is still written so it can be inspected.
			rep.ValidationError = err.Error()
			log.WithError(err).Error("bundle failed schema validation", nil)
		}
	}

	sinkErr := r.persist(ctx, bundle, rep, log)

	rep.Duration = time.Since(rep.StartedAt)
	status := "ok"
	if rep.Degraded() || sinkErr != nil {
		status = "degraded"
	}
	if r.obs != nil {
		r.obs.RecordRunDuration(ctx, rep.Duration, status)
	}
	log.Info("generation run finished", rep.Fields())

	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, rep); err != nil {
			log.WithError(err).Warn("run notification failed", nil)
		}
	}
	return rep, sinkErr
}

// runStream coordinates synthesis for one stream and sequences the result.
// build is one of the engine's Build* methods; ordinal separates the
// stream's per-task seed range from its siblings'.
func runStream[T Sequenced[T]](ctx context.Context, r *Runner, rep *report.RunReport, log logger.Logger,
	seed int64, ordinal int, items []planner.WorkItem, kind dataset.StreamKind,
	build func(context.Context, planner.WorkItem, *rand.Rand) (T, error)) []T {

	tasks := make([]Task[T], len(items))
	for i, item := range items {
		item := item
		tasks[i] = func(ctx context.Context, rng *rand.Rand) (T, error) {
			return build(ctx, item, rng)
		}
	}

	start := time.Now()
	records, dropped := Coordinate(ctx, Options{
		Stream:   kind,
		Parallel: r.cfg.Generation.Parallel,
		Seed:     seed + int64(ordinal)*streamSeedStride,
		Logger:   log,
	}, tasks)

	if r.obs != nil {
		r.obs.RecordTasksProcessed(ctx, string(kind), "ok", len(records))
		r.obs.RecordTasksProcessed(ctx, string(kind), "dropped", dropped)
		r.obs.RecordTaskDuration(ctx, time.Since(start), string(kind))
	}

	generative, template := r.engine.SourceCounts(kind)
	rep.Streams = append(rep.Streams, report.StreamSummary{
		Stream:     string(kind),
		Planned:    len(items),
		Generated:  len(records),
		Dropped:    dropped,
		Generative: int(generative),
		Template:   int(template),
	})
	if dropped > 0 {
		log.Warn("stream lost items to task failures", map[string]interface{}{
			"stream":  string(kind),
			"dropped": dropped,
		})
	}

	return Sequence(records, kind.IDPrefix())
}

// persist writes the bundle to every sink. The first sink is mandatory and
// its error is returned; optional sink failures only mark the report.
func (r *Runner) persist(ctx context.Context, bundle *dataset.Bundle, rep *report.RunReport, log logger.Logger) error {
	var mandatoryErr error
	for i, s := range r.sinks {
		summary := report.SinkSummary{Sink: s.Name(), Status: "ok"}
		if err := s.Write(ctx, bundle); err != nil {
			summary.Status = "failed"
			summary.Error = err.Error()
			metrics.SinkWrites.WithLabelValues(s.Name(), "failed").Inc()
			log.WithError(err).Error("sink write failed", map[string]interface{}{
				"sink": s.Name(),
			})
			if i == 0 {
				mandatoryErr = err
			}
		} else {
			metrics.SinkWrites.WithLabelValues(s.Name(), "ok").Inc()
		}
		rep.Sinks = append(rep.Sinks, summary)
	}
	return mandatoryErr
}
