// internal/pipeline/coordinator.go
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"synthgen/internal/common/logger"
	"synthgen/internal/common/metrics"
	"synthgen/internal/dataset"
)

// Task produces one fully-populated record from its own random generator.
// Tasks must not share mutable state; all randomness comes from rng.
type Task[T any] func(ctx context.Context, rng *rand.Rand) (T, error)

// Result is the explicit outcome of one task, tagged with its submission
// index. Failed items surface here and in the dropped count rather than
// silently shrinking the stream.
type Result[T any] struct {
	Index  int
	Record T
	Err    error
}

// Options configure one coordinated batch.
type Options struct {
	// Stream labels logs and metrics for the batch.
	Stream dataset.StreamKind
	// Parallel runs tasks on the bounded worker pool instead of the
	// calling goroutine.
	Parallel bool
	// Seed is the run-level seed; task i draws from rand.NewSource(Seed+i),
	// so output does not depend on the concurrency mode.
	Seed   int64
	Logger logger.Logger
}

// Coordinate executes every task and returns the successful records in
// submission order together with the number of dropped items. A task error
// or recovered panic drops that single item; the batch always completes.
func Coordinate[T any](ctx context.Context, opts Options, tasks []Task[T]) ([]T, int) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	results := make([]Result[T], len(tasks))
	if opts.Parallel {
		runPool(ctx, opts.Seed, tasks, results)
	} else {
		for i, task := range tasks {
			if err := ctx.Err(); err != nil {
				results[i] = Result[T]{Index: i, Err: err}
				continue
			}
			results[i] = runTask(ctx, opts.Seed+int64(i), i, task)
		}
	}

	records := make([]T, 0, len(tasks))
	dropped := 0
	for _, res := range results {
		if res.Err != nil {
			dropped++
			log.WithError(res.Err).Warn("dropping failed item", map[string]interface{}{
				"stream": string(opts.Stream),
				"index":  res.Index,
			})
			continue
		}
		records = append(records, res.Record)
	}

	if dropped > 0 {
		metrics.ItemsDropped.WithLabelValues(string(opts.Stream)).Add(float64(dropped))
	}
	return records, dropped
}

// poolSize bounds the parallel worker count.
func poolSize() int {
	if n := runtime.NumCPU(); n < 4 {
		return n
	}
	return 4
}

// runPool fans tasks out over a bounded pool. Each result lands in the slot
// matching its submission index, so no ordering work is needed afterwards.
// Cancellation is honored between task launches; in-flight tasks observe ctx
// themselves.
func runPool[T any](ctx context.Context, seed int64, tasks []Task[T], results []Result[T]) {
	slots := make(chan struct{}, poolSize())
	var wg sync.WaitGroup

	for i, task := range tasks {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			results[i] = Result[T]{Index: i, Err: ctx.Err()}
			continue
		}

		wg.Add(1)
		go func(i int, task Task[T]) {
			defer wg.Done()
			defer func() { <-slots }()
			results[i] = runTask(ctx, seed+int64(i), i, task)
		}(i, task)
	}
	wg.Wait()
}

// runTask executes one task with its own seeded generator, converting a
// panic into an ordinary task error.
func runTask[T any](ctx context.Context, seed int64, index int, task Task[T]) (res Result[T]) {
	res.Index = index
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("task %d panicked: %v", index, r)
		}
	}()

	rng := rand.New(rand.NewSource(seed))
	res.Record, res.Err = task(ctx, rng)
	return res
}
