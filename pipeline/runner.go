package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
)

// Runner executes a Registry's transform chain over item sources. A Runner
// is immutable after construction; each Run call resolves the registry
// afresh and produces an independent lazy iterator, so a single Runner is
// safe to share across concurrent runs.
type Runner[T any] struct {
	registry *Registry[T]
	policy   ErrorPolicy[T]
	skip     []string
	log      *logger.Logger
	tracing  bool
	metrics  *observability.Metrics
}

// Option configures a Runner.
type Option[T any] func(*Runner[T])

// WithErrorPolicy sets the recovery policy consulted on per-item failures.
func WithErrorPolicy[T any](p ErrorPolicy[T]) Option[T] {
	return func(r *Runner[T]) { r.policy = p }
}

// WithSkipGroups excludes every entry registered under the given groups.
func WithSkipGroups[T any](groups ...string) Option[T] {
	return func(r *Runner[T]) { r.skip = append(r.skip, groups...) }
}

// WithLogger sets the logger used for run diagnostics and the default policy.
func WithLogger[T any](l *logger.Logger) Option[T] {
	return func(r *Runner[T]) { r.log = l }
}

// WithTracing wraps every resolved stage in an OpenTelemetry span.
func WithTracing[T any]() Option[T] {
	return func(r *Runner[T]) { r.tracing = true }
}

// WithMetrics records item and per-stage metrics for every run.
func WithMetrics[T any](m *observability.Metrics) Option[T] {
	return func(r *Runner[T]) { r.metrics = m }
}

// New creates a Runner over the registry.
func New[T any](reg *Registry[T], opts ...Option[T]) *Runner[T] {
	r := &Runner[T]{
		registry: reg,
		log:      logger.WithComponent("pipeline"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.policy == nil {
		r.policy = DefaultErrorPolicy[T](r.log)
	}
	return r
}

// Run resolves the registry once, invoking every builder afresh, and
// returns a lazy iterator over the chain's outputs for the given source.
// Nothing executes until the iterator is pulled. A configuration error from
// a builder is returned here, before any item is processed.
func (r *Runner[T]) Run(ctx context.Context, source Iterator[T]) (Iterator[T], error) {
	return r.RunSkipping(ctx, source)
}

// RunSkipping is Run with additional skip groups for this run only, merged
// with any groups configured on the Runner.
func (r *Runner[T]) RunSkipping(ctx context.Context, source Iterator[T], skipGroups ...string) (Iterator[T], error) {
	skip := append(append([]string{}, r.skip...), skipGroups...)
	stages, err := resolveEntries(r.registry.Entries(), skip)
	if err != nil {
		return nil, err
	}

	if r.metrics != nil {
		for i := range stages {
			stages[i].fn = WithStageMetrics(stages[i].fn, stages[i].name, r.metrics)
		}
	}
	if r.tracing {
		for i := range stages {
			stages[i].fn = WithStageTracing(stages[i].fn, stages[i].name)
		}
	}

	runID := uuid.NewString()
	log := r.log.WithRun(runID)
	log.Debug("pipeline run resolved", logger.Fields(
		"stages", len(stages),
		"skip_groups", skip,
	))

	return &runIter[T]{
		policy:  r.policy,
		metrics: r.metrics,
		log:     log,
		source:  source,
		stages:  stages,
	}, nil
}

// RunSlice is a convenience wrapper over Run for in-memory sources.
func (r *Runner[T]) RunSlice(ctx context.Context, items []T) (Iterator[T], error) {
	return r.Run(ctx, NewSliceSource(items))
}

// runIter is the executor: a lazy producer over (source, stages, policy).
// Fan-out recursion is expressed as a nested runIter over the fan-out items
// and the sliced remaining chain.
type runIter[T any] struct {
	policy  ErrorPolicy[T]
	metrics *observability.Metrics
	log     *logger.Logger
	source  Iterator[T]
	stages  []stage[T]
	sub     *runIter[T]
	last    T
	hasLast bool
	srcDone bool
	closed  bool
}

func (it *runIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		// Drain an active fan-out sub-run first: all outputs of one source
		// item's subtree are yielded before the next source item is pulled.
		if it.sub != nil {
			val, ok, err := it.sub.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.sub.Close()
			it.sub = nil
		}
		if it.srcDone || it.closed {
			return zero, false, nil
		}
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}

		item, ok, err := it.source.Next(ctx)
		if err != nil {
			// Source pull failure: the policy sees the last successfully
			// pulled item, and the run ends regardless of what it returns,
			// since there is no pending item to substitute.
			it.srcDone = true
			serr := errors.Source(err)
			if !it.hasLast {
				serr = serr.WithDetail("first_pull", true)
			}
			if it.metrics != nil {
				it.metrics.RecordError(ctx, "source", "")
			}
			if _, perr := it.policy(ctx, it.last, serr); perr != nil {
				return zero, false, perr
			}
			return zero, false, nil
		}
		if !ok {
			it.srcDone = true
			return zero, false, nil
		}
		it.last, it.hasLast = item, true
		if it.metrics != nil {
			it.metrics.RecordPull(ctx)
		}

		out, yielded, err := it.advance(ctx, item)
		if err != nil {
			return zero, false, err
		}
		if yielded {
			if it.metrics != nil {
				it.metrics.RecordYield(ctx)
			}
			return out, true, nil
		}
		// Dropped, or a fan-out sub-run was scheduled.
	}
}

// advance walks the chain from stage 0 for one item. It returns the final
// item once every stage has passed it through; a drop ends the item with
// zero outputs, and a fan-out schedules a sub-run over the remaining stages.
func (it *runIter[T]) advance(ctx context.Context, item T) (T, bool, error) {
	var zero T
	for i := range it.stages {
		st := it.stages[i]
		out, err := st.fn(ctx, item)
		if err != nil {
			sub, perr := it.policy(ctx, item, errors.Item(st.name, err))
			if perr != nil {
				return zero, false, perr
			}
			// The substitute resumes at the next stage; the failed stage
			// is not retried.
			item = sub
			continue
		}
		switch {
		case out.IsDrop():
			if it.metrics != nil {
				it.metrics.RecordDrop(ctx, st.name)
			}
			return zero, false, nil
		case out.IsMany():
			if it.metrics != nil {
				it.metrics.RecordFanOut(ctx, st.name, len(out.Items()))
			}
			it.sub = &runIter[T]{
				policy:  it.policy,
				metrics: it.metrics,
				log:     it.log,
				source:  NewSliceSource(out.Items()),
				stages:  it.stages[i+1:],
			}
			return zero, false, nil
		default:
			item = out.Value()
		}
	}
	return item, true, nil
}

func (it *runIter[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if it.sub != nil {
		_ = it.sub.Close()
		it.sub = nil
	}
	return it.source.Close()
}
