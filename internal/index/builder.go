package index

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/bookindex/internal/logfields"
	"git.home.luguber.info/inful/bookindex/internal/metrics"
	"git.home.luguber.info/inful/bookindex/internal/util/sets"
)

// SuccessMessage is logged once a run has written the index.
const SuccessMessage = "Index generation complete"

// FailureMessage is logged with the triggering error when a run fails.
const FailureMessage = "Error generating index"

// Report summarizes a successful run.
type Report struct {
	RunID          string
	IndexPath      string
	Files          []string
	Bytes          int
	Duration       time.Duration
	StageDurations map[StageName]time.Duration
}

// Result is the outcome of Run. Err is nil on success.
type Result struct {
	RunID  string
	Report *Report
	Err    error
}

// OK reports whether the run wrote the index.
func (r Result) OK() bool { return r.Err == nil }

// Option customizes a Builder.
type Option func(*Builder)

// WithLogger sets the log sink (slog.Default() otherwise).
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder (NoopRecorder otherwise).
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(b *Builder) { b.runID = id }
}

// Builder generates index documents for one set of Options.
type Builder struct {
	opts     Options
	logger   *slog.Logger
	recorder metrics.Recorder
	runID    string
}

// NewBuilder returns a Builder for opts.
func NewBuilder(opts Options, options ...Option) *Builder {
	b := &Builder{
		opts:     opts,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, o := range options {
		o(b)
	}
	return b
}

// Generate runs the pipeline and returns the first error unchanged. Nothing is
// written unless every stage before publish succeeded.
func (b *Builder) Generate(ctx context.Context) (*Report, error) {
	runID := b.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	if err := b.opts.Validate(); err != nil {
		return nil, err
	}

	rs := &runState{
		opts:     b.opts,
		logger:   b.logger.With(logfields.RunID(runID)),
		orderer:  NewOrderer(b.opts.locale()),
		excluded: sets.New(b.opts.ExcludeFiles...),
		timings:  make(map[StageName]time.Duration),
	}
	if abs, err := filepath.Abs(b.opts.IndexPath); err == nil {
		rs.indexAbs = abs
	}

	start := time.Now()
	err := runStages(ctx, rs, b.recorder, pipeline())
	dur := time.Since(start)
	b.recorder.ObserveRunDuration(dur)
	if err != nil {
		return nil, err
	}

	b.recorder.SetIndexedFiles(len(rs.docs))
	b.recorder.SetIndexBytes(len(rs.output))
	return &Report{
		RunID:          runID,
		IndexPath:      b.opts.IndexPath,
		Files:          append([]string(nil), rs.names...),
		Bytes:          len(rs.output),
		Duration:       dur,
		StageDurations: rs.timings,
	}, nil
}

// Run generates the index and converts any failure into a logged Result
// instead of returning it. It always returns normally.
func (b *Builder) Run(ctx context.Context) Result {
	if b.runID == "" {
		b.runID = uuid.NewString()
	}
	logger := b.logger.With(logfields.RunID(b.runID))
	logger.Info("Generating index",
		logfields.Path(b.opts.DocsDir),
		logfields.Output(b.opts.IndexPath))

	report, err := b.Generate(ctx)
	if err != nil {
		b.recorder.IncRunOutcome(metrics.OutcomeFailed)
		attrs := []any{logfields.Error(err)}
		if op, ok := OpOf(err); ok {
			attrs = append(attrs, logfields.Op(string(op)))
		}
		if path, ok := PathOf(err); ok {
			attrs = append(attrs, logfields.Path(path))
		}
		logger.Error(FailureMessage, attrs...)
		return Result{RunID: b.runID, Err: err}
	}

	b.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	logger.Info(SuccessMessage,
		logfields.Output(report.IndexPath),
		logfields.Count(len(report.Files)),
		logfields.Bytes(report.Bytes),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return Result{RunID: b.runID, Report: report}
}

// Run is shorthand for NewBuilder(opts, options...).Run(ctx).
func Run(ctx context.Context, opts Options, options ...Option) Result {
	return NewBuilder(opts, options...).Run(ctx)
}

// Generate is shorthand for NewBuilder(opts, options...).Generate(ctx).
func Generate(ctx context.Context, opts Options, options ...Option) (*Report, error) {
	return NewBuilder(opts, options...).Generate(ctx)
}
