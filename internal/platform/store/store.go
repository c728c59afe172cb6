package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

const defaultQueueSize = 256

// ErrAlreadyRunning is returned by Run when the dispatch loop is already
// active.
var ErrAlreadyRunning = errors.New("store: already running")

// EffectFunc reacts to an action after it has been reduced. state is the
// snapshot produced by that reduction. The returned actions are dispatched
// in order. Effects convert their own errors into FAIL actions; they never
// return errors.
type EffectFunc[S any] func(ctx context.Context, a Action, state S) []Action

// Listener observes every reduced action together with the new snapshot. It
// runs on the dispatch loop and must not block.
type Listener[S any] func(a Action, state S)

type effect[S any] struct {
	name string
	fn   EffectFunc[S]
}

// Option configures a Store.
type Option func(*options)

type options struct {
	queueSize     int
	effectTimeout time.Duration
	logger        *slog.Logger
	metrics       *telemetry.Metrics
}

// WithQueueSize sets the capacity of the dispatch queue. Dispatch blocks
// while the queue is full.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithEffectTimeout bounds every effect run. Zero disables the bound.
func WithEffectTimeout(d time.Duration) Option {
	return func(o *options) {
		o.effectTimeout = d
	}
}

// WithLogger sets the logger used for dispatch and effect diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics enables action and effect metrics. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Store holds the state of type S and serializes every transition through a
// single dispatch loop. Effects run concurrently; their completions are
// unordered relative to each other and re-enter the loop as new actions.
// Overlapping requests of the same type are neither cancelled nor
// de-duplicated.
type Store[S any] struct {
	reduce  Reducer[S]
	state   *SafeRef[S]
	queue   chan Action
	opts    options
	running atomic.Bool

	// stopMu orders effect results against the drain on shutdown: results
	// hold it for reading while they enqueue, Run holds it for writing
	// while it drains.
	stopMu sync.RWMutex

	mu        sync.RWMutex
	effects   map[ActionType][]effect[S]
	listeners map[uint64]Listener[S]
	nextID    uint64

	pendingMu sync.Mutex
	pending   int
	idle      []chan struct{}
}

// New creates a Store with the given initial state and root reducer. The
// dispatch loop does not start until Run is called; actions dispatched
// before that are queued.
func New[S any](initial S, reduce Reducer[S], opts ...Option) *Store[S] {
	o := options{queueSize: defaultQueueSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Store[S]{
		reduce:    reduce,
		state:     NewRef(initial),
		queue:     make(chan Action, o.queueSize),
		opts:      o,
		effects:   make(map[ActionType][]effect[S]),
		listeners: make(map[uint64]Listener[S]),
	}
}

// Effect registers fn to run after each action whose type is in types.
func (s *Store[S]) Effect(name string, fn EffectFunc[S], types ...ActionType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range types {
		s.effects[t] = append(s.effects[t], effect[S]{name: name, fn: fn})
	}
}

// Subscribe registers l and returns a function that removes it.
func (s *Store[S]) Subscribe(l Listener[S]) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// State returns the latest published snapshot.
func (s *Store[S]) State() S {
	return s.state.Get()
}

// Dispatch queues a for the dispatch loop. It blocks while the queue is full
// and returns ctx.Err() if ctx ends first.
func (s *Store[S]) Dispatch(ctx context.Context, a Action) error {
	if a == nil {
		return errors.New("store: nil action")
	}
	s.track(1)
	select {
	case s.queue <- a:
		return nil
	case <-ctx.Done():
		s.track(-1)
		return fmt.Errorf("dispatching %s: %w", a.Type(), ctx.Err())
	}
}

// Run processes queued actions until ctx is done. It returns nil on
// cancellation; effects still in flight observe the cancelled context.
func (s *Store[S]) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	s.opts.logger.InfoContext(ctx, "store dispatch loop started",
		slog.Int("queue_size", cap(s.queue)),
	)

	for {
		select {
		case <-ctx.Done():
			s.stopMu.Lock()
			s.drain()
			s.stopMu.Unlock()
			s.opts.logger.InfoContext(ctx, "store dispatch loop stopped")
			return nil
		case a := <-s.queue:
			s.process(ctx, a)
		}
	}
}

// Settle blocks until the queue is empty and no effect is in flight, or
// until ctx ends.
func (s *Store[S]) Settle(ctx context.Context) error {
	s.pendingMu.Lock()
	if s.pending == 0 {
		s.pendingMu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	s.idle = append(s.idle, ch)
	s.pendingMu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// process reduces a, publishes the snapshot, notifies listeners and starts
// matching effects. It is only called from the dispatch loop.
func (s *Store[S]) process(ctx context.Context, a Action) {
	defer s.track(-1)

	next := s.reduce(s.state.Get(), a)
	s.state.Set(next)

	s.recordAction(ctx, a)
	s.opts.logger.DebugContext(ctx, "action reduced",
		slog.String("action", a.Type().String()),
	)
	if f, ok := a.(FailureAction); ok {
		s.opts.logger.WarnContext(ctx, "failure action reduced",
			slog.String("action", a.Type().String()),
			slog.String("failure", f.FailureMessage()),
		)
	}

	s.mu.RLock()
	listeners := make([]Listener[S], 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	effects := s.effects[a.Type()]
	s.mu.RUnlock()

	for _, l := range listeners {
		l(a, next)
	}

	for _, eff := range effects {
		s.track(1)
		go s.runEffect(ctx, eff, a, next)
	}
}

// runEffect executes one effect and dispatches its results. A panicking
// effect is logged and produces no actions; it stays registered.
func (s *Store[S]) runEffect(ctx context.Context, eff effect[S], a Action, state S) {
	defer s.track(-1)

	loopCtx := ctx
	if s.opts.effectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.effectTimeout)
		defer cancel()
	}

	tracer := otel.GetTracerProvider().Tracer("store")
	ctx, span := tracer.Start(ctx, "effect "+eff.name,
		trace.WithAttributes(
			attribute.String("store.effect", eff.name),
			attribute.String("store.action", a.Type().String()),
		),
	)
	defer span.End()

	start := time.Now()
	results, panicked := s.invoke(ctx, eff, a, state)
	if panicked {
		span.SetStatus(codes.Error, "effect panicked")
	}
	s.recordEffect(ctx, eff.name, start, panicked)

	for _, r := range results {
		if r == nil {
			continue
		}
		if f, ok := r.(FailureAction); ok {
			span.AddEvent("failure", trace.WithAttributes(
				attribute.String("store.action", r.Type().String()),
			))
			s.recordFailure(ctx, eff.name, f)
		}
		if err := s.feedBack(loopCtx, r); err != nil {
			s.opts.logger.WarnContext(ctx, "dropping effect result",
				slog.String("operation", "store.runEffect"),
				slog.String("effect", eff.name),
				slog.String("action", r.Type().String()),
				slog.Any("error", err),
			)
		}
	}
}

// feedBack queues an effect result for the loop that ran the effect. Once
// that loop has stopped the result is refused rather than left in a queue
// nobody reads.
func (s *Store[S]) feedBack(loopCtx context.Context, a Action) error {
	s.stopMu.RLock()
	defer s.stopMu.RUnlock()
	if err := loopCtx.Err(); err != nil {
		return fmt.Errorf("dispatching %s: dispatch loop stopped: %w", a.Type(), err)
	}
	return s.Dispatch(loopCtx, a)
}

func (s *Store[S]) invoke(ctx context.Context, eff effect[S], a Action, state S) (results []Action, panicked bool) {
	defer func() {
		if v := recover(); v != nil {
			panicked = true
			results = nil
			s.opts.logger.ErrorContext(ctx, "effect panicked",
				slog.String("effect", eff.name),
				slog.String("action", a.Type().String()),
				slog.String("panic", fmt.Sprint(v)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	return eff.fn(ctx, a, state), false
}

// drain discards queued actions after the loop stops so that Settle
// callers are released.
func (s *Store[S]) drain() {
	for {
		select {
		case a := <-s.queue:
			s.opts.logger.Warn("discarding queued action on shutdown",
				slog.String("action", a.Type().String()),
			)
			s.track(-1)
		default:
			return
		}
	}
}

// track adjusts the count of queued actions plus running effects and wakes
// Settle callers when it reaches zero.
func (s *Store[S]) track(delta int) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	s.pending += delta
	if s.pending > 0 {
		return
	}
	s.pending = 0
	for _, ch := range s.idle {
		close(ch)
	}
	s.idle = nil
}

func (s *Store[S]) recordAction(ctx context.Context, a Action) {
	if s.opts.metrics == nil {
		return
	}
	s.opts.metrics.StoreActionTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrAction.String(a.Type().String())),
	)
}

func (s *Store[S]) recordEffect(ctx context.Context, name string, start time.Time, panicked bool) {
	if s.opts.metrics == nil {
		return
	}
	result := "success"
	if panicked {
		result = "panic"
	}
	s.opts.metrics.StoreEffectDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(
			telemetry.AttrEffect.String(name),
			telemetry.AttrResult.String(result),
		),
	)
}

func (s *Store[S]) recordFailure(ctx context.Context, name string, f FailureAction) {
	if s.opts.metrics == nil {
		return
	}
	s.opts.metrics.StoreEffectFailures.Add(ctx, 1,
		metric.WithAttributes(
			telemetry.AttrEffect.String(name),
			telemetry.AttrAction.String(f.Type().String()),
			telemetry.AttrFailureKind.String(ParseFailure(f.FailureMessage()).Kind),
		),
	)
}

// ErrNotRunning is reported by HealthCheck while the dispatch loop is down.
var ErrNotRunning = errors.New("store: dispatch loop not running")

// Name identifies the store in health reports.
func (s *Store[S]) Name() string { return "store" }

// HealthCheck reports whether the dispatch loop is active.
func (s *Store[S]) HealthCheck(context.Context) error {
	if !s.running.Load() {
		return ErrNotRunning
	}
	return nil
}

// Pending returns the number of queued actions plus in-flight effects.
func (s *Store[S]) Pending() int {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	return s.pending
}
