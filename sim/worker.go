package sim

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// DefaultInterval is the sleep between generations when none is configured.
const DefaultInterval = 100 * time.Millisecond

// State is the worker lifecycle: Running → Aborting → Done.
type State int32

const (
	Running State = iota
	Aborting
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Aborting:
		return "aborting"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Option configures a Worker.
type Option func(*Worker)

// WithInterval sets the sleep between generations.
func WithInterval(d time.Duration) Option {
	return func(w *Worker) { w.interval = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Worker) { w.logger = l }
}

// WithMetrics records progress on m.
func WithMetrics(m *Metrics) Option {
	return func(w *Worker) { w.metrics = m }
}

// WithMaxGenerations makes the worker abort itself after n generations.
// Zero means unbounded.
func WithMaxGenerations(n uint64) Option {
	return func(w *Worker) { w.maxGenerations = n }
}

// Worker advances a Grid on a fixed interval until aborted.
type Worker struct {
	grid       *model.Grid
	transition rules.Transition
	listener   Listener

	interval       time.Duration
	maxGenerations uint64
	logger         *slog.Logger
	metrics        *Metrics

	state      atomic.Int32
	abortCh    chan struct{}
	abortOnce  sync.Once
	startOnce  sync.Once
	done       chan struct{}
	generation atomic.Uint64
}

// New builds a worker for an already seeded grid. Nothing runs until Start.
func New(grid *model.Grid, transition rules.Transition, listener Listener, opts ...Option) *Worker {
	w := &Worker{
		grid:       grid,
		transition: transition,
		listener:   listener,
		interval:   DefaultInterval,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		abortCh:    make(chan struct{}),
		done:       make(chan struct{}),
	}
	if w.listener == nil {
		w.listener = ListenerFuncs{}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start launches the loop on its own goroutine. Later calls do nothing.
func (w *Worker) Start() {
	w.startOnce.Do(func() {
		w.logger.Info("simulation worker started",
			"strategy", w.transition.Name(),
			"interval", w.interval,
			"generation", w.grid.Generation())
		go w.run()
	})
}

// Abort asks the worker to stop. It never blocks and may be called from any
// goroutine any number of times. A generation already being computed is
// committed before the worker stops.
func (w *Worker) Abort() {
	w.abortOnce.Do(func() {
		w.state.CompareAndSwap(int32(Running), int32(Aborting))
		close(w.abortCh)
		w.logger.Info("simulation abort requested")
	})
}

// Done is closed after OnDone has returned.
func (w *Worker) Done() <-chan struct{} { return w.done }

// Wait blocks until the worker has stopped.
func (w *Worker) Wait() { <-w.done }

// State reports the lifecycle state.
func (w *Worker) State() State { return State(w.state.Load()) }

// Generation reports how many generations this worker has committed.
func (w *Worker) Generation() uint64 { return w.generation.Load() }

func (w *Worker) aborted() bool {
	select {
	case <-w.abortCh:
		return true
	default:
		return false
	}
}

func (w *Worker) run() {
	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	for {
		if w.aborted() {
			w.finish()
			return
		}

		select {
		case <-w.abortCh:
			continue
		case <-timer.C:
		}

		w.step()
		w.listener.OnRedraw()

		if w.maxGenerations > 0 && w.generation.Load() >= w.maxGenerations {
			w.logger.Info("generation limit reached", "generations", w.maxGenerations)
			w.Abort()
		}
		timer.Reset(w.interval)
	}
}

func (w *Worker) step() {
	var (
		start      = time.Now()
		population int
	)
	generation := w.grid.Advance(func(snap model.Snapshot, next []bool) {
		w.transition.Apply(snap, next)
		for _, alive := range next {
			if alive {
				population++
			}
		}
	})
	took := time.Since(start)

	w.generation.Add(1)
	w.metrics.observe(population, took)
	if w.logger.Enabled(context.Background(), slog.LevelDebug) {
		w.logger.Debug("generation committed",
			"generation", generation,
			"population", population,
			"hash", w.grid.Snapshot().Hash(),
			"took", took)
	}
}

func (w *Worker) finish() {
	w.state.Store(int32(Done))
	w.logger.Info("simulation worker done", "generations", w.generation.Load())
	w.listener.OnDone()
	close(w.done)
}
