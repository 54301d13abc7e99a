package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSchedulerStarted is returned by Start on a scheduler that was already started.
var ErrSchedulerStarted = errors.New("scheduler already started")

// SchedulerConfig configures a Scheduler.
type SchedulerConfig struct {
	// Interval between runs. Must be positive.
	Interval time.Duration

	// RunOnStart runs the task once as soon as Start is called.
	RunOnStart bool

	// Task is the work to run. Its error is logged, never retried.
	Task func(ctx context.Context) error

	Metrics Recorder
	Logger  *slog.Logger
}

// Scheduler runs a task periodically. A tick that arrives while the previous
// run is still going is dropped and counted, never queued.
type Scheduler struct {
	cfg     SchedulerConfig
	metrics Recorder
	logger  *slog.Logger

	running atomic.Bool
	skipped atomic.Int64
	runs    sync.WaitGroup

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewScheduler creates a stopped scheduler.
// Panics if Task is nil or Interval is not positive.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.Task == nil {
		panic("Scheduler: Task is required")
	}

	if cfg.Interval <= 0 {
		panic("Scheduler: Interval must be positive")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = nopRecorder{}
	}

	return &Scheduler{
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.With(slog.String("component", "app.Scheduler")),
	}
}

// Start launches the tick loop. The loop and any run it starts observe ctx
// and are canceled by Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrSchedulerStarted
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.started = true

	go func() {
		defer close(s.done)
		s.loop(ctx)
	}()

	s.logger.InfoContext(ctx, "scheduler started",
		slog.Duration("interval", s.cfg.Interval),
		slog.Bool("run_on_start", s.cfg.RunOnStart),
	)

	return nil
}

func (s *Scheduler) loop(ctx context.Context) {
	if s.cfg.RunOnStart {
		s.fire(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire(ctx)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.skipped.Add(1)
		s.metrics.TickSkipped()
		s.logger.DebugContext(ctx, "previous run still in flight, tick skipped")

		return
	}

	s.runs.Go(func() {
		defer s.running.Store(false)

		if err := s.cfg.Task(ctx); err != nil && ctx.Err() == nil {
			s.logger.WarnContext(ctx, "scheduled run failed", slog.Any("error", err))
		}
	})
}

// Stop cancels the loop and waits for an in-flight run to return.
// It is safe to call more than once and on a scheduler never started.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	s.runs.Wait()

	s.logger.Info("scheduler stopped", slog.Int64("skipped_ticks", s.skipped.Load()))
}

// Skipped returns how many ticks were dropped.
func (s *Scheduler) Skipped() int64 {
	return s.skipped.Load()
}

// Running reports whether a run is in flight.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}
