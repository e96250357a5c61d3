package sweep

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type runner interface {
	Run(ctx context.Context) (Result, error)
}

// Schedule is the daily wall-clock time of the sweep.
type Schedule struct {
	Hour     int
	Minute   int
	Location *time.Location
}

// Next returns the first scheduled instant strictly after now.
func (sc Schedule) Next(now time.Time) time.Time {
	loc := sc.Location
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), sc.Hour, sc.Minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, sc.Hour, sc.Minute, 0, 0, loc)
	}
	return next
}

// Scheduler runs the sweep once a day. Runs never overlap: the next wait
// starts only after the previous run returns.
type Scheduler struct {
	sweep    runner
	schedule Schedule
	clock    clockwork.Clock
	log      *slog.Logger

	// mu guards cancel and is held by Stop until the loop has exited, so a
	// concurrent Start never overlaps wg.Wait.
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	statusMu sync.RWMutex
	lastRun  time.Time
	lastErr  error
}

// NewScheduler creates a scheduler for the given runner.
func NewScheduler(log *slog.Logger, sweep runner, schedule Schedule, clock clockwork.Clock) *Scheduler {
	return &Scheduler{
		sweep:    sweep,
		schedule: schedule,
		clock:    clock,
		log:      log.With("component", "sweep_scheduler"),
	}
}

// Start launches the scheduling loop. Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.loop(ctx)

	s.log.Info("sweep scheduler started",
		slog.Int("hour", s.schedule.Hour),
		slog.Int("minute", s.schedule.Minute),
	)
}

// Stop cancels the loop and waits for an in-flight run to finish. The
// scheduler can be started again afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.cancel = nil
	s.log.Info("sweep scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	for {
		now := s.clock.Now()
		next := s.schedule.Next(now)
		s.log.Debug("next sweep scheduled", slog.Time("at", next))

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(next.Sub(now)):
		}

		_, err := s.sweep.Run(ctx)
		if err != nil {
			s.log.Error("sweep run failed", slog.String("error", err.Error()))
		}
		s.statusMu.Lock()
		s.lastRun, s.lastErr = s.clock.Now(), err
		s.statusMu.Unlock()
	}
}

// LastRun reports when the most recent scheduled run finished and its
// error. The time is zero before the first run.
func (s *Scheduler) LastRun() (time.Time, error) {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.lastRun, s.lastErr
}
