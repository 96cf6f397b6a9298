package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Pruner drops expired widget sessions and reports how many were removed.
type Pruner interface {
	Prune() int
	Len() int
}

// Scheduler periodically sweeps idle widget sessions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  Pruner
	interval  time.Duration
	l         *zap.Logger
}

// New creates a new Scheduler.
func New(sessions Pruner, interval time.Duration, l *zap.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		sessions:  sessions,
		interval:  interval,
		l:         l,
	}
}

// Start schedules the sweep and starts the underlying scheduler. The first
// sweep runs one interval after start.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := s.scheduler.Every(interval).WaitForSchedule().Do(s.sweep)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) sweep() {
	removed := s.sessions.Prune()
	s.l.Debug("session sweep completed",
		zap.Int("removed", removed),
		zap.Int("live", s.sessions.Len()),
	)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
