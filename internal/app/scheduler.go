package app

import (
	"context"
	"log/slog"
	"time"
)

// Job is a periodic maintenance task. Run reports how many rows it affected.
type Job struct {
	Name string
	Run  func(ctx context.Context) (int, error)
}

// Scheduler runs its jobs once at start and then on every tick until the context is done.
type Scheduler struct {
	interval time.Duration
	jobs     []Job
	logger   *slog.Logger
}

func NewScheduler(interval time.Duration, logger *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		interval: interval,
		jobs:     jobs,
		logger:   logger,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}

		n, err := job.Run(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "scheduled job failed", "job", job.Name, "error", err)
			continue
		}
		if n > 0 {
			s.logger.InfoContext(ctx, "scheduled job done", "job", job.Name, "affected", n)
		}
	}
}
