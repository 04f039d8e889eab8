// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"flightcal-service/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled work
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner and logs job outcomes
type Scheduler struct {
	cron    *cron.Cron
	logger  logger.Logger
	timeout time.Duration
	base    context.Context // set by Start, parent of every run
}

// New creates a scheduler. Each run is bounded by timeout.
func New(logger logger.Logger, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger,
		timeout: timeout,
		base:    context.Background(),
	}
}

// Add registers job under spec, e.g. "@every 30s" or "*/5 * * * *"
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(s.base, s.timeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("Scheduled job failed", "job", name, "error", err)
			return
		}
		s.logger.Debug("Scheduled job finished", "job", name, "took", time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}
	s.logger.Info("Registered scheduled job", "job", name, "schedule", spec)
	return nil
}

// Start runs the scheduler until ctx is cancelled, then waits for running jobs.
// Cancelling ctx also cancels the context of a job in flight.
func (s *Scheduler) Start(ctx context.Context) {
	s.base = ctx
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}
