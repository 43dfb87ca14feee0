// Package scheduler runs the periodic reporting jobs. The cadence is plain
// configuration: a zero interval disables the corresponding job.
package scheduler

import (
	"context"
	"time"

	"biblioteca-api/internal/logger"
)

// Job is a single reporting scan.
type Job func(ctx context.Context) error

// Scheduler ticks each configured job on its own interval until the context
// is cancelled. Job failures are logged and the loop keeps running.
type Scheduler struct {
	jobs []scheduledJob
}

type scheduledJob struct {
	name     string
	interval time.Duration
	run      Job
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Add registers a job. A non-positive interval disables it.
func (s *Scheduler) Add(name string, interval time.Duration, job Job) {
	if interval <= 0 {
		logger.Log.Infow("scheduled job disabled", "job", name)
		return
	}
	s.jobs = append(s.jobs, scheduledJob{name: name, interval: interval, run: job})
}

// Run blocks until ctx is cancelled, executing every registered job on its
// interval.
func (s *Scheduler) Run(ctx context.Context) {
	for _, job := range s.jobs {
		go func(job scheduledJob) {
			ticker := time.NewTicker(job.interval)
			defer ticker.Stop()

			logger.Log.Infow("scheduled job started", "job", job.name, "interval", job.interval)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := job.run(ctx); err != nil {
						logger.Log.Errorw("scheduled job failed", "job", job.name, "error", err)
					}
				}
			}
		}(job)
	}

	<-ctx.Done()
}
