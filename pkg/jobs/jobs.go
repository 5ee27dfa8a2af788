// Package jobs runs the client's background jobs on a cron scheduler.
package jobs

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Scheduler is a cron-like job scheduler.
type Scheduler struct {
	*cron.Cron
}

// cronLogger adapts the logger to the cron logger interface.
type cronLogger struct {
	logger *log.Logger
}

// Info logs routine messages about cron's operation.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Error logs an error condition.
func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "err", err)...)
}

// NewScheduler returns a new Scheduler.
func NewScheduler(ctx context.Context) *Scheduler {
	logger := cronLogger{log.FromContext(ctx).WithPrefix("jobs")}
	return &Scheduler{
		Cron: cron.New(cron.WithLogger(logger)),
	}
}

// Add schedules a job. An empty spec disables the job.
func (s *Scheduler) Add(ctx context.Context, spec string, fn func(context.Context) func()) (cron.EntryID, error) {
	if spec == "" {
		return 0, nil
	}
	return s.AddFunc(spec, fn(ctx))
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
}

// Shutdown gracefully shuts down the scheduler, waiting for running jobs
// to finish.
func (s *Scheduler) Shutdown() {
	ctx, cancel := context.WithTimeout(s.Cron.Stop(), 30*time.Second)
	defer func() { cancel() }()
	<-ctx.Done()
}
