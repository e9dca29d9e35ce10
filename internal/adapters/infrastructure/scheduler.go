package infrastructure

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// Job is a unit of scheduled work
type Job func(ctx context.Context) error

// CronScheduler runs jobs on cron schedules. A job that is still running
// when its next tick arrives is skipped for that tick.
type CronScheduler struct {
	cron       *cron.Cron
	logger     ports.Logger
	jobTimeout time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewCronScheduler creates a scheduler; each run gets jobTimeout to finish
func NewCronScheduler(logger ports.Logger, jobTimeout time.Duration) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &CronScheduler{
		cron:       cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger,
		jobTimeout: jobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// AddJob registers job under a standard cron spec or descriptor such as "@hourly"
func (s *CronScheduler) AddJob(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.runJob(name, job)
	})
	if err != nil {
		return errors.NewConfigurationError("invalid schedule for job "+name, err)
	}
	return nil
}

// Start begins running jobs in the background
func (s *CronScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", ports.F("jobs", len(s.cron.Entries())))
}

// Stop cancels running jobs and waits for them to return or ctx to end
func (s *CronScheduler) Stop(ctx context.Context) error {
	s.cancel()

	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CronScheduler) runJob(name string, job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.jobTimeout)
	defer cancel()

	start := time.Now()
	if err := job(ctx); err != nil {
		s.logger.Error("Scheduled job failed",
			ports.F("job", name),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
			ports.F("error", err))
		return
	}
	s.logger.Debug("Scheduled job completed",
		ports.F("job", name),
		ports.F("duration_ms", time.Since(start).Milliseconds()))
}
