// Package jobs schedules background maintenance of the content cache.
package jobs

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	// DefaultWarmSchedule re-reads the page lists every five minutes.
	DefaultWarmSchedule = "@every 5m"
	// DefaultPruneSchedule clears expired rows once an hour.
	DefaultPruneSchedule = "@hourly"
	defaultJobTimeout    = time.Minute
)

// CacheMaintainer is the cache surface the jobs drive.
type CacheMaintainer interface {
	Refresh(ctx context.Context) error
	Prune(ctx context.Context) (int64, error)
}

// Config sets the job schedules in cron syntax, including descriptors such
// as @every 5m. Empty values use the defaults.
type Config struct {
	WarmSchedule  string
	PruneSchedule string
	Timeout       time.Duration
}

// Scheduler runs the cache jobs until Stop.
type Scheduler struct {
	cron    *cron.Cron
	logger  *log.Logger
	base    context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// New registers the warm and prune jobs against target.
func New(target CacheMaintainer, cfg Config, logger *log.Logger) (*Scheduler, error) {
	if target == nil {
		return nil, fmt.Errorf("cache maintainer is required")
	}
	if logger == nil {
		logger = log.New(log.Writer(), "[JOBS] ", log.LstdFlags)
	}
	warmSchedule := strings.TrimSpace(cfg.WarmSchedule)
	if warmSchedule == "" {
		warmSchedule = DefaultWarmSchedule
	}
	pruneSchedule := strings.TrimSpace(cfg.PruneSchedule)
	if pruneSchedule == "" {
		pruneSchedule = DefaultPruneSchedule
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}

	cronLogger := cron.PrintfLogger(logger)
	base, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
		logger:  logger,
		base:    base,
		cancel:  cancel,
		timeout: timeout,
	}

	if _, err := s.cron.AddJob(warmSchedule, s.job("warm", func(ctx context.Context) error {
		return target.Refresh(ctx)
	})); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule cache warm %q: %w", warmSchedule, err)
	}
	if _, err := s.cron.AddJob(pruneSchedule, s.job("prune", func(ctx context.Context) error {
		removed, err := target.Prune(ctx)
		if err == nil && removed > 0 {
			logger.Printf("cache prune removed=%d", removed)
		}
		return err
	})); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule cache prune %q: %w", pruneSchedule, err)
	}
	return s, nil
}

// job wraps run with a per-run timeout and a log line carrying a run id.
func (s *Scheduler) job(name string, run func(context.Context) error) cron.Job {
	return cron.FuncJob(func() {
		runID := uuid.NewString()
		ctx, cancel := context.WithTimeout(s.base, s.timeout)
		defer cancel()

		started := time.Now()
		err := run(ctx)
		elapsed := time.Since(started).Round(time.Millisecond)
		if err != nil {
			s.logger.Printf("job failed name=%s run_id=%s elapsed=%s err=%v", name, runID, elapsed, err)
			return
		}
		s.logger.Printf("job done name=%s run_id=%s elapsed=%s", name, runID, elapsed)
	})
}

// Start begins running jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}
