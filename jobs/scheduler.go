// Package jobs runs background maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Purger deletes stored submissions older than maxAge.
type Purger interface {
	Purge(ctx context.Context, maxAge time.Duration) (int64, error)
}

// Scheduler manages the retention cron tasks.
type Scheduler struct {
	cron   *cron.Cron
	purger Purger
	maxAge time.Duration
	logger *zap.Logger
	ctx    context.Context
}

// NewScheduler creates a Scheduler. Cron specs include a seconds field.
func NewScheduler(ctx context.Context, purger Purger, maxAge time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		purger: purger,
		maxAge: maxAge,
		logger: logger,
		ctx:    ctx,
	}
}

// RegisterPurge schedules the submission purge on spec.
func (s *Scheduler) RegisterPurge(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.purgeTask); err != nil {
		return fmt.Errorf("register purge task %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for a running purge to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunPurgeNow runs the purge immediately and returns how many rows went.
func (s *Scheduler) RunPurgeNow() (int64, error) {
	return s.purger.Purge(s.ctx, s.maxAge)
}

func (s *Scheduler) purgeTask() {
	if s.ctx.Err() != nil {
		return
	}
	n, err := s.RunPurgeNow()
	if err != nil {
		s.logger.Error("scheduled purge failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled purge finished", zap.Int64("deleted", n))
}
