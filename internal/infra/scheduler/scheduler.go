package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler decides when the next poll iteration starts.
// It never spawns goroutines: the caller blocks in Wait between iterations.
type PollScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Entry
}

// NewPollScheduler schedules polls a fixed period apart.
// cron.Every rounds the period down to whole seconds (minimum one second).
func NewPollScheduler(period time.Duration, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		schedule: cron.Every(period),
		logger:   logger.WithField("component", "scheduler"),
	}
}

// Next returns the moment the iteration following one that ended at t should start.
func (s *PollScheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Wait blocks until the next scheduled poll after t or until ctx is done.
func (s *PollScheduler) Wait(ctx context.Context, t time.Time) error {
	next := s.schedule.Next(t)
	s.logger.WithField("next_poll", next.Format(time.RFC3339)).Debug("Sleeping until next poll")

	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Info("Scheduler wait interrupted")
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
