// Package jobs runs the background maintenance schedule: purging expired
// admin sessions and trimming old activity log entries.
package jobs

import (
	"context"
	"time"

	"vaultadmin/internal/modules/activity"
	"vaultadmin/internal/modules/adminauth"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type Scheduler struct {
	cron         *cron.Cron
	sessions     adminauth.SessionRepository
	recorder     *activity.Recorder
	schedule     string
	activityKeep time.Duration
}

func NewScheduler(
	sessions adminauth.SessionRepository,
	recorder *activity.Recorder,
	schedule string,
	activityKeepDays int,
) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		sessions:     sessions,
		recorder:     recorder,
		schedule:     schedule,
		activityKeep: time.Duration(activityKeepDays) * 24 * time.Hour,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if s.sessions != nil {
			deleted, err := s.sessions.DeleteExpired(ctx)
			if err != nil {
				log.WithError(err).Error("[CRON] session cleanup failed")
			} else if deleted > 0 {
				log.WithField("deleted", deleted).Info("[CRON] expired sessions purged")
			}
		}

		if s.recorder != nil && s.activityKeep > 0 {
			cutoff := time.Now().Add(-s.activityKeep)
			trimmed, err := s.recorder.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				log.WithError(err).Error("[CRON] activity trim failed")
			} else if trimmed > 0 {
				log.WithField("trimmed", trimmed).Info("[CRON] old activity entries removed")
			}
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.WithField("schedule", s.schedule).Info("maintenance scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("maintenance scheduler stopped")
}
