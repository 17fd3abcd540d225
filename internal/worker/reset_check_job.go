package worker

import (
	"context"
	"time"

	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/quest"
)

// ResetCheckJob asks the quest service whether the daily cutover has passed
// and lets it reset the board when due. The check is cheap and idempotent, so
// the scheduler fires it every minute rather than arming a long timer; a
// missed tick just means the next one does the work.
type ResetCheckJob struct {
	svc quest.Service
	now func() time.Time
}

// NewResetCheckJob builds the job around the quest service.
func NewResetCheckJob(svc quest.Service) *ResetCheckJob {
	return &ResetCheckJob{svc: svc, now: time.Now}
}

// Process runs one reset check.
func (j *ResetCheckJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if j.svc.RunDailyResetCheck(ctx, j.now()) {
		log.Info(LogMsgResetCheckFired)
	} else {
		log.Debug(LogMsgResetCheckSkipped)
	}
	return nil
}
