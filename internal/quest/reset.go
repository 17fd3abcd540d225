package quest

import (
	"context"
	"time"

	"github.com/cwilder/lifequest/internal/event"
	"github.com/cwilder/lifequest/internal/logger"
)

// DateKey returns the calendar date of t in the reset timezone as a
// comparable string.
func DateKey(t time.Time) string {
	return t.In(ResetZone).Format(DateKeyLayout)
}

// IsResetDue reports whether the daily cutover has turned over since
// lastResetDate. Both conditions must hold: the date key changed AND the
// cutover hour has been reached. Only the key inequality matters, not how
// many days were missed - a device off for a week still gets exactly one
// reset at the next check.
func IsResetDue(lastResetDate string, now time.Time) bool {
	local := now.In(ResetZone)
	return DateKey(now) != lastResetDate && local.Hour() >= CutoverHour
}

// RunDailyResetCheck performs the cutover reset when it is due: re-arms every
// daily quest, rolls the streak, and advances the last-reset marker. Returns
// whether a reset was performed. Idempotent within a day - once the marker
// matches today's date key, further checks are no-ops.
func (s *service) RunDailyResetCheck(ctx context.Context, now time.Time) bool {
	log := logger.FromContext(ctx)

	s.state.mu.Lock()
	if !IsResetDue(s.state.lastResetDate, now) {
		s.state.mu.Unlock()
		return false
	}

	// The streak survives a cycle only if at least one daily quest was
	// completed during it.
	anyCompleted := false
	for i := range s.state.dailyQuests {
		if s.state.dailyQuests[i].Completed {
			anyCompleted = true
		}
		s.state.dailyQuests[i].Completed = false
	}
	rearmed := len(s.state.dailyQuests)
	if anyCompleted {
		s.state.profile.Streak++
	} else {
		s.state.profile.Streak = 0
	}

	dateKey := DateKey(now)
	s.state.lastResetDate = dateKey
	s.enqueueSave(s.state.snapshotLocked())
	s.state.mu.Unlock()

	log.Info(LogMsgDailyResetPerformed, "reset_date", dateKey, "rearmed", rearmed)

	s.publish(ctx, event.NewDailyResetCompleteEvent(dateKey, rearmed))

	return true
}
