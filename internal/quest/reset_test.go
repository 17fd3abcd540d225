package quest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/quest"
)

func TestIsResetDue(t *testing.T) {
	tests := []struct {
		name          string
		lastResetDate string
		now           time.Time
		want          bool
	}{
		{
			name:          "new day after cutover",
			lastResetDate: "2024-01-01",
			now:           time.Date(2024, 1, 2, 5, 0, 0, 0, quest.ResetZone),
			want:          true,
		},
		{
			name:          "new day before cutover",
			lastResetDate: "2024-01-01",
			now:           time.Date(2024, 1, 2, 3, 59, 0, 0, quest.ResetZone),
			want:          false,
		},
		{
			name:          "same day after cutover",
			lastResetDate: "2024-01-02",
			now:           time.Date(2024, 1, 2, 23, 0, 0, 0, quest.ResetZone),
			want:          false,
		},
		{
			name:          "exactly at cutover",
			lastResetDate: "2024-01-01",
			now:           time.Date(2024, 1, 2, 4, 0, 0, 0, quest.ResetZone),
			want:          true,
		},
		{
			name:          "several missed days",
			lastResetDate: "2024-01-01",
			now:           time.Date(2024, 1, 9, 12, 0, 0, 0, quest.ResetZone),
			want:          true,
		},
		{
			name:          "never reset before",
			lastResetDate: "",
			now:           time.Date(2024, 1, 2, 6, 0, 0, 0, quest.ResetZone),
			want:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quest.IsResetDue(tt.lastResetDate, tt.now))
		})
	}
}

func TestIsResetDue_UTCWallClockConverted(t *testing.T) {
	// 08:30 UTC is 03:30 in the reset zone, before cutover.
	now := time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC)
	assert.False(t, quest.IsResetDue("2024-01-01", now))

	// 09:30 UTC is 04:30 in the reset zone.
	now = time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	assert.True(t, quest.IsResetDue("2024-01-01", now))
}

func TestRunDailyResetCheck_RearmsAndStamps(t *testing.T) {
	svc, saver, _, _ := newTestService(t)
	ctx := context.Background()

	svc.CompleteDailyQuest(ctx, 1)
	svc.CompleteDailyQuest(ctx, 2)
	xpBefore := svc.Profile(ctx).TotalXP

	now := time.Date(2024, 1, 2, 6, 0, 0, 0, quest.ResetZone)
	require.True(t, svc.RunDailyResetCheck(ctx, now))

	for _, q := range svc.DailyQuests(ctx, domain.CategoryAll) {
		assert.False(t, q.Completed)
	}
	assert.Equal(t, "2024-01-02", svc.LastResetDate(ctx))
	assert.Equal(t, xpBefore, svc.Profile(ctx).TotalXP)
	assert.GreaterOrEqual(t, saver.count(), 3)
}

func TestRunDailyResetCheck_AtMostOncePerDay(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	now := time.Date(2024, 1, 2, 5, 0, 0, 0, quest.ResetZone)
	require.True(t, svc.RunDailyResetCheck(ctx, now))

	// Subsequent ticks on the same day are no-ops.
	assert.False(t, svc.RunDailyResetCheck(ctx, now.Add(time.Minute)))
	assert.False(t, svc.RunDailyResetCheck(ctx, now.Add(8*time.Hour)))
}

func TestRunDailyResetCheck_MissedDaysCollapseToOneReset(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	require.True(t, svc.RunDailyResetCheck(ctx, time.Date(2024, 1, 2, 5, 0, 0, 0, quest.ResetZone)))

	// App was closed for a week. The next check runs one reset, not seven.
	assert.True(t, svc.RunDailyResetCheck(ctx, time.Date(2024, 1, 9, 5, 0, 0, 0, quest.ResetZone)))
	assert.Equal(t, "2024-01-09", svc.LastResetDate(ctx))
}

func TestRunDailyResetCheck_StreakRoll(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	// Day with activity: streak increments.
	svc.CompleteDailyQuest(ctx, 1)
	require.True(t, svc.RunDailyResetCheck(ctx, time.Date(2024, 1, 2, 5, 0, 0, 0, quest.ResetZone)))
	assert.Equal(t, 1, svc.Profile(ctx).Streak)

	svc.CompleteDailyQuest(ctx, 3)
	require.True(t, svc.RunDailyResetCheck(ctx, time.Date(2024, 1, 3, 5, 0, 0, 0, quest.ResetZone)))
	assert.Equal(t, 2, svc.Profile(ctx).Streak)

	// Idle day: streak drops to zero.
	require.True(t, svc.RunDailyResetCheck(ctx, time.Date(2024, 1, 4, 5, 0, 0, 0, quest.ResetZone)))
	assert.Equal(t, 0, svc.Profile(ctx).Streak)
}

func TestDateKey(t *testing.T) {
	// The key is taken in the reset zone, not UTC.
	now := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC) // 2024-01-01 20:00 UTC-5
	assert.Equal(t, "2024-01-01", quest.DateKey(now))
}
