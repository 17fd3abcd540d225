package quest_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/event"
	"github.com/cwilder/lifequest/internal/progression"
	"github.com/cwilder/lifequest/internal/quest"
)

// fakeSaver records enqueued snapshots in order.
type fakeSaver struct {
	mu    sync.Mutex
	snaps []quest.Snapshot
}

func (f *fakeSaver) Enqueue(snap quest.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snaps = append(f.snaps, snap)
}

func (f *fakeSaver) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snaps)
}

func (f *fakeSaver) last() quest.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snaps[len(f.snaps)-1]
}

// eventRecorder captures every published event for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) record(ctx context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) bySourceXP(source string) []event.XPAwardedPayloadV1 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.XPAwardedPayloadV1
	for _, evt := range r.events {
		if payload, ok := evt.Payload.(event.XPAwardedPayloadV1); ok && payload.Source == source {
			out = append(out, payload)
		}
	}
	return out
}

func testDailyQuests() []domain.DailyQuest {
	return []domain.DailyQuest{
		{ID: 1, Title: "Meditate for 10 minutes", XPReward: 50, Category: domain.CategoryMental},
		{ID: 2, Title: "Work out", XPReward: 75, Category: domain.CategoryPhysical},
		{ID: 3, Title: "Call a friend", XPReward: 40, Category: domain.CategorySocial},
	}
}

func twentySteps(prefix string) []domain.Step {
	steps := make([]domain.Step, 20)
	for i := range steps {
		steps[i] = domain.Step{ID: fmt.Sprintf("%s-s%d", prefix, i+1), Text: fmt.Sprintf("Step %d", i+1)}
	}
	return steps
}

func testMainQuests() []domain.MainQuest {
	return []domain.MainQuest{
		{
			ID:       "career-1",
			Title:    "Get Promoted",
			XPReward: 500,
			Category: domain.CategoryCareer,
			Steps:    twentySteps("c1"),
		},
		{
			ID:       "phys-1",
			Title:    "Run a 5K",
			XPReward: 300,
			Category: domain.CategoryPhysical,
			Steps: []domain.Step{
				{ID: "p1-s1", Text: "Buy running shoes"},
				{ID: "p1-s2", Text: "Finish the race"},
			},
		},
	}
}

func newTestService(t *testing.T) (quest.Service, *fakeSaver, *eventRecorder, func()) {
	t.Helper()

	recorder := &eventRecorder{}
	bus := event.NewMemoryBus()
	for _, et := range []string{
		domain.EventTypeXPAwarded,
		domain.EventTypeDailyQuestCompleted,
		domain.EventTypeStepCompleted,
		domain.EventTypeQuestCompleted,
		domain.EventTypeDailyResetComplete,
		domain.EventTypeMainQuestsReset,
	} {
		bus.Subscribe(event.Type(et), recorder.record)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})

	saver := &fakeSaver{}
	state := quest.NewState(domain.Profile{Name: "Tester", Avatar: "knight"}, testDailyQuests(), testMainQuests())
	svc := quest.NewService(state, progression.NewDefaultCalculator(), publisher, saver)
	return svc, saver, recorder, publisher.Drain
}

func TestCompleteDailyQuest_AwardsXPOnce(t *testing.T) {
	svc, saver, recorder, drain := newTestService(t)
	ctx := context.Background()

	updated := svc.CompleteDailyQuest(ctx, 1)
	require.NotNil(t, updated)
	assert.True(t, updated.Completed)
	assert.Equal(t, int64(50), svc.Profile(ctx).TotalXP)

	// Second tap on a completed quest: no state change, no award.
	assert.Nil(t, svc.CompleteDailyQuest(ctx, 1))
	assert.Equal(t, int64(50), svc.Profile(ctx).TotalXP)

	drain()
	awards := recorder.bySourceXP(domain.XPSourceDailyQuest)
	require.Len(t, awards, 1)
	assert.Equal(t, int64(50), awards[0].Amount)
	assert.Equal(t, 1, awards[0].DailyID)

	assert.Equal(t, 1, saver.count())
}

func TestCompleteDailyQuest_UnknownIDIsNoop(t *testing.T) {
	svc, saver, _, _ := newTestService(t)
	ctx := context.Background()

	assert.Nil(t, svc.CompleteDailyQuest(ctx, 999))
	assert.Equal(t, int64(0), svc.Profile(ctx).TotalXP)
	assert.Equal(t, 0, saver.count())
}

func TestToggleStep_ProgressAndFixedAward(t *testing.T) {
	svc, _, recorder, drain := newTestService(t)
	ctx := context.Background()

	// First step of a fresh 20-step quest: progress 0 -> 5.
	updated := svc.ToggleStep(ctx, "career-1", "c1-s1")
	require.NotNil(t, updated)
	assert.Equal(t, 5, updated.Progress())
	assert.Equal(t, quest.StepXP, svc.Profile(ctx).TotalXP)

	drain()
	awards := recorder.bySourceXP(domain.XPSourceStep)
	require.Len(t, awards, 1)
	assert.Equal(t, quest.StepXP, awards[0].Amount)
	assert.Equal(t, "c1-s1", awards[0].StepID)
}

func TestToggleStep_IsIdempotent(t *testing.T) {
	svc, saver, _, _ := newTestService(t)
	ctx := context.Background()

	require.NotNil(t, svc.ToggleStep(ctx, "career-1", "c1-s2"))
	xpAfterFirst := svc.Profile(ctx).TotalXP

	// Steps are monotonic: the second toggle is a no-op.
	assert.Nil(t, svc.ToggleStep(ctx, "career-1", "c1-s2"))
	assert.Equal(t, xpAfterFirst, svc.Profile(ctx).TotalXP)
	assert.Equal(t, 1, saver.count())
}

func TestToggleStep_UnknownIDsAreNoops(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	assert.Nil(t, svc.ToggleStep(ctx, "no-such-quest", "c1-s1"))
	assert.Nil(t, svc.ToggleStep(ctx, "career-1", "no-such-step"))
	assert.Equal(t, int64(0), svc.Profile(ctx).TotalXP)
}

func TestToggleStep_ExactlyOnceCompletionBonus(t *testing.T) {
	svc, _, recorder, drain := newTestService(t)
	ctx := context.Background()

	// Complete the two-step quest out of order.
	require.NotNil(t, svc.ToggleStep(ctx, "phys-1", "p1-s2"))
	require.NotNil(t, svc.ToggleStep(ctx, "phys-1", "p1-s1"))

	// 2 steps + 300 bonus.
	assert.Equal(t, 2*quest.StepXP+300, svc.Profile(ctx).TotalXP)
	assert.Contains(t, svc.CompletedQuestIDs(ctx), "phys-1")

	// Replaying toggles after completion never re-awards.
	assert.Nil(t, svc.ToggleStep(ctx, "phys-1", "p1-s1"))
	assert.Nil(t, svc.ToggleStep(ctx, "phys-1", "p1-s2"))
	assert.Equal(t, 2*quest.StepXP+300, svc.Profile(ctx).TotalXP)

	drain()
	bonuses := recorder.bySourceXP(domain.XPSourceCompletionBonus)
	require.Len(t, bonuses, 1)
	assert.Equal(t, int64(300), bonuses[0].Amount)
	assert.Equal(t, "phys-1", bonuses[0].QuestID)

	// The bonus is a distinct event from the per-step awards.
	steps := recorder.bySourceXP(domain.XPSourceStep)
	assert.Len(t, steps, 2)
}

func TestResetAllMainQuests_IsAtomic(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	svc.ToggleStep(ctx, "phys-1", "p1-s1")
	svc.ToggleStep(ctx, "phys-1", "p1-s2")
	svc.ToggleStep(ctx, "career-1", "c1-s1")
	xpBefore := svc.Profile(ctx).TotalXP

	svc.ResetAllMainQuests(ctx)

	for _, q := range svc.MainQuests(ctx, domain.CategoryAll) {
		assert.Equal(t, 0, q.Progress(), "quest %s", q.ID)
		for _, s := range q.Steps {
			assert.False(t, s.Completed, "step %s", s.ID)
		}
	}
	assert.Empty(t, svc.CompletedQuestIDs(ctx))

	// Already-earned XP is never retracted.
	assert.Equal(t, xpBefore, svc.Profile(ctx).TotalXP)
}

func TestResetDailyQuests_KeepsXP(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	svc.CompleteDailyQuest(ctx, 1)
	svc.CompleteDailyQuest(ctx, 2)
	xpBefore := svc.Profile(ctx).TotalXP

	svc.ResetDailyQuests(ctx)

	for _, q := range svc.DailyQuests(ctx, domain.CategoryAll) {
		assert.False(t, q.Completed)
	}
	assert.Equal(t, xpBefore, svc.Profile(ctx).TotalXP)
}

func TestUpdateProfile(t *testing.T) {
	svc, saver, _, _ := newTestService(t)
	ctx := context.Background()

	updated := svc.UpdateProfile(ctx, "Aria", "mage")
	assert.Equal(t, "Aria", updated.Name)
	assert.Equal(t, "mage", updated.Avatar)

	// Empty fields leave the current values untouched.
	updated = svc.UpdateProfile(ctx, "", "rogue")
	assert.Equal(t, "Aria", updated.Name)
	assert.Equal(t, "rogue", updated.Avatar)

	assert.Equal(t, 2, saver.count())
	assert.Equal(t, "rogue", saver.last().Profile.Avatar)
}

func TestProgression_DerivedFromTotalXP(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	svc.CompleteDailyQuest(ctx, 1) // 50 XP
	summary := svc.Progression(ctx)

	assert.Equal(t, 1, summary.Level)
	assert.InDelta(t, 10.0, summary.ProgressPercent, 0.0001)
	assert.Equal(t, int64(450), summary.XPToNextLevel)
}

func TestSnapshotOrdering_SaverSeesMonotonicXP(t *testing.T) {
	svc, saver, _, _ := newTestService(t)
	ctx := context.Background()

	svc.CompleteDailyQuest(ctx, 1)
	svc.CompleteDailyQuest(ctx, 2)
	svc.ToggleStep(ctx, "career-1", "c1-s1")

	require.Equal(t, 3, saver.count())
	var prev int64 = -1
	for _, snap := range saver.snaps {
		assert.GreaterOrEqual(t, snap.Profile.TotalXP, prev)
		prev = snap.Profile.TotalXP
	}
}

func TestSnapshotOrdering_ConcurrentMutations(t *testing.T) {
	svc, saver, _, _ := newTestService(t)
	ctx := context.Background()

	// Every toggle awards XP, so a correctly ordered snapshot stream is
	// strictly increasing in total XP. Hammer disjoint steps from several
	// goroutines; an out-of-order hand-off shows up as an inversion.
	const workers = 4
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w * 5; i < (w+1)*5; i++ {
				svc.ToggleStep(ctx, "career-1", fmt.Sprintf("c1-s%d", i+1))
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, 20, saver.count())
	var prev int64 = -1
	for i, snap := range saver.snaps {
		require.Greater(t, snap.Profile.TotalXP, prev, "snapshot %d regressed", i)
		prev = snap.Profile.TotalXP
	}
}
