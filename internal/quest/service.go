package quest

import (
	"context"
	"time"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/event"
	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/progression"
)

// Saver receives an ordered stream of snapshots to persist. Enqueue must not
// block: persistence is fire-and-forget relative to interactive operations.
type Saver interface {
	Enqueue(snap Snapshot)
}

// Service is the quest state machine: it owns the transition rules for daily
// quests and main quest steps, triggers XP awards, and prevents double awards.
//
// Invalid transitions (unknown ids, repeated completions) are silent no-ops:
// a mutation returns nil instead of the updated entity. Repeated UI taps on a
// just-completed item are expected and must not corrupt state or double-award
// XP, so they are not errors.
type Service interface {
	CompleteDailyQuest(ctx context.Context, id int) *domain.DailyQuest
	ToggleStep(ctx context.Context, questID, stepID string) *domain.MainQuest
	ResetAllMainQuests(ctx context.Context)
	ResetDailyQuests(ctx context.Context)
	RunDailyResetCheck(ctx context.Context, now time.Time) bool
	UpdateProfile(ctx context.Context, name, avatar string) domain.Profile

	Profile(ctx context.Context) domain.Profile
	Progression(ctx context.Context) progression.Summary
	DailyQuests(ctx context.Context, category string) []domain.DailyQuest
	MainQuests(ctx context.Context, category string) []domain.MainQuest
	CompletedQuestIDs(ctx context.Context) []string
	LastResetDate(ctx context.Context) string
}

type service struct {
	state     *State
	calc      *progression.Calculator
	publisher *event.ResilientPublisher
	saver     Saver
}

// NewService wires the state machine to its collaborators. publisher and
// saver may be nil (tests that only exercise transitions).
func NewService(state *State, calc *progression.Calculator, publisher *event.ResilientPublisher, saver Saver) Service {
	return &service{
		state:     state,
		calc:      calc,
		publisher: publisher,
		saver:     saver,
	}
}

// CompleteDailyQuest marks a pending daily quest done and awards its XP.
// Returns nil when the quest is unknown or already completed this cycle.
func (s *service) CompleteDailyQuest(ctx context.Context, id int) *domain.DailyQuest {
	log := logger.FromContext(ctx)

	s.state.mu.Lock()
	q := s.state.findDailyQuestLocked(id)
	if q == nil || q.Completed {
		s.state.mu.Unlock()
		return nil
	}

	q.Completed = true
	s.state.profile.TotalXP += q.XPReward
	updated := *q
	newTotal := s.state.profile.TotalXP
	// Enqueue never blocks, and handing the snapshot over before releasing
	// the lock keeps the saver's stream in mutation order.
	s.enqueueSave(s.state.snapshotLocked())
	s.state.mu.Unlock()

	log.Info(LogMsgDailyQuestCompleted, "quest_id", id, "xp", updated.XPReward, "total_xp", newTotal)

	s.publish(ctx,
		event.NewDailyQuestCompletedEvent(updated.ID, updated.Title, updated.XPReward),
		event.NewDailyXPAwardedEvent(updated.XPReward, updated.ID, newTotal),
	)

	return &updated
}

// ToggleStep marks a pending step done, awards the fixed per-step XP and, on
// the quest's first full completion, the one-time completion bonus. Returns
// nil when the quest or step is unknown, or the step is already completed -
// steps are monotonic and no un-complete path exists.
func (s *service) ToggleStep(ctx context.Context, questID, stepID string) *domain.MainQuest {
	log := logger.FromContext(ctx)

	s.state.mu.Lock()
	q := s.state.findMainQuestLocked(questID)
	if q == nil {
		s.state.mu.Unlock()
		return nil
	}
	step := q.Step(stepID)
	if step == nil || step.Completed {
		s.state.mu.Unlock()
		return nil
	}

	step.Completed = true
	s.state.profile.TotalXP += StepXP
	stepTotal := s.state.profile.TotalXP

	// The completion bonus is gated by the ledger, not by step state: steps
	// are monotonic, but the ledger makes re-awarding impossible even if
	// they ever were not.
	bonusAwarded := false
	if q.IsComplete() {
		if _, done := s.state.completedQuests[q.ID]; !done {
			s.state.completedQuests[q.ID] = struct{}{}
			s.state.profile.TotalXP += q.XPReward
			bonusAwarded = true
		}
	}

	updated := *q
	updated.Steps = make([]domain.Step, len(q.Steps))
	copy(updated.Steps, q.Steps)
	bonusTotal := s.state.profile.TotalXP
	s.enqueueSave(s.state.snapshotLocked())
	s.state.mu.Unlock()

	log.Info(LogMsgStepCompleted, "quest_id", questID, "step_id", stepID, "progress", updated.Progress())

	events := []event.Event{
		event.NewStepCompletedEvent(questID, stepID, updated.Progress()),
		event.NewStepXPAwardedEvent(StepXP, questID, stepID, stepTotal),
	}
	if bonusAwarded {
		log.Info(LogMsgQuestCompleted, "quest_id", questID, "bonus", updated.XPReward)
		events = append(events,
			event.NewQuestCompletedEvent(questID, updated.Title, updated.XPReward),
			event.NewBonusXPAwardedEvent(updated.XPReward, questID, bonusTotal),
		)
	}
	s.publish(ctx, events...)

	return &updated
}

// ResetAllMainQuests is the hard, destructive reset: every step incomplete,
// every quest back to zero progress, the completion ledger cleared. Ledger
// and step state reset together under one lock hold - a partial reset could
// otherwise re-award bonuses.
func (s *service) ResetAllMainQuests(ctx context.Context) {
	s.state.mu.Lock()
	for i := range s.state.mainQuests {
		for j := range s.state.mainQuests[i].Steps {
			s.state.mainQuests[i].Steps[j].Completed = false
		}
	}
	s.state.completedQuests = make(map[string]struct{})
	questsReset := len(s.state.mainQuests)
	s.enqueueSave(s.state.snapshotLocked())
	s.state.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgMainQuestsReset, "quests_reset", questsReset)

	s.publish(ctx, event.NewMainQuestsResetEvent(questsReset))
}

// ResetDailyQuests re-arms every daily quest. Earned XP is never retracted.
func (s *service) ResetDailyQuests(ctx context.Context) {
	s.state.mu.Lock()
	for i := range s.state.dailyQuests {
		s.state.dailyQuests[i].Completed = false
	}
	s.enqueueSave(s.state.snapshotLocked())
	s.state.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgDailyQuestsReset)
}

// UpdateProfile sets the profile name and avatar and returns the result.
// Empty arguments leave the corresponding field untouched.
func (s *service) UpdateProfile(ctx context.Context, name, avatar string) domain.Profile {
	s.state.mu.Lock()
	if name != "" {
		s.state.profile.Name = name
	}
	if avatar != "" {
		s.state.profile.Avatar = avatar
	}
	updated := s.state.profile
	s.enqueueSave(s.state.snapshotLocked())
	s.state.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgProfileUpdated, "name", updated.Name, "avatar", updated.Avatar)

	s.publish(ctx, event.NewProfileUpdatedEvent(updated.Name, updated.Avatar))

	return updated
}

// Read accessors

func (s *service) Profile(ctx context.Context) domain.Profile {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.profile
}

func (s *service) Progression(ctx context.Context) progression.Summary {
	s.state.mu.Lock()
	xp := s.state.profile.TotalXP
	s.state.mu.Unlock()
	return s.calc.Summarize(xp)
}

func (s *service) DailyQuests(ctx context.Context, category string) []domain.DailyQuest {
	s.state.mu.Lock()
	quests := copyDailyQuests(s.state.dailyQuests)
	s.state.mu.Unlock()
	return FilterDailyByCategory(quests, category)
}

func (s *service) MainQuests(ctx context.Context, category string) []domain.MainQuest {
	s.state.mu.Lock()
	quests := copyMainQuests(s.state.mainQuests)
	s.state.mu.Unlock()
	return FilterMainByCategory(quests, category)
}

func (s *service) CompletedQuestIDs(ctx context.Context) []string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	ids := make([]string, 0, len(s.state.completedQuests))
	for id := range s.state.completedQuests {
		ids = append(ids, id)
	}
	return ids
}

func (s *service) LastResetDate(ctx context.Context) string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.lastResetDate
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	for _, evt := range events {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

func (s *service) enqueueSave(snap Snapshot) {
	if s.saver == nil {
		return
	}
	s.saver.Enqueue(snap)
}
