package quest

import (
	"sync"

	"github.com/cwilder/lifequest/internal/domain"
)

// State is the canonical in-memory progress aggregate: the profile, both
// quest collections, the completed-quest ledger and the last-reset marker.
// It is an explicitly owned container injected into the service and the
// persistence coordinator - there are no package-level singletons, so tests
// get independent state per instance.
//
// One mutex serializes every mutation. The scheduler's reset check and
// user-triggered mutations run through the same lock, so a reset and a step
// toggle can never interleave into a half-applied aggregate.
type State struct {
	mu sync.Mutex

	profile         domain.Profile
	dailyQuests     []domain.DailyQuest
	mainQuests      []domain.MainQuest
	completedQuests map[string]struct{}
	lastResetDate   string
	settings        domain.Settings
}

// NewState builds a state container around the given definitions. The slices
// are copied; callers keep no aliases into the state.
func NewState(profile domain.Profile, dailies []domain.DailyQuest, mains []domain.MainQuest) *State {
	s := &State{
		profile:         profile,
		dailyQuests:     copyDailyQuests(dailies),
		mainQuests:      copyMainQuests(mains),
		completedQuests: make(map[string]struct{}),
		settings:        domain.DefaultSettings(),
	}
	return s
}

// Snapshot is a deep copy of the aggregate, safe to serialize or inspect
// outside the lock.
type Snapshot struct {
	Profile           domain.Profile
	DailyQuests       []domain.DailyQuest
	MainQuests        []domain.MainQuest
	CompletedQuestIDs []string
	LastResetDate     string
	Settings          domain.Settings
}

// snapshotLocked copies the aggregate. Callers must hold s.mu.
func (s *State) snapshotLocked() Snapshot {
	completed := make([]string, 0, len(s.completedQuests))
	for id := range s.completedQuests {
		completed = append(completed, id)
	}
	return Snapshot{
		Profile:           s.profile,
		DailyQuests:       copyDailyQuests(s.dailyQuests),
		MainQuests:        copyMainQuests(s.mainQuests),
		CompletedQuestIDs: completed,
		LastResetDate:     s.lastResetDate,
		Settings:          s.settings,
	}
}

// Snapshot returns a deep copy of the current aggregate.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore reconciles a validated snapshot into the live state. Saved quest
// and step completion flags are matched onto the loaded definitions by id;
// ids that no longer exist are ignored for quest state but retained in the
// completion ledger so a re-added quest cannot re-award its bonus.
func (s *State) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = snap.Profile
	s.lastResetDate = snap.LastResetDate
	s.settings = snap.Settings

	for _, saved := range snap.DailyQuests {
		for i := range s.dailyQuests {
			if s.dailyQuests[i].ID == saved.ID {
				s.dailyQuests[i].Completed = saved.Completed
				break
			}
		}
	}

	for _, saved := range snap.MainQuests {
		live := s.findMainQuestLocked(saved.ID)
		if live == nil {
			continue
		}
		for _, savedStep := range saved.Steps {
			if step := live.Step(savedStep.ID); step != nil {
				step.Completed = savedStep.Completed
			}
		}
	}

	s.completedQuests = make(map[string]struct{}, len(snap.CompletedQuestIDs))
	for _, id := range snap.CompletedQuestIDs {
		s.completedQuests[id] = struct{}{}
	}
}

func (s *State) findMainQuestLocked(id string) *domain.MainQuest {
	for i := range s.mainQuests {
		if s.mainQuests[i].ID == id {
			return &s.mainQuests[i]
		}
	}
	return nil
}

func (s *State) findDailyQuestLocked(id int) *domain.DailyQuest {
	for i := range s.dailyQuests {
		if s.dailyQuests[i].ID == id {
			return &s.dailyQuests[i]
		}
	}
	return nil
}

func copyDailyQuests(in []domain.DailyQuest) []domain.DailyQuest {
	out := make([]domain.DailyQuest, len(in))
	copy(out, in)
	return out
}

func copyMainQuests(in []domain.MainQuest) []domain.MainQuest {
	out := make([]domain.MainQuest, len(in))
	for i, q := range in {
		out[i] = q
		out[i].Steps = make([]domain.Step, len(q.Steps))
		copy(out[i].Steps, q.Steps)
	}
	return out
}
