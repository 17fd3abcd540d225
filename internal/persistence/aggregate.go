package persistence

import (
	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/quest"
)

// Aggregate is the serialized shape of the whole progress state. It is the
// only thing ever written to or read from the store: one document, one key,
// replaced wholesale on every save.
type Aggregate struct {
	SchemaVersion string `json:"schema_version" validate:"required"`
	SavedAt       int64  `json:"saved_at" validate:"gt=0"`

	Profile           *domain.Profile     `json:"profile" validate:"required"`
	DailyQuests       []domain.DailyQuest `json:"daily_quests" validate:"required"`
	MainQuests        []domain.MainQuest  `json:"main_quests" validate:"required"`
	CompletedQuestIDs []string            `json:"completed_quest_ids"`
	LastResetDate     string              `json:"last_reset_date"`
	Settings          *domain.Settings    `json:"settings,omitempty"`
}

func aggregateFromSnapshot(snap quest.Snapshot, savedAt int64) Aggregate {
	settings := snap.Settings
	profile := snap.Profile
	return Aggregate{
		SchemaVersion:     SchemaVersion,
		SavedAt:           savedAt,
		Profile:           &profile,
		DailyQuests:       snap.DailyQuests,
		MainQuests:        snap.MainQuests,
		CompletedQuestIDs: snap.CompletedQuestIDs,
		LastResetDate:     snap.LastResetDate,
		Settings:          &settings,
	}
}

// toSnapshot converts a validated aggregate back into restore input. Absent
// optional fields keep the defaults a fresh state would have.
func (a Aggregate) toSnapshot() quest.Snapshot {
	settings := domain.DefaultSettings()
	if a.Settings != nil {
		settings = *a.Settings
	}
	return quest.Snapshot{
		Profile:           *a.Profile,
		DailyQuests:       a.DailyQuests,
		MainQuests:        a.MainQuests,
		CompletedQuestIDs: a.CompletedQuestIDs,
		LastResetDate:     a.LastResetDate,
		Settings:          settings,
	}
}
