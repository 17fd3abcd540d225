package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "step.completed")
const (
	// EventTypeXPAwarded is published for every XP award. The payload source
	// distinguishes daily-quest awards, per-step awards and completion bonuses.
	EventTypeXPAwarded = "xp.awarded"

	// EventTypeDailyQuestCompleted is published when a daily quest transitions
	// to completed for the current cycle
	EventTypeDailyQuestCompleted = "daily_quest.completed"

	// EventTypeStepCompleted is published when a main quest step transitions to completed
	EventTypeStepCompleted = "step.completed"

	// EventTypeQuestCompleted is published the first time all steps of a main
	// quest are completed and the completion bonus is awarded
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeDailyResetComplete is published when the cutover reset re-arms the daily quests
	EventTypeDailyResetComplete = "daily_reset.complete"

	// EventTypeMainQuestsReset is published when the destructive full reset completes
	EventTypeMainQuestsReset = "main_quests.reset"

	// EventTypeProfileUpdated is published when the profile name or avatar changes
	EventTypeProfileUpdated = "profile.updated"
)

// XP award sources carried in EventTypeXPAwarded payloads. The completion
// bonus is a distinct event from the per-step award even though both feed the
// same XP total.
const (
	XPSourceDailyQuest      = "daily_quest"
	XPSourceStep            = "step"
	XPSourceCompletionBonus = "completion_bonus"
)
