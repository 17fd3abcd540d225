package quest

import "time"

// StepXP is the fixed XP award for completing any single main quest step.
// It is independent of the quest's declared XP reward, which is solely the
// one-time completion bonus.
const StepXP int64 = 25

// Daily reset cutover configuration. All users share one cutover moment: the
// reset fires at the cutover hour in a single fixed timezone, never the host
// machine's local zone. The 04:00 cutover keeps "today's" quests completable
// for users active past midnight.
const (
	CutoverHour = 4

	ResetZoneName          = "UTC-5"
	ResetZoneOffsetSeconds = -5 * 60 * 60

	DateKeyLayout = "2006-01-02"
)

// ResetZone is the fixed timezone anchoring the daily cutover.
var ResetZone = time.FixedZone(ResetZoneName, ResetZoneOffsetSeconds)

// Log message constants
const (
	LogMsgDailyQuestCompleted = "Daily quest completed"
	LogMsgStepCompleted       = "Quest step completed"
	LogMsgQuestCompleted      = "Main quest completed, bonus awarded"
	LogMsgMainQuestsReset     = "All main quests reset"
	LogMsgDailyQuestsReset    = "Daily quests reset"
	LogMsgDailyResetPerformed = "Daily cutover reset performed"
	LogMsgProfileUpdated      = "Profile updated"
)
