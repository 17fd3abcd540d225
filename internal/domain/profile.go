package domain

// Profile represents the single local user of the tracker.
// TotalXP is the only source of truth for level and progress; it only moves
// through the quest service's award paths and explicit resets.
type Profile struct {
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	TotalXP int64  `json:"total_xp"`
	Streak  int    `json:"streak"`

	// Display-only mood fields, persisted but never interpreted by the engine
	Mood      string `json:"mood,omitempty"`
	MoodEmoji string `json:"mood_emoji,omitempty"`
}
