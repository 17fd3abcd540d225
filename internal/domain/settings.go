package domain

// Settings are user-selected flags persisted alongside progress. The engine
// stores and restores them; only the UI interprets them.
type Settings struct {
	Theme         string `json:"theme"`
	SoundEnabled  bool   `json:"sound_enabled"`
	ReducedMotion bool   `json:"reduced_motion"`
}

// DefaultSettings returns the settings used for a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		Theme:        "dark",
		SoundEnabled: true,
	}
}
