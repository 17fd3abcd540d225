package persistence

import "time"

const (
	// ProgressKey is the single logical store key the whole aggregate lives under.
	ProgressKey = "lifequest.progress"

	// SchemaVersion is stamped into every serialized aggregate. Bump on any
	// incompatible shape change.
	SchemaVersion = "1.0"

	// StaleAfter is the snapshot age past which a restore logs a warning.
	StaleAfter = 7 * 24 * time.Hour
)

const (
	LogMsgSnapshotInvalid  = "Persisted snapshot failed validation, starting fresh"
	LogMsgSnapshotMissing  = "No persisted snapshot found, starting fresh"
	LogMsgSnapshotRestored = "Persisted snapshot restored"
	LogMsgSnapshotStale    = "Persisted snapshot is stale"
	LogMsgSnapshotSaved    = "Snapshot written"
	LogMsgSaverStopped     = "Snapshot saver stopped"
)
