package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/quest"
	"github.com/cwilder/lifequest/internal/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Coordinator owns the translation between the in-memory aggregate and the
// store document. It never fails a caller over bad persisted data; the worst
// outcome of a corrupt or missing document is a fresh start.
type Coordinator struct {
	store *store.Store
	now   func() time.Time
}

func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{store: st, now: time.Now}
}

// Serialize renders a snapshot into the store document, stamping the schema
// version and the save time.
func (c *Coordinator) Serialize(snap quest.Snapshot) ([]byte, error) {
	agg := aggregateFromSnapshot(snap, c.now().Unix())
	return json.Marshal(agg)
}

// Validate parses and checks a raw store document. The boolean is false for
// malformed JSON, negative XP, or missing required fields; callers treat
// false as "start fresh". The schema version must be present but any value is
// accepted: no migration exists yet, so all versions read identically.
func (c *Coordinator) Validate(raw []byte) (Aggregate, bool) {
	var agg Aggregate
	if err := json.Unmarshal(raw, &agg); err != nil {
		return Aggregate{}, false
	}
	if err := validate.Struct(agg); err != nil {
		return Aggregate{}, false
	}
	if agg.Profile.TotalXP < 0 || agg.Profile.Streak < 0 {
		return Aggregate{}, false
	}
	return agg, true
}

// Save serializes and writes the snapshot. Store-level medium failures are
// already absorbed inside the store; the only error surfaced here is a
// serialization failure, which indicates a bug rather than an I/O condition.
func (c *Coordinator) Save(ctx context.Context, snap quest.Snapshot) error {
	raw, err := c.Serialize(snap)
	if err != nil {
		return err
	}
	c.store.Set(ctx, ProgressKey, raw)
	return nil
}

// Load reads, validates and restores the persisted aggregate into state.
// Returns false when nothing usable was found; state is left at defaults in
// that case. Never returns an error: a broken document must not stop startup.
func (c *Coordinator) Load(ctx context.Context, state *quest.State) bool {
	log := logger.FromContext(ctx)

	raw, found := c.store.Get(ctx, ProgressKey)
	if !found {
		log.Info(LogMsgSnapshotMissing)
		return false
	}

	agg, ok := c.Validate(raw)
	if !ok {
		log.Warn(LogMsgSnapshotInvalid, "bytes", len(raw))
		return false
	}

	savedAt := time.Unix(agg.SavedAt, 0)
	if age := c.now().Sub(savedAt); age > StaleAfter {
		log.Warn(LogMsgSnapshotStale, "saved_at", savedAt, "age", age)
	}

	state.Restore(agg.toSnapshot())
	log.Info(LogMsgSnapshotRestored,
		"total_xp", agg.Profile.TotalXP,
		"last_reset_date", agg.LastResetDate,
		"saved_at", savedAt,
	)
	return true
}
