package persistence

import (
	"context"
	"sync"

	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/metrics"
	"github.com/cwilder/lifequest/internal/quest"
)

// Saver is the single writer behind every mutation. Snapshots are full-state
// documents, so the queue coalesces: when a write is still in flight the
// pending slot is replaced and only the newest snapshot lands. Enqueue never
// blocks the mutation path and never reports failure to it.
type Saver struct {
	coord *Coordinator

	mu      sync.Mutex
	pending chan quest.Snapshot
	closed  bool

	done chan struct{}
}

// NewSaver starts the background writer goroutine.
func NewSaver(coord *Coordinator) *Saver {
	s := &Saver{
		coord:   coord,
		pending: make(chan quest.Snapshot, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Enqueue hands a snapshot to the writer. Later snapshots supersede earlier
// unwritten ones, so the persisted document only ever moves forward.
func (s *Saver) Enqueue(snap quest.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.pending <- snap:
			return
		default:
			// Evict the superseded snapshot, then retry the send.
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

func (s *Saver) run() {
	defer close(s.done)
	ctx := context.Background()

	for snap := range s.pending {
		s.write(ctx, snap)
	}
}

func (s *Saver) write(ctx context.Context, snap quest.Snapshot) {
	if err := s.coord.Save(ctx, snap); err != nil {
		metrics.SnapshotWrites.WithLabelValues("error").Inc()
		logger.Error("Snapshot serialization failed", "error", err)
		return
	}
	metrics.SnapshotWrites.WithLabelValues("ok").Inc()
	logger.Debug(LogMsgSnapshotSaved, "total_xp", snap.Profile.TotalXP)
}

// Close drains the queue and stops the writer. Called on shutdown after the
// service has stopped mutating; the final snapshot is guaranteed to be written
// before Close returns.
func (s *Saver) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.pending)
	s.mu.Unlock()

	<-s.done
	logger.Info(LogMsgSaverStopped)
}
