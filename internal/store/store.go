package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/metrics"
)

// Cache sizing. The store holds a handful of logical keys; the cache exists
// to keep reads off disk, not to bound a large working set.
const (
	cacheSize = 16
	cacheTTL  = 30 * time.Second
)

// Store is the durable key/value store with graceful degradation: every write
// goes to the primary medium and to the secondary medium's live+backup copies;
// every read falls through primary, secondary live, secondary backup in that
// order. Medium failures are logged and absorbed, never returned - the host's
// storage being partially unavailable must not surface as an application
// error, because losing progress silently is the one unacceptable outcome.
type Store struct {
	primary   Medium
	secondary *FileMedium
	cache     *expirable.LRU[string, []byte]
}

// New composes the primary and secondary media into a store.
func New(primary Medium, secondary *FileMedium) *Store {
	return &Store{
		primary:   primary,
		secondary: secondary,
		cache:     expirable.NewLRU[string, []byte](cacheSize, nil, cacheTTL),
	}
}

// Set writes the value to every medium. Failures are logged, counted and
// swallowed; the write is a no-op only when every medium fails.
func (s *Store) Set(ctx context.Context, key string, value []byte) {
	log := logger.FromContext(ctx)

	if s.primary != nil {
		if err := s.primary.Set(ctx, key, value); err != nil {
			metrics.StoreMediumFailures.WithLabelValues(s.primary.Name(), "set").Inc()
			log.Warn("Primary medium write failed", "medium", s.primary.Name(), "key", key, "error", err)
		}
	}

	if s.secondary != nil {
		if err := s.secondary.Set(ctx, key, value); err != nil {
			metrics.StoreMediumFailures.WithLabelValues(s.secondary.Name(), "set").Inc()
			log.Warn("Secondary medium write failed", "medium", s.secondary.Name(), "key", key, "error", err)
		}
	}

	s.cache.Add(key, value)
}

// Get reads the value for key, falling through the media chain. Returns
// (nil, false) only when every lookup misses.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	log := logger.FromContext(ctx)

	if value, ok := s.cache.Get(key); ok {
		return value, true
	}

	if s.primary != nil {
		value, found, err := s.primary.Get(ctx, key)
		if err != nil {
			metrics.StoreMediumFailures.WithLabelValues(s.primary.Name(), "get").Inc()
			log.Warn("Primary medium read failed, falling back", "medium", s.primary.Name(), "key", key, "error", err)
		} else if found {
			s.cache.Add(key, value)
			return value, true
		}
	}

	if s.secondary != nil {
		value, found, err := s.secondary.Get(ctx, key)
		if err != nil {
			metrics.StoreMediumFailures.WithLabelValues(s.secondary.Name(), "get").Inc()
			log.Warn("Secondary live read failed, falling back", "key", key, "error", err)
		} else if found {
			metrics.StoreFallbackReads.WithLabelValues("secondary_live").Inc()
			s.cache.Add(key, value)
			return value, true
		}

		value, found, err = s.secondary.GetBackup(ctx, key)
		if err != nil {
			metrics.StoreMediumFailures.WithLabelValues(s.secondary.Name(), "get_backup").Inc()
			log.Warn("Secondary backup read failed", "key", key, "error", err)
		} else if found {
			metrics.StoreFallbackReads.WithLabelValues("secondary_backup").Inc()
			s.cache.Add(key, value)
			return value, true
		}
	}

	return nil, false
}

// SavedAt reports when the secondary medium last wrote key. Zero time when unknown.
func (s *Store) SavedAt(key string) time.Time {
	if s.secondary == nil {
		return time.Time{}
	}
	return s.secondary.SavedAt(key)
}
