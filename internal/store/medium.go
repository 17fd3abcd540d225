package store

import "context"

// Medium is a single key/value storage backend. Implementations report
// failures as errors; the Store composes media and decides what a failure
// means for the caller (nothing - the chain absorbs it).
type Medium interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
