package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileMedium is the secondary storage medium: per key it keeps a live copy, a
// backup copy and a saved-at timestamp, each as a plain file. It exists so
// that a broken or lost primary database never costs the user their progress.
type FileMedium struct {
	dir string
}

// NewFileMedium creates the medium rooted at dir, creating it if needed.
func NewFileMedium(dir string) (*FileMedium, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	return &FileMedium{dir: dir}, nil
}

func (m *FileMedium) Name() string { return "file" }

// Get returns the live copy for key.
func (m *FileMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return m.read(m.livePath(key))
}

// GetBackup returns the backup copy for key.
func (m *FileMedium) GetBackup(ctx context.Context, key string) ([]byte, bool, error) {
	return m.read(m.backupPath(key))
}

// Set writes the live copy, then the backup copy, then the saved-at stamp.
// A failure on one file does not prevent attempting the next.
func (m *FileMedium) Set(ctx context.Context, key string, value []byte) error {
	var firstErr error

	if err := os.WriteFile(m.livePath(key), value, 0644); err != nil {
		firstErr = fmt.Errorf("failed to write live copy for %s: %w", key, err)
	}
	if err := os.WriteFile(m.backupPath(key), value, 0644); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to write backup copy for %s: %w", key, err)
	}
	stamp := time.Now().UTC().Format(time.RFC3339)
	if err := os.WriteFile(m.stampPath(key), []byte(stamp), 0644); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to write saved-at stamp for %s: %w", key, err)
	}

	return firstErr
}

// SavedAt returns the staleness metadata for key: when the file medium last
// wrote it. Returns the zero time when no stamp exists.
func (m *FileMedium) SavedAt(key string) time.Time {
	data, err := os.ReadFile(m.stampPath(key))
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (m *FileMedium) read(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, true, nil
}

func (m *FileMedium) livePath(key string) string {
	return filepath.Join(m.dir, sanitizeKey(key)+".json")
}

func (m *FileMedium) backupPath(key string) string {
	return filepath.Join(m.dir, sanitizeKey(key)+".backup.json")
}

func (m *FileMedium) stampPath(key string) string {
	return filepath.Join(m.dir, sanitizeKey(key)+".saved_at")
}

// sanitizeKey maps a logical key to a safe file name fragment.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}
