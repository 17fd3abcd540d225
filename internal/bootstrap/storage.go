package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwilder/lifequest/internal/config"
	"github.com/cwilder/lifequest/internal/persistence"
	"github.com/cwilder/lifequest/internal/store"
)

// Storage bundles the composed store with the handles that need closing.
type Storage struct {
	Store       *store.Store
	Primary     *store.SQLiteMedium
	Coordinator *persistence.Coordinator
}

// InitializeStorage prepares the data directory and composes the storage
// chain. A failed sqlite open degrades to file-only storage instead of
// aborting startup; losing the primary medium costs durability layers, not
// the application.
func InitializeStorage(cfg *config.Config) (*Storage, error) {
	if err := os.MkdirAll(cfg.DataDir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	secondary, err := store.NewFileMedium(cfg.SnapshotDir())
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	var primary *store.SQLiteMedium
	sqlite, err := store.NewSQLiteMedium(cfg.DBPath())
	if err != nil {
		slog.Warn("Primary sqlite medium unavailable, continuing file-only", "error", err)
	} else {
		primary = sqlite
	}

	var primaryMedium store.Medium
	if primary != nil {
		primaryMedium = primary
	}
	st := store.New(primaryMedium, secondary)

	slog.Info(LogMsgStorageInitialized,
		"db_path", cfg.DBPath(),
		"snapshot_dir", cfg.SnapshotDir(),
		"primary_available", primary != nil)

	return &Storage{
		Store:       st,
		Primary:     primary,
		Coordinator: persistence.NewCoordinator(st),
	}, nil
}

// Close releases the storage handles.
func (s *Storage) Close() {
	if s.Primary != nil {
		if err := s.Primary.Close(); err != nil {
			slog.Error("Failed to close sqlite medium", "error", err)
		}
	}
}
