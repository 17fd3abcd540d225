package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwilder/lifequest/internal/config"
	"github.com/cwilder/lifequest/internal/event"
	"github.com/cwilder/lifequest/internal/metrics"
)

// InitializeEventSystem creates the in-memory bus, wraps it in the resilient
// publisher and attaches the metrics collector. The dead-letter directory is
// created up front so a failing publish never also fails on mkdir.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath()
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("failed to create dead letter directory: %w", err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: deadLetterPath,
	})

	metrics.NewEventMetricsCollector().Register(eventBus)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, nil
}
