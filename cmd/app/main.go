package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwilder/lifequest/internal/bootstrap"
	"github.com/cwilder/lifequest/internal/config"
	"github.com/cwilder/lifequest/internal/content"
	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/handler"
	"github.com/cwilder/lifequest/internal/persistence"
	"github.com/cwilder/lifequest/internal/progression"
	"github.com/cwilder/lifequest/internal/quest"
	"github.com/cwilder/lifequest/internal/scheduler"
	"github.com/cwilder/lifequest/internal/server"
	"github.com/cwilder/lifequest/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.InitValidator()

	// Quest content tables
	pack, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatalf("Failed to load quest content: %v", err)
	}
	slog.Info(bootstrap.LogMsgContentLoaded,
		"daily_quests", len(pack.DailyQuests),
		"main_quests", len(pack.MainQuests))

	// Storage chain: sqlite primary, file secondary
	storage, err := bootstrap.InitializeStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Event system
	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	// State: content defaults, then the persisted aggregate on top
	state := quest.NewState(domain.Profile{Name: "Adventurer"}, pack.DailyQuests, pack.MainQuests)
	storage.Coordinator.Load(context.Background(), state)

	saver := persistence.NewSaver(storage.Coordinator)
	questService := quest.NewService(state, progression.NewDefaultCalculator(), publisher, saver)

	// Catch-up reset for time passed while the app was closed, then the
	// minute cadence takes over.
	resetJob := worker.NewResetCheckJob(questService)
	_ = resetJob.Process(context.Background())

	pool := worker.NewPool(bootstrap.PoolWorkers, bootstrap.PoolQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(bootstrap.ResetCheckInterval, resetJob)

	var primary handler.Pinger
	if storage.Primary != nil {
		primary = storage.Primary
	}
	srv := server.New(server.Options{
		Port:        cfg.Port,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		Primary:     primary,
	}, questService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	case sig := <-stop:
		slog.Info("Signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Saver:     saver,
		Publisher: publisher,
		Storage:   storage,
	})
}
