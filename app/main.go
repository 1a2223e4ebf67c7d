package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mercato-app/homefeed/app/analytics"
	"github.com/mercato-app/homefeed/app/api"
	"github.com/mercato-app/homefeed/app/bus"
	"github.com/mercato-app/homefeed/app/card"
	"github.com/mercato-app/homefeed/app/cfg"
	"github.com/mercato-app/homefeed/app/database"
	"github.com/mercato-app/homefeed/app/directive"
	"github.com/mercato-app/homefeed/app/feed"
	"github.com/mercato-app/homefeed/app/store"
	"github.com/mercato-app/homefeed/app/tasks"
)

func main() {
	appConfig, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appConfig.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Home Feed server", "version", appConfig.Version)

	// Database connection and migrations
	db, err := database.NewConnection(appConfig.DBPath)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appConfig.DBPath, "migration_version", version, "dirty", dirty)

	// Priority hint store
	var priorities store.PriorityStore
	if appConfig.RedisAddr != "" {
		redisStore, err := store.NewRedisStore(appConfig.RedisAddr)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		priorities = redisStore
	} else {
		slog.Info("No Redis address configured, priority hints are in-memory only")
		priorities = store.NewMemoryStore()
	}

	// Repositories and analytics boundary
	cardRepo := database.NewCardRepo(db)
	eventRepo := database.NewEventRepo(db)
	analyticsLogger := analytics.NewLogger(eventRepo)

	// Local tile configurations
	tiles := feed.NewTileCache(appConfig.TilesDir)
	if err := tiles.Run(); err != nil {
		slog.Error("Failed to load tile configurations", "error", err)
		os.Exit(1)
	}
	slog.Info("Tile configurations loaded", "count", tiles.GetTileCount())

	// Core pipeline
	assembler := feed.NewAssembler(feed.NewOrderer(), analyticsLogger)
	service := feed.NewService(card.NewNormalizer(), assembler, tiles, priorities, cardRepo)
	if err := service.Restore(); err != nil {
		slog.Error("Failed to restore feed from persisted batch", "error", err)
		os.Exit(1)
	}

	// Serialized event worker and signal wiring
	scheduler := tasks.NewScheduler()
	signals := bus.New()
	signals.Subscribe(bus.SignalDefaultExperience, func() {
		scheduler.Enqueue(tasks.NewSwitchExperienceTask(feed.ModeDefault, service))
	})
	signals.Subscribe(bus.SignalContentCardExperience, func() {
		scheduler.Enqueue(tasks.NewSwitchExperienceTask(feed.ModeContentCard, service))
	})
	signals.Subscribe(bus.SignalReorder, func() {
		scheduler.Enqueue(tasks.NewReorderFeedTask(service))
	})
	scheduler.Start()

	// Push directive boundary
	directives := directive.NewHandler()
	applier := directive.NewApplier(priorities, signals, analyticsLogger)

	// HTTP server
	handler := api.NewHandler(service, tiles, directives, applier,
		analyticsLogger, priorities, eventRepo, scheduler)
	server := api.NewServer(handler, appConfig.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appConfig.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	// The presentation surface is going away: record dismissals for
	// every card-backed tile still on screen.
	service.Reset()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	scheduler.Stop()

	slog.Info("Shutdown complete")
}
