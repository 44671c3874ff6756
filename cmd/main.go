package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/sportsday-system/config"
	"github.com/Dosada05/sportsday-system/db"
	"github.com/Dosada05/sportsday-system/handlers"
	"github.com/Dosada05/sportsday-system/replication"
	"github.com/Dosada05/sportsday-system/repositories"
	api "github.com/Dosada05/sportsday-system/routes"
	"github.com/Dosada05/sportsday-system/services"
	"github.com/Dosada05/sportsday-system/storage"
)

// publishInterval is how often the snapshot publisher pushes the dashboard
// view to the replication store and the websocket feed.
const publishInterval = time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	ctx := context.Background()
	if err := repositories.EnsureSchema(ctx, dbConn); err != nil {
		logger.Error("failed to ensure database schema", slog.Any("error", err))
		os.Exit(1)
	}

	stateRepo := repositories.NewPostgresStateRepository(dbConn)
	stateManager, err := services.NewStateManager(ctx, stateRepo, logger)
	if err != nil {
		logger.Error("failed to initialize state manager", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("state manager initialized")

	snapshotStore, err := replication.NewBoltStore(cfg.SnapshotDBPath)
	if err != nil {
		logger.Error("failed to open snapshot store", slog.Any("error", err), slog.String("path", cfg.SnapshotDBPath))
		os.Exit(1)
	}
	defer func() {
		if err := snapshotStore.Close(); err != nil {
			logger.Error("failed to close snapshot store", slog.Any("error", err))
		}
	}()
	logger.Info("snapshot store opened", slog.String("path", cfg.SnapshotDBPath))

	wsHub := replication.NewHub()
	go wsHub.Run()

	clock := services.SystemClock()
	rosterService := services.NewRosterService(stateManager)
	venueService := services.NewVenueService(stateManager)
	teamService := services.NewTeamService(stateManager)
	scheduleService := services.NewScheduleService(stateManager, clock)
	standingsService := services.NewStandingsService(stateManager)
	snapshotService := services.NewSnapshotService(stateManager, clock)
	finalService := services.NewFinalService(stateManager)
	adminService := services.NewAdminService(stateManager)
	authService := services.NewAuthService(cfg.OperatorPasswordHash)
	logger.Info("services initialized")

	// Optional periodic state archive.
	var uploader storage.ArchiveUploader
	if cfg.BackupConfigured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
	}
	backupService := services.NewBackupService(stateManager, uploader, cfg.BackupCron, logger)
	if err := backupService.Start(); err != nil {
		logger.Error("failed to start backup service", slog.Any("error", err))
		os.Exit(1)
	}
	defer backupService.Stop()

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	venueHandler := handlers.NewVenueHandler(venueService)
	teamHandler := handlers.NewTeamHandler(teamService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)
	finalHandler := handlers.NewFinalHandler(finalService)
	adminHandler := handlers.NewAdminHandler(adminService)
	dashboardHandler := handlers.NewDashboardHandler(snapshotStore, wsHub, snapshotService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		rosterHandler,
		venueHandler,
		teamHandler,
		scheduleHandler,
		standingsHandler,
		finalHandler,
		adminHandler,
		dashboardHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(runCtx)

	group.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Snapshot publisher: one write per second to the store, then a push to
	// every connected dashboard.
	group.Go(func() error {
		ticker := time.NewTicker(publishInterval)
		defer ticker.Stop()
		for {
			select {
			case <-groupCtx.Done():
				return nil
			case <-ticker.C:
				snap := snapshotService.BuildSnapshot(clock.Now())
				if err := snapshotStore.Publish(replication.DefaultSnapshotKey, snap); err != nil {
					logger.Error("failed to publish snapshot", slog.Any("error", err))
					continue
				}
				wsHub.BroadcastSnapshot(snap)
			}
		}
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}
