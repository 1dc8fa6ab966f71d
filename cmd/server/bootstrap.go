package main

import (
	"os"

	"github.com/Bhautik-2004/Colrnx-Main/internal/config"
	"github.com/Bhautik-2004/Colrnx-Main/internal/handlers"
	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/internal/utils"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	adminResolver     *services.AdminResolver
	membershipService *services.MembershipService
	snapshotService   *services.StatsSnapshotService
	taskQueue         services.TaskQueue
	worker            *services.Worker
	authHandler       *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed default data
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	db := models.GetDB()

	// Initialize system logger
	services.InitSystemLogger(db)

	// Start system log cleanup scheduler
	services.StartLogCleanupScheduler(db)

	// Admin privilege resolution: membership table behind a cached resolver.
	// Membership writes invalidate the resolver so revocations apply at once.
	adminService := services.NewAdminService(db)
	adminResolver := services.NewAdminResolver(adminService.IsAdmin)
	membershipService := services.NewMembershipService(db, adminResolver)

	// Bootstrap the first admin from the environment on a fresh install
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if err := membershipService.SeedFirstAdmin(email); err != nil {
			logger.Warn().Err(err).Str("email", email).Msg("Failed to seed first admin")
		}
	}

	// Daily dashboard snapshots
	snapshotService := services.NewStatsSnapshotService(db)
	if err := snapshotService.StartScheduler(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start snapshot scheduler")
	}

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	notificationService := services.NewNotificationService(db)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notificationService.ProcessNotifyTask)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(notificationService.ProcessNotifyTask)
			worker.Start()
		}
	}

	return &appServices{
		adminResolver:     adminResolver,
		membershipService: membershipService,
		snapshotService:   snapshotService,
		taskQueue:         taskQueue,
		worker:            worker,
		authHandler:       handlers.NewAuthHandler(db, cfg),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.snapshotService.StopScheduler()
	logger.Info().Msg("All schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
