package main

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/handlers"
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	db := models.GetDB()

	// Rate limiter for credential-bearing public routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler(db, svc.taskQueue)
	r.GET("/health", healthHandler.Check)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/signup", svc.authHandler.Signup)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.Me)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.PUT("/auth/password", svc.authHandler.ChangePassword)

			// Own profile
			profileHandler := handlers.NewProfileHandler(db)
			protected.PUT("/profile", profileHandler.UpdateMe)

			// Projects
			projectHandler := handlers.NewProjectHandler(db)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.Get)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)

			// Participants
			participantHandler := handlers.NewParticipantHandler(db)
			protected.GET("/projects/:id/participants", participantHandler.List)
			protected.POST("/projects/:id/participants", participantHandler.Add)
			protected.PUT("/projects/:id/participants/:participantID", participantHandler.UpdateRole)
			protected.DELETE("/projects/:id/participants/:participantID", participantHandler.Remove)

			// Timelines
			timelineHandler := handlers.NewTimelineHandler(db)
			protected.GET("/projects/:id/timelines", timelineHandler.List)
			protected.POST("/projects/:id/timelines", timelineHandler.Create)
			protected.PUT("/projects/:id/timelines/:timelineID", timelineHandler.Update)
			protected.DELETE("/projects/:id/timelines/:timelineID", timelineHandler.Delete)

			// Resources
			resourceHandler := handlers.NewResourceHandler(db)
			protected.GET("/projects/:id/resources", resourceHandler.List)
			protected.POST("/projects/:id/resources", resourceHandler.Create)
			protected.PUT("/projects/:id/resources/:resourceID", resourceHandler.Update)
			protected.DELETE("/projects/:id/resources/:resourceID", resourceHandler.Delete)

			// Updates
			updateHandler := handlers.NewUpdateHandler(db)
			protected.GET("/projects/:id/updates", updateHandler.List)
			protected.POST("/projects/:id/updates", updateHandler.Create)
			protected.PUT("/projects/:id/updates/:updateID", updateHandler.Update)
			protected.DELETE("/projects/:id/updates/:updateID", updateHandler.Delete)

			// Discussions
			discussionHandler := handlers.NewDiscussionHandler(db)
			protected.GET("/projects/:id/updates/:updateID/discussions", discussionHandler.List)
			protected.POST("/projects/:id/updates/:updateID/discussions", discussionHandler.Create)
			protected.PUT("/projects/:id/discussions/:discussionID", discussionHandler.Update)
			protected.DELETE("/projects/:id/discussions/:discussionID", discussionHandler.Delete)

			// Notifications
			notificationHandler := handlers.NewNotificationHandler(db)
			protected.GET("/notifications", notificationHandler.List)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			protected.PUT("/notifications/read-all", notificationHandler.MarkAllRead)

			// Catalogs (read for all users)
			catalogHandler := handlers.NewCatalogHandler(db)
			protected.GET("/learning-resources", catalogHandler.ListLearningResources)
			protected.GET("/study-groups", catalogHandler.ListStudyGroups)
		}

		// Admin only routes. Privilege comes from the membership table via
		// the cached resolver; mutations in this group are audit logged.
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(svc.adminResolver.IsAdmin), middleware.AuditLog())
		{
			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(db, svc.snapshotService)
			admin.GET("/dashboard/stats", dashboardHandler.GetStats)
			admin.GET("/dashboard/history", dashboardHandler.GetHistory)
			admin.POST("/dashboard/snapshot", dashboardHandler.CaptureSnapshot)

			// Profiles
			profileHandler := handlers.NewProfileHandler(db)
			admin.GET("/admin/profiles", profileHandler.List)
			admin.PUT("/admin/profiles/:id/active", profileHandler.SetActive)

			// Admin memberships
			membershipHandler := handlers.NewMembershipHandler(svc.membershipService)
			admin.GET("/admin/memberships", membershipHandler.List)
			admin.POST("/admin/memberships", membershipHandler.Create)
			admin.DELETE("/admin/memberships/:id", membershipHandler.Deactivate)

			// Catalogs (write operations)
			catalogHandler := handlers.NewCatalogHandler(db)
			admin.POST("/admin/learning-resources", catalogHandler.CreateLearningResource)
			admin.PUT("/admin/learning-resources/:id", catalogHandler.UpdateLearningResource)
			admin.DELETE("/admin/learning-resources/:id", catalogHandler.DeleteLearningResource)
			admin.POST("/admin/study-groups", catalogHandler.CreateStudyGroup)
			admin.PUT("/admin/study-groups/:id", catalogHandler.UpdateStudyGroup)
			admin.DELETE("/admin/study-groups/:id", catalogHandler.DeleteStudyGroup)

			// System Config
			systemConfigHandler := handlers.NewSystemConfigHandler(db)
			admin.GET("/admin/system-config", systemConfigHandler.List)
			admin.PUT("/admin/system-config", systemConfigHandler.Set)

			// System Logs
			systemLogHandler := handlers.NewSystemLogHandler(db)
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/modules", systemLogHandler.GetModules)
			admin.GET("/system-logs/retention", systemLogHandler.GetRetentionDays)
			admin.PUT("/system-logs/retention", systemLogHandler.SetRetentionDays)
			admin.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
		}
	}
}
