package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/config"
	"github.com/svitclubs/club-management-backend/database"
	"github.com/svitclubs/club-management-backend/internal/auditlog"
	"github.com/svitclubs/club-management-backend/internal/auth"
	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
	"github.com/svitclubs/club-management-backend/internal/notification"
	"github.com/svitclubs/club-management-backend/internal/reports"
	"github.com/svitclubs/club-management-backend/middleware"
	"github.com/svitclubs/club-management-backend/utils"

	_ "github.com/svitclubs/club-management-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup wires every module into the router. Write access to clubs, events
// and ideas requires a login; destructive club operations and the audit
// trail are restricted to staff roles.
func Setup(r *gin.Engine, cfg *config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimiter())

	// ============ Module wiring ============
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, utils.RedisStore{}, cfg)
	authHandler := auth.NewHandler(authSvc)

	publisher := notification.NewPublisher(cfg)
	notifRepo := notification.NewRepository(database.DB)
	notifSvc := notification.NewService(notifRepo, authRepo)
	notifHandler := notification.NewHandler(notifSvc)
	notification.StartKafkaConsumer(notifSvc, cfg)

	clubRepo := club.NewRepository(database.DB)
	clubSvc := club.NewService(clubRepo, auditSvc, publisher, cfg.ClubDeleteCascade)
	clubHandler := club.NewHandler(clubSvc)

	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc, publisher)
	eventHandler := event.NewHandler(eventSvc)

	ideaRepo := idea.NewRepository(database.DB)
	ideaSvc := idea.NewService(ideaRepo, auditSvc, publisher, utils.RedisStore{}, cfg.IdeaVoteDedupe)
	ideaHandler := idea.NewHandler(ideaSvc)

	reportRepo := reports.NewRepository(database.DB)
	reportSvc := reports.NewService(reportRepo, reports.NewReportExporter(), auditSvc)
	reportHandler := reports.NewHandler(reportSvc)

	r.Use(middleware.AuditMiddleware(auditSvc))

	// ============ Health + docs ============
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// ============ Auth ============
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	requireLogin := middleware.AuthMiddleware(cfg, authSvc)
	staffOnly := middleware.RBACMiddleware(auth.RoleAdmin, auth.RoleFaculty)
	adminOnly := middleware.RBACMiddleware(auth.RoleAdmin)

	me := api.Group("/auth", requireLogin)
	{
		me.POST("/logout", authHandler.Logout)
		me.GET("/profile", authHandler.GetProfile)
		me.PUT("/profile", authHandler.UpdateProfile)
	}

	// ============ Clubs ============
	clubs := api.Group("/clubs")
	{
		clubs.GET("", clubHandler.GetClubs)
		clubs.GET("/:id", clubHandler.GetClub)
		clubs.GET("/:id/events", eventHandler.GetClubEvents)
		clubs.GET("/:id/ideas", ideaHandler.GetClubIdeas)

		clubs.POST("", requireLogin, clubHandler.CreateClub)
		clubs.PUT("/:id", requireLogin, clubHandler.UpdateClub)
		clubs.DELETE("/:id", requireLogin, staffOnly, clubHandler.DeleteClub)
		clubs.POST("/:id/join", requireLogin, clubHandler.JoinClub)
		clubs.POST("/:id/leave", requireLogin, clubHandler.LeaveClub)
	}

	// ============ Events ============
	events := api.Group("/events")
	{
		events.GET("", eventHandler.GetEvents)
		events.GET("/upcoming", eventHandler.GetUpcomingEvents)
		events.GET("/:id", eventHandler.GetEvent)

		events.POST("", requireLogin, eventHandler.CreateEvent)
		events.PUT("/:id", requireLogin, eventHandler.UpdateEvent)
		events.DELETE("/:id", requireLogin, eventHandler.DeleteEvent)
		events.POST("/:id/attend", requireLogin, eventHandler.AttendEvent)
		events.POST("/:id/cancel-attendance", requireLogin, eventHandler.CancelAttendance)
	}

	// ============ Ideas ============
	ideas := api.Group("/ideas")
	{
		ideas.GET("", ideaHandler.GetIdeas)
		ideas.GET("/top", ideaHandler.GetTopIdeas)
		ideas.GET("/:id", ideaHandler.GetIdea)

		ideas.POST("", requireLogin, ideaHandler.CreateIdea)
		ideas.PUT("/:id", requireLogin, ideaHandler.UpdateIdea)
		ideas.DELETE("/:id", requireLogin, ideaHandler.DeleteIdea)
		ideas.POST("/:id/vote", requireLogin, ideaHandler.VoteIdea)
		ideas.PATCH("/:id/status", requireLogin, ideaHandler.SetIdeaStatus)
	}

	// ============ Notifications ============
	notifications := api.Group("/notifications", requireLogin)
	{
		notifications.GET("", notifHandler.ListMine)
		notifications.PATCH("/:id/read", notifHandler.MarkRead)
	}

	// ============ Audit trail (admin) ============
	audit := api.Group("/auditlogs", requireLogin, adminOnly)
	{
		audit.GET("", auditHandler.GetAuditLogs)
		audit.GET("/:id", auditHandler.GetAuditLogByID)
	}

	// ============ Reports (staff) ============
	reportGroup := api.Group("/reports", requireLogin, staffOnly)
	{
		reportGroup.GET("/:type", reportHandler.DownloadReport)
	}
}
