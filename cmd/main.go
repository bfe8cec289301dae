package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/config"
	"github.com/svitclubs/club-management-backend/database"
	"github.com/svitclubs/club-management-backend/internal/auditlog"
	"github.com/svitclubs/club-management-backend/internal/auth"
	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
	"github.com/svitclubs/club-management-backend/internal/notification"
	"github.com/svitclubs/club-management-backend/routes"
	"github.com/svitclubs/club-management-backend/utils"
)

// @title SVIT Club Management API
// @version 1.0
// @description Backend for the student club portal: clubs, events, ideas, voting and notifications.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}
	log.Println("✅ Redis connected")

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&club.Club{},
		&event.Event{},
		&idea.Idea{},
		&auditlog.AuditLog{},
		&notification.InAppNotification{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}

	// Seed admin account and sample records
	if err := database.SeedAdminUser(db, cfg); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin user: %v", err))
	}
	if err := database.SeedSampleData(db); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed sample data: %v", err))
	}

	r := gin.Default()
	routes.Setup(r, cfg)

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
