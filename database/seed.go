package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/config"
	"github.com/svitclubs/club-management-backend/internal/auth"
	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
	"github.com/svitclubs/club-management-backend/utils"
)

// SeedAdminUser creates the admin account once, from the configured
// credentials. Skipped when the account already exists or no password is
// configured.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing auth.User
	err := db.First(&existing, "email = ?", cfg.AdminEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := auth.User{
		ID:           utils.GenerateID(),
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
		ProfileImage: auth.DefaultProfileImage,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin account %s", cfg.AdminEmail)
	return nil
}

// SeedSampleData loads the demo clubs, events and ideas on an empty
// database so a fresh install has something to show.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&club.Club{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ref := func(s string) *string { return &s }
	tags := func(ts ...string) datatypes.JSON {
		out := []byte(`[`)
		for i, t := range ts {
			if i > 0 {
				out = append(out, ',')
			}
			out = append(out, '"')
			out = append(out, t...)
			out = append(out, '"')
		}
		return datatypes.JSON(append(out, ']'))
	}

	clubs := []club.Club{
		{
			ID:          "1",
			Name:        "Tech Innovators",
			Description: "A club for students passionate about technology and innovation. We work on cutting-edge projects and organize tech events.",
			Category:    "Technology",
			Logo:        club.DefaultLogo,
			Members:     45,
			President:   "Ravi Kumar",
			Faculty:     "Dr. Anand Sharma",
			CreatedDate: "2023-01-15",
		},
		{
			ID:          "2",
			Name:        "Entrepreneurship Cell",
			Description: "We nurture and support student entrepreneurs to develop their business ideas and connect with industry experts.",
			Category:    "Business",
			Logo:        club.DefaultLogo,
			Members:     32,
			President:   "Priya Reddy",
			Faculty:     "Prof. Rajesh Gupta",
			CreatedDate: "2023-02-10",
		},
		{
			ID:          "3",
			Name:        "Robotics Club",
			Description: "Exploring the world of robotics through hands-on projects, competitions, and workshops.",
			Category:    "Technology",
			Logo:        club.DefaultLogo,
			Members:     12,
			President:   "Kiran Patel",
			Faculty:     "Dr. Meenakshi Verma",
			CreatedDate: "2023-03-05",
		},
	}

	events := []event.Event{
		{
			ID:          "1",
			Name:        "Hackathon 2025",
			Description: "A 24-hour coding competition to solve real-world problems using technology.",
			Date:        "2025-02-15",
			Time:        "09:00",
			Venue:       "Main Auditorium",
			ClubID:      ref("1"),
			Attendees:   120,
			Status:      event.StatusUpcoming,
			Image:       event.DefaultImage,
		},
		{
			ID:          "2",
			Name:        "Startup Pitch Day",
			Description: "Present your startup ideas to investors and win funding for your venture.",
			Date:        "2025-03-20",
			Time:        "10:00",
			Venue:       "Seminar Hall B",
			ClubID:      ref("2"),
			Attendees:   75,
			Status:      event.StatusUpcoming,
			Image:       event.DefaultImage,
		},
		{
			ID:          "3",
			Name:        "Tech Workshop",
			Description: "Learn the basics of web development and create your first website.",
			Date:        "2023-05-10",
			Time:        "14:00",
			Venue:       "Computer Lab 2",
			ClubID:      ref("1"),
			Attendees:   40,
			Status:      event.StatusCompleted,
			Image:       event.DefaultImage,
		},
		{
			ID:          "4",
			Name:        "Robotics Competition",
			Description: "Showcase your robotics skills and compete for exciting prizes.",
			Date:        "2025-04-10",
			Time:        "11:00",
			Venue:       "Engineering Block",
			ClubID:      ref("3"),
			Attendees:   50,
			Status:      event.StatusUpcoming,
			Image:       event.DefaultImage,
		},
	}

	ideas := []idea.Idea{
		{
			ID:          "1",
			Title:       "Smart Campus App",
			Description: "A mobile app that helps students navigate the campus, check class schedules, and get real-time updates.",
			Creator:     "Suresh Kumar",
			ClubID:      ref("1"),
			Status:      idea.StatusInProgress,
			Votes:       32,
			CreatedDate: "2023-04-05",
			Tags:        tags("mobile", "technology", "campus"),
		},
		{
			ID:          "2",
			Title:       "Virtual Reality Lab",
			Description: "Setting up a VR lab for immersive learning experiences across different subjects.",
			Creator:     "Aarti Singh",
			ClubID:      ref("1"),
			Status:      idea.StatusProposed,
			Votes:       27,
			CreatedDate: "2023-04-12",
			Tags:        tags("vr", "education", "innovation"),
		},
		{
			ID:          "3",
			Title:       "Student Marketplace",
			Description: "An online platform for students to buy and sell used books, electronics, and other items within the campus community.",
			Creator:     "Rahul Verma",
			ClubID:      ref("2"),
			Status:      idea.StatusApproved,
			Votes:       45,
			CreatedDate: "2023-03-28",
			Tags:        tags("marketplace", "business", "students"),
		},
		{
			ID:          "4",
			Title:       "Automated Waste Sorter",
			Description: "A robot that can automatically sort different types of waste for better recycling on campus.",
			Creator:     "Deepa Nair",
			ClubID:      ref("3"),
			Status:      idea.StatusProposed,
			Votes:       19,
			CreatedDate: "2024-12-18",
			Tags:        tags("robotics", "environment", "sustainability"),
		},
	}

	if err := db.Create(&clubs).Error; err != nil {
		return err
	}
	if err := db.Create(&events).Error; err != nil {
		return err
	}
	if err := db.Create(&ideas).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d clubs, %d events, %d ideas", len(clubs), len(events), len(ideas))
	return nil
}
