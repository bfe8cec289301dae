package event

import (
	"time"
)

// Event status values.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultImage is applied when event creation supplies no image URL.
const DefaultImage = "/assets/images/event-placeholder.jpg"

// ValidStatus reports whether s is a recognized event status.
func ValidStatus(s string) bool {
	return s == StatusUpcoming || s == StatusCompleted || s == StatusCancelled
}

// Event is an activity hosted by a club. ClubID is optional: a campus-wide
// event carries no club reference.
type Event struct {
	ID          string  `gorm:"primaryKey;size:12" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Date        string  `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time        string  `gorm:"size:5" json:"time"`                 // HH:MM
	Venue       string  `gorm:"size:100" json:"venue"`
	ClubID      *string `gorm:"size:12;index" json:"clubId"`
	Attendees   int     `gorm:"not null;default:0" json:"attendees"`
	Status      string  `gorm:"size:20;not null;default:upcoming" json:"status"`
	Image       string  `gorm:"size:512" json:"image"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// ============================
// Create Event Request
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"required,min=20"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"omitempty,datetime=15:04"`
	Venue       string `json:"venue" binding:"required"`
	ClubID      string `json:"clubId"`
	Image       string `json:"image"`
}

// ============================
// Update Event Request (shallow patch)
type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,min=20"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" binding:"omitempty,datetime=15:04"`
	Venue       *string `json:"venue"`
	Status      *string `json:"status"`
	Image       *string `json:"image"`
}
