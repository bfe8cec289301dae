package idea

import (
	"time"

	"gorm.io/datatypes"
)

// Idea status values.
const (
	StatusProposed   = "proposed"
	StatusInProgress = "in-progress"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
)

// ValidStatus reports whether s is a recognized idea status.
func ValidStatus(s string) bool {
	switch s {
	case StatusProposed, StatusInProgress, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Idea is a student proposal, optionally tied to a club, subject to voting
// and status progression. Tags are stored as a JSON array of lowercase
// strings with duplicates removed.
type Idea struct {
	ID          string         `gorm:"primaryKey;size:12" json:"id"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Creator     string         `gorm:"size:50;not null" json:"creator"`
	ClubID      *string        `gorm:"size:12;index" json:"clubId"`
	Status      string         `gorm:"size:20;not null;default:proposed" json:"status"`
	Votes       int            `gorm:"not null;default:0" json:"votes"`
	CreatedDate string         `gorm:"size:10;not null" json:"createdAt"` // YYYY-MM-DD
	Tags        datatypes.JSON `gorm:"type:json" json:"tags"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// ============================
// Create Idea Request
type CreateIdeaRequest struct {
	Title       string   `json:"title" binding:"required,min=5,max=100"`
	Description string   `json:"description" binding:"required,min=20"`
	Creator     string   `json:"creator" binding:"required"`
	ClubID      string   `json:"clubId"`
	Tags        []string `json:"tags"`
}

// ============================
// Update Idea Request (shallow patch; status changes go through /status)
type UpdateIdeaRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=5,max=100"`
	Description *string   `json:"description" binding:"omitempty,min=20"`
	Creator     *string   `json:"creator"`
	Tags        *[]string `json:"tags"`
}

// ============================
// Set Status Request
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
