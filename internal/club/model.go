package club

import (
	"time"
)

// DefaultLogo is applied when club creation supplies no logo URL.
const DefaultLogo = "/assets/images/club-placeholder.png"

// Club is a student organization. The events/ideas id lists are not stored:
// the relationship lives on the child records (club_id) and the lists are
// assembled by the query layer, so they can never drift out of sync.
type Club struct {
	ID          string `gorm:"primaryKey;size:12" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"size:50;not null" json:"category"`
	Logo        string `gorm:"size:512" json:"logo"`
	Members     int    `gorm:"not null;default:1" json:"members"`
	President   string `gorm:"size:50" json:"president"`
	Faculty     string `gorm:"size:50" json:"faculty"`
	CreatedDate string `gorm:"size:10;not null" json:"createdAt"` // YYYY-MM-DD

	EventIDs []string `gorm:"-" json:"events"`
	IdeaIDs  []string `gorm:"-" json:"ideas"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// ============================
// Create Club Request
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"required,min=20"`
	Category    string `json:"category" binding:"required"`
	Logo        string `json:"logo"`
	President   string `json:"president" binding:"required"`
	Faculty     string `json:"faculty" binding:"required"`
}

// ============================
// Update Club Request (shallow patch; absent fields stay untouched)
type UpdateClubRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=50"`
	Description *string `json:"description" binding:"omitempty,min=20"`
	Category    *string `json:"category"`
	Logo        *string `json:"logo"`
	President   *string `json:"president"`
	Faculty     *string `json:"faculty"`
}
