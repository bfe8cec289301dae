package reports

import (
	"time"

	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
)

// Repository runs the read-only report queries. Date windows filter on the
// record creation timestamp; zero times mean no window.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Clubs(start, end time.Time) ([]club.Club, error) {
	q := r.DB.Order("created_at ASC")
	if !start.IsZero() {
		q = q.Where("created_at BETWEEN ? AND ?", start, end)
	}
	var clubs []club.Club
	if err := q.Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *Repository) Events(start, end time.Time, status, clubID string) ([]event.Event, error) {
	q := r.DB.Order("date ASC, time ASC")
	if !start.IsZero() {
		q = q.Where("created_at BETWEEN ? AND ?", start, end)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if clubID != "" {
		q = q.Where("club_id = ?", clubID)
	}
	var events []event.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) Ideas(start, end time.Time, status, clubID string) ([]idea.Idea, error) {
	q := r.DB.Order("votes DESC")
	if !start.IsZero() {
		q = q.Where("created_at BETWEEN ? AND ?", start, end)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if clubID != "" {
		q = q.Where("club_id = ?", clubID)
	}
	var ideas []idea.Idea
	if err := q.Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}
