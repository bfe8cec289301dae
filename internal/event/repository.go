package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) GetByID(id string) (*Event, error) {
	var e Event
	if err := r.DB.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) ListAll() ([]Event, error) {
	var events []Event
	if err := r.DB.Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) ListByClub(clubID string) ([]Event, error) {
	var events []Event
	if err := r.DB.Where("club_id = ?", clubID).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) Update(e *Event) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(id string) error {
	res := r.DB.Delete(&Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustAttendees applies a signed delta to the attendee counter in a
// single UPDATE, clamped so the counter never goes negative.
func (r *Repository) AdjustAttendees(id string, delta int) error {
	res := r.DB.Model(&Event{}).Where("id = ?", id).
		Update("attendees", gorm.Expr("CASE WHEN attendees + ? < 0 THEN 0 ELSE attendees + ? END", delta, delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClubExists checks the clubs table without importing the club package.
func (r *Repository) ClubExists(clubID string) (bool, error) {
	var count int64
	err := r.DB.Table("clubs").Where("id = ?", clubID).Count(&count).Error
	return count > 0, err
}
