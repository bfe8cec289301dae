package club

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Club) error {
	return r.DB.Create(c).Error
}

func (r *Repository) GetByID(id string) (*Club, error) {
	var c Club
	if err := r.DB.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListAll() ([]Club, error) {
	var clubs []Club
	if err := r.DB.Order("created_at ASC").Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *Repository) Update(c *Club) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(id string) error {
	return r.DB.Delete(&Club{}, "id = ?", id).Error
}

// AdjustMembers applies a signed delta to the member count in a single
// UPDATE. The count never drops below 1 (the founder).
func (r *Repository) AdjustMembers(id string, delta int) error {
	res := r.DB.Model(&Club{}).Where("id = ?", id).
		Update("members", gorm.Expr("CASE WHEN members + ? < 1 THEN 1 ELSE members + ? END", delta, delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ChildEventIDs returns the ids of all events that belong to the club,
// oldest first.
func (r *Repository) ChildEventIDs(clubID string) ([]string, error) {
	var ids []string
	err := r.DB.Table("events").Where("club_id = ?", clubID).
		Order("created_at ASC").Pluck("id", &ids).Error
	return ids, err
}

// ChildIdeaIDs returns the ids of all ideas that belong to the club,
// oldest first.
func (r *Repository) ChildIdeaIDs(clubID string) ([]string, error) {
	var ids []string
	err := r.DB.Table("ideas").Where("club_id = ?", clubID).
		Order("created_at ASC").Pluck("id", &ids).Error
	return ids, err
}

// DeleteChildren removes every event and idea attached to the club. Used
// only when cascading deletes are enabled.
func (r *Repository) DeleteChildren(clubID string) error {
	if err := r.DB.Exec("DELETE FROM events WHERE club_id = ?", clubID).Error; err != nil {
		return err
	}
	return r.DB.Exec("DELETE FROM ideas WHERE club_id = ?", clubID).Error
}
