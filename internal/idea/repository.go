package idea

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(i *Idea) error {
	return r.DB.Create(i).Error
}

func (r *Repository) GetByID(id string) (*Idea, error) {
	var i Idea
	if err := r.DB.First(&i, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *Repository) ListAll() ([]Idea, error) {
	var ideas []Idea
	if err := r.DB.Order("created_at ASC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *Repository) ListByClub(clubID string) ([]Idea, error) {
	var ideas []Idea
	if err := r.DB.Where("club_id = ?", clubID).Order("created_at ASC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *Repository) Update(i *Idea) error {
	return r.DB.Save(i).Error
}

func (r *Repository) Delete(id string) error {
	res := r.DB.Delete(&Idea{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementVotes adds exactly one vote in a single UPDATE.
func (r *Repository) IncrementVotes(id string) error {
	res := r.DB.Model(&Idea{}).Where("id = ?", id).
		Update("votes", gorm.Expr("votes + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) SetStatus(id, status string) error {
	res := r.DB.Model(&Idea{}).Where("id = ?", id).Update("status", status)
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
