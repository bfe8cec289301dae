package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(userID string) (*User, error)
	EmailExists(email string) (bool, error)
	Update(user *User) error
	ListByRoles(roles []string) ([]User, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create a new user
func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

// Find user by email (used at login)
func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(userID string) (*User, error) {
	var u User
	err := r.db.First(&u, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}

// ListByRoles returns the users holding any of the given roles. Used by the
// notification fan-out.
func (r *repository) ListByRoles(roles []string) ([]User, error) {
	var users []User
	err := r.db.Where("role IN ?", roles).Find(&users).Error
	return users, err
}
