package auth

import (
	"time"
)

// Role names. There is no roles table; the role travels as a plain string on
// the user record and in token claims.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// DefaultProfileImage is applied when registration supplies no image.
const DefaultProfileImage = "/assets/images/default-profile.png"

// User is the identity record. Identifiers are short opaque strings generated
// at registration. Passwords are stored only as bcrypt hashes.
type User struct {
	ID           string `gorm:"primaryKey;size:12" json:"id"`
	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'student'" json:"role"`
	Department   string `gorm:"size:100" json:"department"`
	Year         string `gorm:"size:20" json:"year"`
	ProfileImage string `gorm:"size:512" json:"profileImage"`
	Bio          string `gorm:"size:250" json:"bio"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}
