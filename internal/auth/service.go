package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/config"
	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/utils"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SessionStore keeps the single "logged in" record per user. Backed by redis
// in production; tests substitute an in-memory map.
type SessionStore interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

type Service interface {
	Register(input RegisterInput) (*User, error)
	Login(input LoginInput) (*TokenPair, *User, error)
	Refresh(refreshToken string) (string, error)
	Logout(userID string) error
	GetUserByID(userID string) (*User, error)
	CurrentSession(userID string) (*User, error)
	UpdateProfile(userID string, input ProfileInput) (*User, error)
}

type service struct {
	repo          Repository
	sessions      SessionStore
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(r Repository, sessions SessionStore, cfg *config.Config) Service {
	return &service{
		repo:          r,
		sessions:      sessions,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHours) * time.Hour,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
	Year       string
	Bio        string
}

func (s *service) Register(in RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if exists {
		// The stored record stays untouched.
		return nil, apperror.DuplicateEmail()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           utils.GenerateID(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleStudent,
		Department:   in.Department,
		Year:         in.Year,
		ProfileImage: DefaultProfileImage,
		Bio:          in.Bio,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, apperror.Storage(err)
	}

	return user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(in LoginInput) (*TokenPair, *User, error) {
	user, err := s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperror.InvalidCredentials()
		}
		return nil, nil, apperror.Storage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, apperror.InvalidCredentials()
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, nil, err
	}

	// The session record: one "logged in" entry per user, independent of the
	// club/event/idea data. A second login replaces it.
	if err := s.sessions.Set(sessionKey(user.ID), refreshToken, s.refreshTTL); err != nil {
		return nil, nil, apperror.Storage(err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) generateRefreshToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.refreshSecret))
}

// =============================
// Refresh
// =============================

func (s *service) Refresh(refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperror.InvalidCredentials()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.InvalidCredentials()
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", apperror.InvalidCredentials()
	}

	// A refresh token is only honored while its session record is live.
	stored, err := s.sessions.Get(sessionKey(userID))
	if err != nil || stored != refreshToken {
		return "", apperror.InvalidCredentials()
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return "", apperror.Wrap(err, "user not found")
	}

	return s.generateAccessToken(user)
}

// =============================
// Logout / current session
// =============================

func (s *service) Logout(userID string) error {
	return s.sessions.Delete(sessionKey(userID))
}

func (s *service) GetUserByID(userID string) (*User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, apperror.Wrap(err, "user not found")
	}
	return user, nil
}

// CurrentSession returns the active user record, or NotFound when the
// session record is gone (logged out or expired).
func (s *service) CurrentSession(userID string) (*User, error) {
	if _, err := s.sessions.Get(sessionKey(userID)); err != nil {
		return nil, apperror.NotFound("no active session")
	}
	return s.GetUserByID(userID)
}

// =============================
// Profile
// =============================

type ProfileInput struct {
	Name         *string
	Department   *string
	Year         *string
	Bio          *string
	ProfileImage *string
}

func (s *service) UpdateProfile(userID string, in ProfileInput) (*User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, apperror.Wrap(err, "user not found")
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.Year != nil {
		user.Year = *in.Year
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}

	if err := s.repo.Update(user); err != nil {
		return nil, apperror.Storage(err)
	}
	return user, nil
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}
