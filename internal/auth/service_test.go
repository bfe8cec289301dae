package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/config"
	"github.com/svitclubs/club-management-backend/internal/apperror"
)

// fakeSessions is an in-memory stand-in for the redis session store.
type fakeSessions struct {
	data map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: map[string]string{}}
}

func (f *fakeSessions) Set(key, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeSessions) Get(key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (f *fakeSessions) Delete(key string) error {
	delete(f.data, key)
	return nil
}

func newTestService(t *testing.T) (Service, *fakeSessions) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	cfg := &config.Config{
		JWTAccessSecret:    "access-secret",
		JWTRefreshSecret:   "refresh-secret",
		JWTAccessTTLHours:  1,
		JWTRefreshTTLHours: 168,
	}
	sessions := newFakeSessions()
	return NewService(NewRepository(db), sessions, cfg), sessions
}

func register(t *testing.T, svc Service) *User {
	t.Helper()
	u, err := svc.Register(RegisterInput{
		Name:       "Ravi Kumar",
		Email:      "ravi@svit.edu",
		Password:   "secret123",
		Department: "CSE",
		Year:       "3",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterDefaultsAndHashing(t *testing.T) {
	svc, _ := newTestService(t)
	u := register(t, svc)

	assert.Len(t, u.ID, 9)
	assert.Equal(t, RoleStudent, u.Role)
	assert.Equal(t, DefaultProfileImage, u.ProfileImage)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc)

	_, err := svc.Register(RegisterInput{Name: "Other", Email: "RAVI@svit.edu", Password: "different"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeDuplicateEmail, appErr.Code)

	// the stored record is untouched, so the original password still works
	_, loggedIn, err := svc.Login(LoginInput{Email: "ravi@svit.edu", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", loggedIn.Name)
}

func TestLoginAndRefreshFlow(t *testing.T) {
	svc, _ := newTestService(t)
	u := register(t, svc)

	pair, loggedIn, err := svc.Login(LoginInput{Email: "ravi@svit.edu", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, loggedIn.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	access, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc)

	_, _, err := svc.Login(LoginInput{Email: "ravi@svit.edu", Password: "wrong"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidCredentials, appErr.Code)

	_, _, err = svc.Login(LoginInput{Email: "nobody@svit.edu", Password: "secret123"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidCredentials, appErr.Code)
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	svc, _ := newTestService(t)
	u := register(t, svc)

	pair, _, err := svc.Login(LoginInput{Email: "ravi@svit.edu", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(u.ID))

	_, err = svc.Refresh(pair.RefreshToken)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidCredentials, appErr.Code)

	_, err = svc.CurrentSession(u.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestSecondLoginReplacesSession(t *testing.T) {
	svc, sessions := newTestService(t)
	u := register(t, svc)

	first, _, err := svc.Login(LoginInput{Email: "ravi@svit.edu", Password: "secret123"})
	require.NoError(t, err)
	second, _, err := svc.Login(LoginInput{Email: "ravi@svit.edu", Password: "secret123"})
	require.NoError(t, err)

	stored := sessions.data["session:"+u.ID]
	assert.Equal(t, second.RefreshToken, stored)

	if first.RefreshToken != second.RefreshToken {
		_, err = svc.Refresh(first.RefreshToken)
		assert.Error(t, err)
	}
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService(t)
	u := register(t, svc)

	bio := "Robotics enthusiast."
	got, err := svc.UpdateProfile(u.ID, ProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, got.Bio)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.Department, got.Department)
}
