package notification

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/auth"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auth.User{}, &InAppNotification{}))
	return NewService(NewRepository(db), auth.NewRepository(db)), db
}

func seedUsers(t *testing.T, db *gorm.DB) {
	t.Helper()
	users := []auth.User{
		{ID: "admin1", Name: "Admin", Email: "admin@svit.edu", PasswordHash: "x", Role: auth.RoleAdmin},
		{ID: "faculty1", Name: "Faculty", Email: "faculty@svit.edu", PasswordHash: "x", Role: auth.RoleFaculty},
		{ID: "student1", Name: "Student", Email: "student@svit.edu", PasswordHash: "x", Role: auth.RoleStudent},
	}
	require.NoError(t, db.Create(&users).Error)
}

func TestRecordActivityFansOutToStaff(t *testing.T) {
	svc, db := newTestService(t)
	seedUsers(t, db)
	ctx := context.Background()

	err := svc.RecordActivity(ctx, Activity{
		Kind:     "idea",
		Action:   "created",
		TargetID: "i1",
		Title:    "New idea proposed",
		Message:  "Idea \"Smart Campus App\" was proposed",
		ActorID:  "student1",
	})
	require.NoError(t, err)

	adminFeed, err := svc.ListInAppByUser(ctx, "admin1", 0)
	require.NoError(t, err)
	require.Len(t, adminFeed, 1)
	assert.Equal(t, "idea", adminFeed[0].Category)
	assert.False(t, adminFeed[0].IsRead)

	facultyFeed, err := svc.ListInAppByUser(ctx, "faculty1", 0)
	require.NoError(t, err)
	assert.Len(t, facultyFeed, 1)

	// students do not receive the staff feed
	studentFeed, err := svc.ListInAppByUser(ctx, "student1", 0)
	require.NoError(t, err)
	assert.Empty(t, studentFeed)
}

func TestRecordActivitySkipsActor(t *testing.T) {
	svc, db := newTestService(t)
	seedUsers(t, db)
	ctx := context.Background()

	err := svc.RecordActivity(ctx, Activity{
		Kind: "club", Action: "created", TargetID: "c1",
		Title: "New club registered", Message: "m", ActorID: "admin1",
	})
	require.NoError(t, err)

	adminFeed, err := svc.ListInAppByUser(ctx, "admin1", 0)
	require.NoError(t, err)
	assert.Empty(t, adminFeed)

	facultyFeed, err := svc.ListInAppByUser(ctx, "faculty1", 0)
	require.NoError(t, err)
	assert.Len(t, facultyFeed, 1)
}

func TestMarkInAppAsRead(t *testing.T) {
	svc, db := newTestService(t)
	seedUsers(t, db)
	ctx := context.Background()

	require.NoError(t, svc.RecordActivity(ctx, Activity{
		Kind: "event", Action: "created", TargetID: "e1",
		Title: "New event scheduled", Message: "m", ActorID: "student1",
	}))

	feed, err := svc.ListInAppByUser(ctx, "admin1", 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, svc.MarkInAppAsRead(ctx, feed[0].ID, "admin1"))

	feed, err = svc.ListInAppByUser(ctx, "admin1", 0)
	require.NoError(t, err)
	assert.True(t, feed[0].IsRead)

	// someone else's notification reads as absent
	err = svc.MarkInAppAsRead(ctx, feed[0].ID, "faculty1")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}
