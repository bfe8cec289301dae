package event

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/club"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Event{}, &club.Club{}))
	return NewService(NewRepository(db), nil, nil), db
}

func createEvent(t *testing.T, svc *Service, in CreateInput) *Event {
	t.Helper()
	if in.Name == "" {
		in.Name = "Demo Day"
	}
	if in.Description == "" {
		in.Description = "A showcase of everything built this semester."
	}
	if in.Date == "" {
		in.Date = "2025-06-01"
	}
	if in.Venue == "" {
		in.Venue = "Hall A"
	}
	e, err := svc.Create(context.Background(), in, "u1", "127.0.0.1")
	require.NoError(t, err)
	return e
}

func TestCreateEventDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	e := createEvent(t, svc, CreateInput{Time: "10:00"})

	assert.Len(t, e.ID, 9)
	assert.Equal(t, 0, e.Attendees)
	assert.Equal(t, StatusUpcoming, e.Status)
	assert.Equal(t, DefaultImage, e.Image)
	assert.Nil(t, e.ClubID)
}

func TestCreateEventChecksClubReference(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Demo Day", Description: "A showcase of everything built this semester.",
		Date: "2025-06-01", Venue: "Hall A", ClubID: "missing",
	}, "u1", "127.0.0.1")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)

	c := club.Club{ID: "c1", Name: "Robotics Club", Description: "x", Category: "Technology", Members: 1, CreatedDate: "2023-03-05"}
	require.NoError(t, db.Create(&c).Error)

	e := createEvent(t, svc, CreateInput{ClubID: "c1"})
	require.NotNil(t, e.ClubID)
	assert.Equal(t, "c1", *e.ClubID)
}

func TestAttendAndCancelClampAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	e := createEvent(t, svc, CreateInput{})
	ctx := context.Background()

	got, err := svc.Attend(ctx, e.ID, "u1", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Attendees)

	got, err = svc.CancelAttendance(ctx, e.ID, "u1", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Attendees)

	// cancelling with nobody attending stays at zero
	got, err = svc.CancelAttendance(ctx, e.ID, "u1", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Attendees)
}

func TestAdjustAttendeesClampsLargeNegativeDelta(t *testing.T) {
	svc, _ := newTestService(t)
	e := createEvent(t, svc, CreateInput{})

	require.NoError(t, svc.Repo.AdjustAttendees(e.ID, 3))
	require.NoError(t, svc.Repo.AdjustAttendees(e.ID, -10))

	got, err := svc.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Attendees)
}

func TestUpcomingView(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	late := createEvent(t, svc, CreateInput{Name: "Later Workshop", Date: "2025-09-01"})
	early := createEvent(t, svc, CreateInput{Name: "Earlier Workshop", Date: "2025-03-01"})
	done := createEvent(t, svc, CreateInput{Name: "Old Workshop", Date: "2023-05-10"})

	completed := StatusCompleted
	_, err := svc.Update(ctx, done.ID, UpdateEventRequest{Status: &completed}, "u1", "127.0.0.1")
	require.NoError(t, err)

	got, err := svc.Upcoming()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestUpdateEventRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)
	e := createEvent(t, svc, CreateInput{})

	bad := "postponed"
	_, err := svc.Update(context.Background(), e.ID, UpdateEventRequest{Status: &bad}, "u1", "127.0.0.1")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)
}

func TestListFiltersByStatusAndSearch(t *testing.T) {
	svc, _ := newTestService(t)
	createEvent(t, svc, CreateInput{Name: "Hackathon 2025", Date: "2025-02-15"})
	createEvent(t, svc, CreateInput{Name: "Startup Pitch Day", Date: "2025-03-20"})

	got, err := svc.List("hackathon", "", "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hackathon 2025", got[0].Name)

	got, err = svc.List("", StatusCancelled, "", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.List("", "bogus", "", "")
	assert.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	svc, _ := newTestService(t)
	e := createEvent(t, svc, CreateInput{})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, e.ID, "u1", "127.0.0.1"))

	err := svc.Delete(ctx, e.ID, "u1", "127.0.0.1")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}
