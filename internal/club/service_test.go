package club

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Club{}, &event.Event{}, &idea.Idea{}))
	return db
}

func newTestService(t *testing.T, cascade bool) (*Service, *gorm.DB) {
	db := newTestDB(t)
	return NewService(NewRepository(db), nil, nil, cascade), db
}

func createClub(t *testing.T, svc *Service) *Club {
	t.Helper()
	c, err := svc.Create(context.Background(), CreateInput{
		Name:        "Tech Innovators",
		Description: "A club for students passionate about technology and innovation.",
		Category:    "Technology",
		President:   "Ravi Kumar",
		Faculty:     "Dr. Anand Sharma",
	}, "u1", "127.0.0.1")
	require.NoError(t, err)
	return c
}

func TestCreateClubDefaults(t *testing.T) {
	svc, _ := newTestService(t, false)
	c := createClub(t, svc)

	assert.Len(t, c.ID, 9)
	assert.Equal(t, 1, c.Members)
	assert.Equal(t, DefaultLogo, c.Logo)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, c.CreatedDate)
	assert.Empty(t, c.EventIDs)
	assert.Empty(t, c.IdeaIDs)
}

func TestClubChildListsFollowChildRecords(t *testing.T) {
	svc, db := newTestService(t, false)
	c := createClub(t, svc)

	e := event.Event{ID: "e1", Name: "Hackathon", Description: "x", Date: "2025-02-15", ClubID: &c.ID, Status: event.StatusUpcoming}
	i := idea.Idea{ID: "i1", Title: "Smart Campus App", Description: "x", Creator: "Suresh", ClubID: &c.ID, Status: idea.StatusProposed, CreatedDate: "2025-01-01", Tags: []byte(`[]`)}
	require.NoError(t, db.Create(&e).Error)
	require.NoError(t, db.Create(&i).Error)

	got, err := svc.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, got.EventIDs)
	assert.Equal(t, []string{"i1"}, got.IdeaIDs)

	// removing the child removes its id from the derived list
	require.NoError(t, db.Delete(&event.Event{}, "id = ?", "e1").Error)
	got, err = svc.GetByID(c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.EventIDs)
	assert.Equal(t, []string{"i1"}, got.IdeaIDs)
}

func TestJoinAndLeaveClampMembers(t *testing.T) {
	svc, _ := newTestService(t, false)
	c := createClub(t, svc)
	ctx := context.Background()

	got, err := svc.Join(ctx, c.ID, "u2", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Members)

	got, err = svc.Leave(ctx, c.ID, "u2", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Members)

	// leaving at the floor keeps the founder
	got, err = svc.Leave(ctx, c.ID, "u3", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Members)
}

func TestJoinUnknownClub(t *testing.T) {
	svc, _ := newTestService(t, false)
	_, err := svc.Join(context.Background(), "nope", "u1", "127.0.0.1")

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestListSearchAndSort(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	for _, in := range []CreateInput{
		{Name: "Robotics Club", Description: "Exploring the world of robotics through hands-on projects.", Category: "Technology", President: "p", Faculty: "f"},
		{Name: "Entrepreneurship Cell", Description: "We nurture and support student entrepreneurs on campus.", Category: "Business", President: "p", Faculty: "f"},
		{Name: "Tech Innovators", Description: "A club for students passionate about technology here.", Category: "Technology", President: "p", Faculty: "f"},
	} {
		_, err := svc.Create(ctx, in, "u1", "127.0.0.1")
		require.NoError(t, err)
	}

	got, err := svc.List("technology", "", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List("", "name", "asc")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Entrepreneurship Cell", got[0].Name)

	_, err = svc.List("", "bogus", "asc")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)
}

func TestUpdateClubPatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService(t, false)
	c := createClub(t, svc)

	name := "Tech Innovators SVIT"
	got, err := svc.Update(context.Background(), c.ID, UpdateClubRequest{Name: &name}, "u1", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, c.Description, got.Description)
	assert.Equal(t, c.Category, got.Category)
}

func TestDeleteClubLeavesChildrenByDefault(t *testing.T) {
	svc, db := newTestService(t, false)
	c := createClub(t, svc)
	e := event.Event{ID: "e1", Name: "Hackathon", Description: "x", Date: "2025-02-15", ClubID: &c.ID, Status: event.StatusUpcoming}
	require.NoError(t, db.Create(&e).Error)

	require.NoError(t, svc.Delete(context.Background(), c.ID, "u1", "127.0.0.1"))

	_, err := svc.GetByID(c.ID)
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&event.Event{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteClubCascades(t *testing.T) {
	svc, db := newTestService(t, true)
	c := createClub(t, svc)
	e := event.Event{ID: "e1", Name: "Hackathon", Description: "x", Date: "2025-02-15", ClubID: &c.ID, Status: event.StatusUpcoming}
	i := idea.Idea{ID: "i1", Title: "Smart Campus App", Description: "x", Creator: "Suresh", ClubID: &c.ID, Status: idea.StatusProposed, CreatedDate: "2025-01-01", Tags: []byte(`[]`)}
	require.NoError(t, db.Create(&e).Error)
	require.NoError(t, db.Create(&i).Error)

	require.NoError(t, svc.Delete(context.Background(), c.ID, "u1", "127.0.0.1"))

	var events, ideas int64
	require.NoError(t, db.Model(&event.Event{}).Count(&events).Error)
	require.NoError(t, db.Model(&idea.Idea{}).Count(&ideas).Error)
	assert.Zero(t, events)
	assert.Zero(t, ideas)
}
