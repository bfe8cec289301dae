package auditlog

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&AuditLog{}))
	return NewService(NewRepository(db))
}

func TestLogActionAndFetch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	actor := "u1"
	target := "c1"
	err := svc.LogAction(ctx, &actor, &target, "CLUB_CREATED",
		map[string]interface{}{"name": "Robotics Club"}, "10.0.0.1", "SUCCESS")
	require.NoError(t, err)

	// nil details are stored as an empty object, not NULL
	require.NoError(t, svc.LogAction(ctx, nil, nil, "REQUEST_REJECTED", nil, "10.0.0.2", "FAILURE"))

	page, err := svc.GetAuditLogs(ctx, AuditLogFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)

	entry, err := svc.GetAuditLogByID(ctx, page.Data[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Action)
}

func TestGetAuditLogsFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	actor := "u1"
	other := "u2"
	require.NoError(t, svc.LogAction(ctx, &actor, nil, "CLUB_CREATED", nil, "ip", "SUCCESS"))
	require.NoError(t, svc.LogAction(ctx, &actor, nil, "IDEA_VOTED", nil, "ip", "SUCCESS"))
	require.NoError(t, svc.LogAction(ctx, &other, nil, "CLUB_DELETED", nil, "ip", "FAILURE"))

	page, err := svc.GetAuditLogs(ctx, AuditLogFilter{UserID: &actor})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = svc.GetAuditLogs(ctx, AuditLogFilter{Action: "club"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = svc.GetAuditLogs(ctx, AuditLogFilter{Status: "FAILURE"})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	assert.Equal(t, "CLUB_DELETED", page.Data[0].Action)
}

func TestGetAuditLogsPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.LogAction(ctx, nil, nil, "EVENT_ATTENDED", nil, "ip", "SUCCESS"))
	}

	page, err := svc.GetAuditLogs(ctx, AuditLogFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.TotalPages)
}
