package reports

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&club.Club{}, &event.Event{}, &idea.Idea{}))
	return NewService(NewRepository(db), NewReportExporter(), nil), db
}

func TestGenerateClubsCSV(t *testing.T) {
	svc, db := newTestService(t)
	c := club.Club{ID: "c1", Name: "Robotics Club", Description: "x", Category: "Technology",
		Members: 12, President: "Kiran Patel", Faculty: "Dr. Verma", CreatedDate: "2023-03-05"}
	require.NoError(t, db.Create(&c).Error)

	doc, filename, mime, err := svc.Generate(context.Background(), ReportRequest{
		Type: ReportTypeClubs, Format: FormatCSV,
	}, "admin1", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", mime)
	assert.True(t, strings.HasPrefix(filename, "clubs_report_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(doc))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Name", records[0][1])
	assert.Equal(t, "Robotics Club", records[1][1])
	assert.Equal(t, "12", records[1][3])
}

func TestGenerateIdeasCSVIncludesTags(t *testing.T) {
	svc, db := newTestService(t)
	i := idea.Idea{ID: "i1", Title: "Smart Campus App", Description: "x", Creator: "Suresh",
		Status: idea.StatusProposed, Votes: 5, CreatedDate: "2023-04-05",
		Tags: []byte(`["mobile","campus"]`)}
	require.NoError(t, db.Create(&i).Error)

	doc, _, _, err := svc.Generate(context.Background(), ReportRequest{
		Type: ReportTypeIdeas, Format: FormatCSV,
	}, "admin1", "127.0.0.1")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(doc))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "mobile, campus", records[1][6])
	// campus-wide ideas show a dash for the club column
	assert.Equal(t, "-", records[1][3])
}

func TestGenerateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var appErr *apperror.Error

	_, _, _, err := svc.Generate(ctx, ReportRequest{Type: "members"}, "admin1", "127.0.0.1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)

	_, _, _, err = svc.Generate(ctx, ReportRequest{Type: ReportTypeClubs, Format: "docx"}, "admin1", "127.0.0.1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)

	_, _, _, err = svc.Generate(ctx, ReportRequest{Type: ReportTypeEvents, Status: "postponed"}, "admin1", "127.0.0.1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)

	_, _, _, err = svc.Generate(ctx, ReportRequest{Type: ReportTypeClubs, DateRange: DateRangeCustom}, "admin1", "127.0.0.1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)
}

func TestGenerateExcelAndPDFProduceDocuments(t *testing.T) {
	svc, db := newTestService(t)
	e := event.Event{ID: "e1", Name: "Hackathon", Description: "x", Date: "2025-02-15",
		Time: "09:00", Venue: "Main Auditorium", Attendees: 120, Status: event.StatusUpcoming}
	require.NoError(t, db.Create(&e).Error)
	ctx := context.Background()

	doc, filename, mime, err := svc.Generate(ctx, ReportRequest{Type: ReportTypeEvents, Format: FormatExcel}, "admin1", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.Contains(t, mime, "spreadsheet")

	doc, filename, mime, err = svc.Generate(ctx, ReportRequest{Type: ReportTypeEvents, Format: FormatPDF}, "admin1", "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Equal(t, "application/pdf", mime)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF"))
}

func TestGetDateRange(t *testing.T) {
	t.Run("all means no window", func(t *testing.T) {
		start, end, err := GetDateRange(DateRangeAll, "", "")
		require.NoError(t, err)
		assert.True(t, start.IsZero())
		assert.True(t, end.IsZero())
	})

	t.Run("custom window", func(t *testing.T) {
		start, end, err := GetDateRange(DateRangeCustom, "2025-01-01", "2025-01-31")
		require.NoError(t, err)
		assert.Equal(t, 2025, start.Year())
		assert.True(t, end.After(start))
	})

	t.Run("custom rejects reversed window", func(t *testing.T) {
		_, _, err := GetDateRange(DateRangeCustom, "2025-02-01", "2025-01-01")
		assert.Error(t, err)
	})

	t.Run("daily covers today", func(t *testing.T) {
		start, end, err := GetDateRange(DateRangeDaily, "", "")
		require.NoError(t, err)
		now := time.Now()
		assert.False(t, now.Before(start))
		assert.False(t, now.After(end))
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, _, err := GetDateRange("fortnightly", "", "")
		assert.Error(t, err)
	})
}
