package reports

import (
	"github.com/svitclubs/club-management-backend/internal/club"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
)

// Report types
const (
	ReportTypeClubs  = "clubs"
	ReportTypeEvents = "events"
	ReportTypeIdeas  = "ideas"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Date range presets
const (
	DateRangeDaily   = "daily"
	DateRangeWeekly  = "weekly"
	DateRangeMonthly = "monthly"
	DateRangeYearly  = "yearly"
	DateRangeCustom  = "custom"
	DateRangeAll     = "all"
)

// ReportRequest captures the query parameters of a report download.
type ReportRequest struct {
	Type      string
	Format    string
	DateRange string
	StartDate string
	EndDate   string
	Status    string
	ClubID    string
}

// ReportData is the resolved dataset handed to the exporter. Only the
// slice matching the requested type is populated.
type ReportData struct {
	Clubs  []club.Club
	Events []event.Event
	Ideas  []idea.Idea
}

func ValidReportType(t string) bool {
	return t == ReportTypeClubs || t == ReportTypeEvents || t == ReportTypeIdeas
}

func ValidFormat(f string) bool {
	return f == FormatCSV || f == FormatExcel || f == FormatPDF
}
