package reports

import (
	"context"
	"log"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/auditlog"
	"github.com/svitclubs/club-management-backend/internal/event"
	"github.com/svitclubs/club-management-backend/internal/idea"
)

// Service resolves a report request into an exported document.
type Service interface {
	Generate(ctx context.Context, req ReportRequest, actorID, ip string) ([]byte, string, string, error)
}

type service struct {
	repo     *Repository
	exporter ReportExporter
	auditSvc auditlog.Service
}

func NewService(repo *Repository, exporter ReportExporter, auditSvc auditlog.Service) Service {
	return &service{repo: repo, exporter: exporter, auditSvc: auditSvc}
}

// Generate returns the exported document bytes, its filename and MIME type.
func (s *service) Generate(ctx context.Context, req ReportRequest, actorID, ip string) ([]byte, string, string, error) {
	if !ValidReportType(req.Type) {
		return nil, "", "", apperror.Validation("unknown report type: " + req.Type)
	}
	if req.Format == "" {
		req.Format = FormatCSV
	}
	if req.Format == "xlsx" {
		req.Format = FormatExcel
	}
	if !ValidFormat(req.Format) {
		return nil, "", "", apperror.Validation("unknown report format: " + req.Format)
	}
	if req.Status != "" {
		switch req.Type {
		case ReportTypeEvents:
			if !event.ValidStatus(req.Status) {
				return nil, "", "", apperror.Validation("unknown event status: " + req.Status)
			}
		case ReportTypeIdeas:
			if !idea.ValidStatus(req.Status) {
				return nil, "", "", apperror.Validation("unknown idea status: " + req.Status)
			}
		}
	}

	start, end, err := GetDateRange(req.DateRange, req.StartDate, req.EndDate)
	if err != nil {
		return nil, "", "", apperror.Validation(err.Error())
	}

	var data ReportData
	switch req.Type {
	case ReportTypeClubs:
		data.Clubs, err = s.repo.Clubs(start, end)
	case ReportTypeEvents:
		data.Events, err = s.repo.Events(start, end, req.Status, req.ClubID)
	case ReportTypeIdeas:
		data.Ideas, err = s.repo.Ideas(start, end, req.Status, req.ClubID)
	}
	if err != nil {
		return nil, "", "", apperror.Storage(err)
	}

	doc, filename, mime, err := s.exporter.Export(req.Type, req.Format, data)
	if err != nil {
		return nil, "", "", apperror.Storage(err)
	}

	if s.auditSvc != nil {
		var actor *string
		if actorID != "" {
			actor = &actorID
		}
		details := map[string]interface{}{"type": req.Type, "format": req.Format}
		if err := s.auditSvc.LogAction(ctx, actor, nil, "REPORT_GENERATED", details, ip, "SUCCESS"); err != nil {
			log.Printf("⚠️ Failed to write audit log for REPORT_GENERATED: %v", err)
		}
	}
	return doc, filename, mime, nil
}
