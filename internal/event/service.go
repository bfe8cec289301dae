package event

import (
	"context"
	"log"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/auditlog"
	"github.com/svitclubs/club-management-backend/internal/notification"
	"github.com/svitclubs/club-management-backend/utils"
)

// ============================
// Event Service
// ============================
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
	Activity notification.Publisher
}

func NewService(repo *Repository, auditSvc auditlog.Service, activity notification.Publisher) *Service {
	return &Service{Repo: repo, AuditSvc: auditSvc, Activity: activity}
}

type CreateInput struct {
	Name        string
	Description string
	Date        string
	Time        string
	Venue       string
	ClubID      string
	Image       string
}

func (s *Service) Create(ctx context.Context, in CreateInput, actorID, ip string) (*Event, error) {
	e := &Event{
		ID:          utils.GenerateID(),
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Venue:       in.Venue,
		Attendees:   0,
		Status:      StatusUpcoming,
		Image:       in.Image,
	}
	if e.Image == "" {
		e.Image = DefaultImage
	}
	if in.ClubID != "" {
		ok, err := s.Repo.ClubExists(in.ClubID)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		if !ok {
			return nil, apperror.NotFound("club not found")
		}
		clubID := in.ClubID
		e.ClubID = &clubID
	}
	if err := s.Repo.Create(e); err != nil {
		return nil, apperror.Storage(err)
	}

	s.audit(ctx, actorID, e.ID, "EVENT_CREATED", map[string]interface{}{"name": e.Name, "date": e.Date}, ip)
	s.publish(ctx, notification.Activity{
		Kind:     "event",
		Action:   "created",
		TargetID: e.ID,
		Title:    "New event scheduled",
		Message:  "Event \"" + e.Name + "\" is scheduled for " + e.Date,
		ActorID:  actorID,
	})
	return e, nil
}

func (s *Service) GetByID(id string) (*Event, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, apperror.Wrap(err, "event not found")
	}
	return e, nil
}

// List returns events filtered by search term and status, sorted by the
// given key. The default ordering follows insertion order.
func (s *Service) List(search, status, sortBy, order string) ([]Event, error) {
	if status != "" && !ValidStatus(status) {
		return nil, apperror.Validation("unknown event status: " + status)
	}
	events, err := s.Repo.ListAll()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if status != "" {
		filtered := events[:0:0]
		for _, e := range events {
			if e.Status == status {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}
	events = utils.FilterBySearch(events, search, func(e Event) []string {
		return []string{e.Name, e.Description, e.Venue}
	})

	ascending := order != "desc"
	switch sortBy {
	case "date":
		events = utils.SortByKey(events, func(a, b Event) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			return a.Time < b.Time
		}, ascending)
	case "name":
		events = utils.SortByKey(events, func(a, b Event) bool { return a.Name < b.Name }, ascending)
	case "attendees":
		events = utils.SortByKey(events, func(a, b Event) bool { return a.Attendees < b.Attendees }, ascending)
	case "":
	default:
		return nil, apperror.Validation("unknown sort key: " + sortBy)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// ListByClub returns a club's events in creation order.
func (s *Service) ListByClub(clubID string) ([]Event, error) {
	events, err := s.Repo.ListByClub(clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// Upcoming returns events still in the upcoming state, soonest first.
func (s *Service) Upcoming() ([]Event, error) {
	return s.List("", StatusUpcoming, "date", "asc")
}

func (s *Service) Update(ctx context.Context, id string, req UpdateEventRequest, actorID, ip string) (*Event, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, apperror.Wrap(err, "event not found")
	}
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, apperror.Validation("unknown event status: " + *req.Status)
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.Time != nil {
		e.Time = *req.Time
	}
	if req.Venue != nil {
		e.Venue = *req.Venue
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.Image != nil {
		e.Image = *req.Image
	}
	if err := s.Repo.Update(e); err != nil {
		return nil, apperror.Storage(err)
	}
	s.audit(ctx, actorID, e.ID, "EVENT_UPDATED", map[string]interface{}{"name": e.Name}, ip)
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID, ip string) error {
	if err := s.Repo.Delete(id); err != nil {
		return apperror.Wrap(err, "event not found")
	}
	s.audit(ctx, actorID, id, "EVENT_DELETED", nil, ip)
	return nil
}

// Attend registers one more attendee for the event.
func (s *Service) Attend(ctx context.Context, id, actorID, ip string) (*Event, error) {
	if err := s.Repo.AdjustAttendees(id, 1); err != nil {
		return nil, apperror.Wrap(err, "event not found")
	}
	s.audit(ctx, actorID, id, "EVENT_ATTENDED", nil, ip)
	return s.GetByID(id)
}

// CancelAttendance withdraws one attendee; the counter never drops below 0.
func (s *Service) CancelAttendance(ctx context.Context, id, actorID, ip string) (*Event, error) {
	if err := s.Repo.AdjustAttendees(id, -1); err != nil {
		return nil, apperror.Wrap(err, "event not found")
	}
	s.audit(ctx, actorID, id, "EVENT_ATTENDANCE_CANCELLED", nil, ip)
	return s.GetByID(id)
}

func (s *Service) audit(ctx context.Context, actorID, targetID, action string, details map[string]interface{}, ip string) {
	if s.AuditSvc == nil {
		return
	}
	var actor, target *string
	if actorID != "" {
		actor = &actorID
	}
	if targetID != "" {
		target = &targetID
	}
	if err := s.AuditSvc.LogAction(ctx, actor, target, action, details, ip, "SUCCESS"); err != nil {
		log.Printf("⚠️ Failed to write audit log for %s: %v", action, err)
	}
}

func (s *Service) publish(ctx context.Context, a notification.Activity) {
	if s.Activity == nil {
		return
	}
	if err := s.Activity.PublishActivity(ctx, a); err != nil {
		log.Printf("⚠️ Failed to publish activity %s/%s: %v", a.Kind, a.Action, err)
	}
}
