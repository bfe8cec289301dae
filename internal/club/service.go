package club

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/auditlog"
	"github.com/svitclubs/club-management-backend/internal/notification"
	"github.com/svitclubs/club-management-backend/utils"
)

// ============================
// Club Service
// ============================
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
	Activity notification.Publisher
	// Cascade controls whether deleting a club also removes its events
	// and ideas. Off by default: orphaned records keep their club_id and
	// are filtered out of club-scoped listings.
	Cascade bool
}

func NewService(repo *Repository, auditSvc auditlog.Service, activity notification.Publisher, cascade bool) *Service {
	return &Service{Repo: repo, AuditSvc: auditSvc, Activity: activity, Cascade: cascade}
}

type CreateInput struct {
	Name        string
	Description string
	Category    string
	Logo        string
	President   string
	Faculty     string
}

func (s *Service) Create(ctx context.Context, in CreateInput, actorID, ip string) (*Club, error) {
	c := &Club{
		ID:          utils.GenerateID(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Logo:        in.Logo,
		Members:     1,
		President:   in.President,
		Faculty:     in.Faculty,
		CreatedDate: time.Now().Format("2006-01-02"),
	}
	if c.Logo == "" {
		c.Logo = DefaultLogo
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, apperror.Storage(err)
	}
	c.EventIDs = []string{}
	c.IdeaIDs = []string{}

	s.audit(ctx, actorID, c.ID, "CLUB_CREATED", map[string]interface{}{"name": c.Name}, ip)
	s.publish(ctx, notification.Activity{
		Kind:     "club",
		Action:   "created",
		TargetID: c.ID,
		Title:    "New club registered",
		Message:  "Club \"" + c.Name + "\" was registered",
		ActorID:  actorID,
	})
	return c, nil
}

func (s *Service) GetByID(id string) (*Club, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, apperror.Wrap(err, "club not found")
	}
	if err := s.attachChildren(c); err != nil {
		return nil, apperror.Storage(err)
	}
	return c, nil
}

// List returns all clubs, optionally narrowed by a case-insensitive search
// term over name/description/category and ordered by the given key.
func (s *Service) List(search, sortBy, order string) ([]Club, error) {
	clubs, err := s.Repo.ListAll()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	clubs = utils.FilterBySearch(clubs, search, func(c Club) []string {
		return []string{c.Name, c.Description, c.Category}
	})

	ascending := order != "desc"
	switch sortBy {
	case "name":
		clubs = utils.SortByKey(clubs, func(a, b Club) bool { return a.Name < b.Name }, ascending)
	case "members":
		clubs = utils.SortByKey(clubs, func(a, b Club) bool { return a.Members < b.Members }, ascending)
	case "createdAt":
		clubs = utils.SortByKey(clubs, func(a, b Club) bool { return a.CreatedAt.Before(b.CreatedAt) }, ascending)
	case "":
		// keep insertion order
	default:
		return nil, apperror.Validation("unknown sort key: " + sortBy)
	}

	for i := range clubs {
		if err := s.attachChildren(&clubs[i]); err != nil {
			return nil, apperror.Storage(err)
		}
	}
	if clubs == nil {
		clubs = []Club{}
	}
	return clubs, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateClubRequest, actorID, ip string) (*Club, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, apperror.Wrap(err, "club not found")
	}
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		c.Category = *req.Category
	}
	if req.Logo != nil {
		c.Logo = *req.Logo
	}
	if req.President != nil {
		c.President = *req.President
	}
	if req.Faculty != nil {
		c.Faculty = *req.Faculty
	}
	if err := s.Repo.Update(c); err != nil {
		return nil, apperror.Storage(err)
	}
	if err := s.attachChildren(c); err != nil {
		return nil, apperror.Storage(err)
	}
	s.audit(ctx, actorID, c.ID, "CLUB_UPDATED", map[string]interface{}{"name": c.Name}, ip)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID, ip string) error {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return apperror.Wrap(err, "club not found")
	}
	if s.Cascade {
		if err := s.Repo.DeleteChildren(id); err != nil {
			return apperror.Storage(err)
		}
	}
	if err := s.Repo.Delete(id); err != nil {
		return apperror.Storage(err)
	}
	s.audit(ctx, actorID, id, "CLUB_DELETED", map[string]interface{}{"name": c.Name, "cascade": s.Cascade}, ip)
	return nil
}

// Join increments the member count by one.
func (s *Service) Join(ctx context.Context, id, actorID, ip string) (*Club, error) {
	if err := s.Repo.AdjustMembers(id, 1); err != nil {
		return nil, apperror.Wrap(err, "club not found")
	}
	s.audit(ctx, actorID, id, "CLUB_JOINED", nil, ip)
	return s.GetByID(id)
}

// Leave decrements the member count; the count is clamped at 1.
func (s *Service) Leave(ctx context.Context, id, actorID, ip string) (*Club, error) {
	if err := s.Repo.AdjustMembers(id, -1); err != nil {
		return nil, apperror.Wrap(err, "club not found")
	}
	s.audit(ctx, actorID, id, "CLUB_LEFT", nil, ip)
	return s.GetByID(id)
}

func (s *Service) attachChildren(c *Club) error {
	events, err := s.Repo.ChildEventIDs(c.ID)
	if err != nil {
		return err
	}
	ideas, err := s.Repo.ChildIdeaIDs(c.ID)
	if err != nil {
		return err
	}
	if events == nil {
		events = []string{}
	}
	if ideas == nil {
		ideas = []string{}
	}
	c.EventIDs = events
	c.IdeaIDs = ideas
	return nil
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
