package idea

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/auditlog"
	"github.com/svitclubs/club-management-backend/internal/notification"
	"github.com/svitclubs/club-management-backend/utils"
)

// VoteRegistry tracks which users voted on which ideas. Backed by a Redis
// set in production; only consulted when duplicate-vote prevention is
// switched on.
type VoteRegistry interface {
	Register(ideaID, userID string) (bool, error)
}

// ============================
// Idea Service
// ============================
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
	Activity notification.Publisher
	Votes    VoteRegistry
	// DedupeVotes rejects a second vote from the same user on the same
	// idea. Off by default: any caller may vote repeatedly.
	DedupeVotes bool
}

func NewService(repo *Repository, auditSvc auditlog.Service, activity notification.Publisher, votes VoteRegistry, dedupe bool) *Service {
	return &Service{Repo: repo, AuditSvc: auditSvc, Activity: activity, Votes: votes, DedupeVotes: dedupe}
}

type CreateInput struct {
	Title       string
	Description string
	Creator     string
	ClubID      string
	Tags        []string
}

func (s *Service) Create(ctx context.Context, in CreateInput, actorID, ip string) (*Idea, error) {
	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	i := &Idea{
		ID:          utils.GenerateID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Creator:     in.Creator,
		Status:      StatusProposed,
		Votes:       0,
		CreatedDate: time.Now().Format("2006-01-02"),
		Tags:        tags,
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
		i.ClubID = &clubID
	}
	if err := s.Repo.Create(i); err != nil {
		return nil, apperror.Storage(err)
	}

	s.audit(ctx, actorID, i.ID, "IDEA_CREATED", map[string]interface{}{"title": i.Title}, ip)
	s.publish(ctx, notification.Activity{
		Kind:     "idea",
		Action:   "created",
		TargetID: i.ID,
		Title:    "New idea proposed",
		Message:  "Idea \"" + i.Title + "\" was proposed by " + i.Creator,
		ActorID:  actorID,
	})
	return i, nil
}

func (s *Service) GetByID(id string) (*Idea, error) {
	i, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, apperror.Wrap(err, "idea not found")
	}
	return i, nil
}

// List returns ideas filtered by search term and status, sorted by the
// given key.
func (s *Service) List(search, status, sortBy, order string) ([]Idea, error) {
	if status != "" && !ValidStatus(status) {
		return nil, apperror.Validation("unknown idea status: " + status)
	}
	ideas, err := s.Repo.ListAll()
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if status != "" {
		filtered := ideas[:0:0]
		for _, i := range ideas {
			if i.Status == status {
				filtered = append(filtered, i)
			}
		}
		ideas = filtered
	}
	ideas = utils.FilterBySearch(ideas, search, func(i Idea) []string {
		return []string{i.Title, i.Description, i.Creator}
	})

	ascending := order != "desc"
	switch sortBy {
	case "votes":
		ideas = utils.SortByKey(ideas, func(a, b Idea) bool { return a.Votes < b.Votes }, ascending)
	case "title":
		ideas = utils.SortByKey(ideas, func(a, b Idea) bool { return a.Title < b.Title }, ascending)
	case "createdAt":
		ideas = utils.SortByKey(ideas, func(a, b Idea) bool { return a.CreatedAt.Before(b.CreatedAt) }, ascending)
	case "":
	default:
		return nil, apperror.Validation("unknown sort key: " + sortBy)
	}
	if ideas == nil {
		ideas = []Idea{}
	}
	return ideas, nil
}

// Top returns all ideas ordered by vote count, highest first.
func (s *Service) Top() ([]Idea, error) {
	return s.List("", "", "votes", "desc")
}

// ListByClub returns a club's ideas in creation order.
func (s *Service) ListByClub(clubID string) ([]Idea, error) {
	ideas, err := s.Repo.ListByClub(clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if ideas == nil {
		ideas = []Idea{}
	}
	return ideas, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateIdeaRequest, actorID, ip string) (*Idea, error) {
	i, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, apperror.Wrap(err, "idea not found")
	}
	if req.Title != nil {
		i.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		i.Description = strings.TrimSpace(*req.Description)
	}
	if req.Creator != nil {
		i.Creator = *req.Creator
	}
	if req.Tags != nil {
		tags, err := normalizeTags(*req.Tags)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		i.Tags = tags
	}
	if err := s.Repo.Update(i); err != nil {
		return nil, apperror.Storage(err)
	}
	s.audit(ctx, actorID, i.ID, "IDEA_UPDATED", map[string]interface{}{"title": i.Title}, ip)
	return i, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID, ip string) error {
	if err := s.Repo.Delete(id); err != nil {
		return apperror.Wrap(err, "idea not found")
	}
	s.audit(ctx, actorID, id, "IDEA_DELETED", nil, ip)
	return nil
}

// Vote adds one vote to the idea. With duplicate prevention enabled a
// second vote from the same user is rejected with a validation error.
func (s *Service) Vote(ctx context.Context, id, actorID, ip string) (*Idea, error) {
	if s.DedupeVotes && s.Votes != nil && actorID != "" {
		fresh, err := s.Votes.Register(id, actorID)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		if !fresh {
			return nil, apperror.Validation("you have already voted for this idea")
		}
	}
	if err := s.Repo.IncrementVotes(id); err != nil {
		return nil, apperror.Wrap(err, "idea not found")
	}
	s.audit(ctx, actorID, id, "IDEA_VOTED", nil, ip)
	return s.GetByID(id)
}

// SetStatus moves the idea to the given status. Membership in the status
// enum is the only check; any status may follow any other.
func (s *Service) SetStatus(ctx context.Context, id, status, actorID, ip string) (*Idea, error) {
	if !ValidStatus(status) {
		return nil, apperror.Validation("unknown idea status: " + status)
	}
	if err := s.Repo.SetStatus(id, status); err != nil {
		return nil, apperror.Wrap(err, "idea not found")
	}
	i, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, actorID, id, "IDEA_STATUS_CHANGED", map[string]interface{}{"status": status}, ip)
	s.publish(ctx, notification.Activity{
		Kind:     "idea",
		Action:   "status_changed",
		TargetID: id,
		Title:    "Idea status updated",
		Message:  "Idea \"" + i.Title + "\" is now " + status,
		ActorID:  actorID,
	})
	return i, nil
}

// normalizeTags lowercases, trims and de-duplicates tags, keeping first
// occurrence order, then encodes them for the JSON column.
func normalizeTags(tags []string) (datatypes.JSON, error) {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
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
