package notification

import (
	"context"

	"github.com/svitclubs/club-management-backend/internal/apperror"
	"github.com/svitclubs/club-management-backend/internal/auth"
)

// Roles whose users receive the in-app activity feed.
var feedRoles = []string{auth.RoleAdmin, auth.RoleFaculty}

type Service interface {
	RecordActivity(ctx context.Context, a Activity) error
	ListInAppByUser(ctx context.Context, userID string, limit int) ([]InAppNotification, error)
	MarkInAppAsRead(ctx context.Context, id uint, userID string) error
}

type service struct {
	repo     Repository
	authRepo auth.Repository
}

func NewService(repo Repository, authRepo auth.Repository) Service {
	return &service{repo: repo, authRepo: authRepo}
}

// RecordActivity fans an activity message out to every staff user as an
// in-app notification. The publishing actor is skipped.
func (s *service) RecordActivity(ctx context.Context, a Activity) error {
	users, err := s.authRepo.ListByRoles(feedRoles)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.ID == a.ActorID {
			continue
		}
		n := &InAppNotification{
			UserID:   u.ID,
			Title:    a.Title,
			Message:  a.Message,
			Category: a.Kind,
		}
		if err := s.repo.CreateInApp(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) ListInAppByUser(ctx context.Context, userID string, limit int) ([]InAppNotification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *service) MarkInAppAsRead(ctx context.Context, id uint, userID string) error {
	rows, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return apperror.Storage(err)
	}
	if rows == 0 {
		return apperror.NotFound("notification not found")
	}
	return nil
}
