package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateInApp(ctx context.Context, n *InAppNotification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]InAppNotification, error)
	MarkRead(ctx context.Context, id uint, userID string) (int64, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateInApp(ctx context.Context, n *InAppNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int) ([]InAppNotification, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []InAppNotification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// MarkRead flips is_read for a notification owned by userID. Returns the
// number of rows touched so the service can distinguish "not yours/absent".
func (r *repository) MarkRead(ctx context.Context, id uint, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&InAppNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
