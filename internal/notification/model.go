package notification

import (
	"context"
	"time"
)

// Activity is the message mutation services publish when club/event/idea
// records change. The kafka consumer turns each one into in-app
// notifications for staff users.
type Activity struct {
	Kind     string `json:"kind"`   // club, event, idea
	Action   string `json:"action"` // created, updated, deleted
	TargetID string `json:"target_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	ActorID  string `json:"actor_id,omitempty"`
}

// Publisher is what mutation services hold. Backed by kafka in production;
// tests use a recording fake, and deployments without brokers get a no-op.
type Publisher interface {
	PublishActivity(ctx context.Context, a Activity) error
}

// InAppNotification - per-user bell notifications
type InAppNotification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:12;not null;index" json:"user_id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"size:30;not null" json:"category"` // club, event, idea, system
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
