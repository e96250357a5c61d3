package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to a single recipient.
type Notification struct {
	ID           uuid.UUID
	Type         NotificationType
	Title        string
	Message      string
	Priority     Priority
	Status       NotificationStatus
	Metadata     map[string]any
	RecipientID  uuid.UUID
	SenderID     *uuid.UUID
	ContractID   *uuid.UUID
	TaskID       *uuid.UUID
	ScheduledFor *time.Time
	ReadAt       *time.Time
	EmailSent    bool
	EmailSentAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NotificationFilter narrows a recipient's notification listing.
type NotificationFilter struct {
	RecipientID uuid.UUID
	Status      *NotificationStatus
	Limit       int
}

const (
	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 200
)

// Normalize applies the default limit and clamps it.
func (f *NotificationFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultNotificationLimit
	}
	if f.Limit > MaxNotificationLimit {
		f.Limit = MaxNotificationLimit
	}
}

// DaysUntil returns ceil((target - now) / 24h). A target later today is 1;
// a target that passed less than a day ago is 0.
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}
