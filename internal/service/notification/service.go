// Package notification persists per-recipient notifications and computes the
// recipient set for every contract and task event.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID, at time.Time) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, at time.Time) (int, error)
	MarkEmailSent(ctx context.Context, id uuid.UUID, at time.Time) error
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// emailSender delivers a notification to its recipient out of band.
type emailSender interface {
	Send(ctx context.Context, to domain.User, n domain.Notification) error
}

// Config tunes the service.
type Config struct {
	EmailEnabled bool
	DefaultLimit int
}

// Service creates notifications and serves the recipient's inbox.
type Service struct {
	notifications notificationRepo
	users         userRepo
	audit         auditLogger
	tx            txManager
	email         emailSender
	clock         clockwork.Clock
	cfg           Config
	log           *slog.Logger
}

// NewService creates a new Notification service.
func NewService(
	log *slog.Logger,
	notifications notificationRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
	email emailSender,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = domain.DefaultNotificationLimit
	}
	return &Service{
		notifications: notifications,
		users:         users,
		audit:         audit,
		tx:            tx,
		email:         email,
		clock:         clock,
		cfg:           cfg,
		log:           log.With("service", "notification"),
	}
}

// dateLayout renders dates inside notification messages.
const dateLayout = "2006-01-02"
