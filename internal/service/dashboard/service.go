// Package dashboard builds read-only rollups of contracts, tasks and
// notifications scoped to the caller.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

type contractRepo interface {
	CountByStatus(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractStatus]int, error)
	CountByType(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractType]int, error)
	CountCreatedSince(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error)
	ListRecent(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Contract, error)
	ListExpiring(ctx context.Context, scope domain.DashboardScope, from, to time.Time, limit int) ([]domain.Contract, error)
	ListActiveValues(ctx context.Context, scope domain.DashboardScope) ([]domain.ContractValueRow, error)
}

type taskRepo interface {
	CountByStatus(ctx context.Context, scope domain.DashboardScope) (map[domain.TaskStatus]int, error)
	CountOverdue(ctx context.Context, scope domain.DashboardScope, now time.Time) (int, error)
	CountCreatedSince(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error)
	ListRecent(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Task, error)
	ListOverdue(ctx context.Context, scope domain.DashboardScope, now time.Time, limit int) ([]domain.Task, error)
}

type notificationRepo interface {
	Stats(ctx context.Context, recipientID uuid.UUID, since time.Time) (domain.NotificationStats, error)
}

const (
	recentLimit        = 5
	highlightLimit     = 10
	expiringWindowDays = 30
	notificationWindow = 7 * 24 * time.Hour
)

// Service provides dashboard reads.
type Service struct {
	contracts     contractRepo
	tasks         taskRepo
	notifications notificationRepo
	clock         clockwork.Clock
	log           *slog.Logger
}

// NewService creates a new Dashboard service.
func NewService(
	log *slog.Logger,
	contracts contractRepo,
	tasks taskRepo,
	notifications notificationRepo,
	clock clockwork.Clock,
) *Service {
	return &Service{
		contracts:     contracts,
		tasks:         tasks,
		notifications: notifications,
		clock:         clock,
		log:           log.With("service", "dashboard"),
	}
}

// monthStart returns midnight on the first day of now's month.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
