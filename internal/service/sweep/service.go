// Package sweep scans active contracts and pending tasks once a day and
// fires expiry and due-date notifications at fixed day thresholds.
package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

type contractRepo interface {
	ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error)
}

type taskRepo interface {
	ListPendingAssignedWithDue(ctx context.Context) ([]domain.Task, error)
}

type notifier interface {
	NotifyContractExpiring(ctx context.Context, c domain.Contract, days int) error
	NotifyContractExpired(ctx context.Context, c domain.Contract) error
	NotifyTaskDueSoon(ctx context.Context, t domain.Task, days int) error
	NotifyTaskOverdue(ctx context.Context, t domain.Task) error
}

var (
	expiringThresholds = []int{30, 7, 1}
	dueSoonThresholds  = []int{7, 3, 1}
)

// PassResult summarises one pass over contracts or tasks.
type PassResult struct {
	Scanned  int
	Notified int
	Failed   int
}

// Result summarises one sweep run.
type Result struct {
	StartedAt time.Time
	Duration  time.Duration
	Contracts PassResult
	Tasks     PassResult
}

// Service runs the expiry and due-date sweep.
type Service struct {
	contracts contractRepo
	tasks     taskRepo
	notify    notifier
	clock     clockwork.Clock
	log       *slog.Logger
}

// NewService creates a new Sweep service.
func NewService(
	log *slog.Logger,
	contracts contractRepo,
	tasks taskRepo,
	notify notifier,
	clock clockwork.Clock,
) *Service {
	return &Service{
		contracts: contracts,
		tasks:     tasks,
		notify:    notify,
		clock:     clock,
		log:       log.With("service", "sweep"),
	}
}
