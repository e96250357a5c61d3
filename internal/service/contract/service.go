// Package contract owns the contract lifecycle: creation, edits, status
// transitions, approval and rejection, and visibility-scoped reads.
package contract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

type contractRepo interface {
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error)
	List(ctx context.Context, filter domain.ContractFilter) (domain.ContractPage, error)
	ListExpiring(ctx context.Context, scope domain.DashboardScope, from, to time.Time, limit int) ([]domain.Contract, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notifier interface {
	NotifyApprovalRequired(ctx context.Context, c domain.Contract) error
	NotifyStatusChanged(ctx context.Context, c domain.Contract, oldStatus domain.ContractStatus, actor domain.Actor) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultCurrency          = "USD"
	defaultRenewalNoticeDays = 30
	defaultExpiringDays      = 30
)

// Config tunes lifecycle enforcement.
type Config struct {
	// StrictTransitions rejects status moves outside the lifecycle graph.
	StrictTransitions bool
}

// Service provides contract lifecycle operations.
type Service struct {
	contracts contractRepo
	users     userRepo
	notify    notifier
	audit     auditLogger
	tx        txManager
	clock     clockwork.Clock
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Contract service.
func NewService(
	log *slog.Logger,
	contracts contractRepo,
	users userRepo,
	notify notifier,
	audit auditLogger,
	tx txManager,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	return &Service{
		contracts: contracts,
		users:     users,
		notify:    notify,
		audit:     audit,
		tx:        tx,
		clock:     clock,
		cfg:       cfg,
		log:       log.With("service", "contract"),
	}
}

// checkStakeholder maps a missing stakeholder to a ValidationError.
func (s *Service) checkStakeholder(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.users.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("stakeholder_id", "user not found")
		}
		return fmt.Errorf("get stakeholder: %w", err)
	}
	return nil
}

// getVisible loads a contract and hides it from actors who may not see it.
func (s *Service) getVisible(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Contract, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}
	if !c.VisibleTo(actor) {
		return nil, fmt.Errorf("contract %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// statusSnapshot is the audit payload of a status transition.
func statusSnapshot(status domain.ContractStatus) map[string]any {
	return map[string]any{"status": string(status)}
}
