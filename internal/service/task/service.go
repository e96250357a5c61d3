// Package task owns contract tasks: creation with the category gate, edits,
// completion and reassignment fanout, and the dependency graph.
package task

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

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	AddDependency(ctx context.Context, dep domain.TaskDependency) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID uuid.UUID) error
	ListDependencies(ctx context.Context, taskID uuid.UUID) ([]domain.TaskDependency, error)
	ReachableEdges(ctx context.Context, start uuid.UUID) ([]domain.TaskDependency, error)
}

type contractRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notifier interface {
	NotifyTaskAssigned(ctx context.Context, t domain.Task, c domain.Contract, actor domain.Actor) error
	NotifyTaskCompleted(ctx context.Context, t domain.Task, c domain.Contract, completer domain.Actor) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides task lifecycle operations.
type Service struct {
	tasks     taskRepo
	contracts contractRepo
	users     userRepo
	notify    notifier
	audit     auditLogger
	tx        txManager
	clock     clockwork.Clock
	log       *slog.Logger
}

// NewService creates a new Task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	contracts contractRepo,
	users userRepo,
	notify notifier,
	audit auditLogger,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		tasks:     tasks,
		contracts: contracts,
		users:     users,
		notify:    notify,
		audit:     audit,
		tx:        tx,
		clock:     clock,
		log:       log.With("service", "task"),
	}
}

// checkAssignee verifies the user exists and holds the role the category
// demands. A missing user is a ValidationError, a wrong role ErrForbidden.
func (s *Service) checkAssignee(ctx context.Context, category domain.TaskCategory, assigneeID uuid.UUID) error {
	u, err := s.users.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("assigned_to", "user not found")
		}
		return fmt.Errorf("get assignee: %w", err)
	}
	if !category.AllowsAssignee(u.Role) {
		required, _ := category.RequiredRole()
		return fmt.Errorf("%s tasks can only be assigned to %s users: %w", category, required, domain.ErrForbidden)
	}
	return nil
}

// getEditable loads a task and checks the actor may change it. A task on a
// contract the actor cannot see is reported as not found.
func (s *Service) getEditable(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if t.CanBeEditedBy(actor) {
		return t, nil
	}

	c, err := s.contracts.GetByID(ctx, t.ContractID)
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}
	if !c.VisibleTo(actor) {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("task %s: %w", id, domain.ErrForbidden)
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

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
