package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// CreateTask adds a pending task to a contract visible to the caller. When an
// assignee is given it must exist and satisfy the task's category, and it is
// notified once the task is stored.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.contracts.GetByID(ctx, input.ContractID)
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}
	if !c.VisibleTo(actor) {
		return nil, fmt.Errorf("contract %s: %w", input.ContractID, domain.ErrNotFound)
	}

	title := strings.TrimSpace(input.Title)
	var category domain.TaskCategory
	if input.Category != nil {
		category = *input.Category
	} else {
		category, err = domain.DeriveTaskCategory(title)
		if err != nil && input.AssignedTo != nil {
			// An ambiguous title gates the assignee on every category it names.
			for _, cat := range domain.MatchTaskCategories(title) {
				if gateErr := s.checkAssignee(ctx, cat, *input.AssignedTo); gateErr != nil {
					return nil, gateErr
				}
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if input.AssignedTo != nil {
		if err := s.checkAssignee(ctx, category, *input.AssignedTo); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now().UTC()
	t := &domain.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: trimOrNil(input.Description),
		Type:        input.Type,
		Category:    category,
		Status:      domain.TaskStatusPending,
		Priority:    domain.PriorityMedium,
		DueDate:     input.DueDate,
		Metadata:    input.Metadata,
		ContractID:  c.ID,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}

	var created *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.tasks.Create(txCtx, t)
		if createErr != nil {
			return fmt.Errorf("create task: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeTask,
			EntityID:    &created.ID,
			Action:      domain.AuditActionCreate,
			Description: "Task created: " + created.Title,
			NewValues: map[string]any{
				"title":    created.Title,
				"category": string(created.Category),
				"status":   string(created.Status),
			},
			Metadata: map[string]any{"contractId": c.ID.String()},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if created.AssignedTo != nil {
		if err := s.notify.NotifyTaskAssigned(ctx, *created, *c, actor); err != nil {
			return nil, fmt.Errorf("notify task assigned: %w", err)
		}
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", actor.ID.String()),
		slog.String("task_id", created.ID.String()),
		slog.String("contract_id", c.ID.String()),
		slog.String("category", string(created.Category)),
	)

	return created, nil
}
