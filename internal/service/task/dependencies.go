package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// AddDependency records that input.TaskID cannot proceed before
// input.DependsOnID. Edges that would close a cycle are rejected with a
// ValidationError; a duplicate edge is a conflict.
func (s *Service) AddDependency(ctx context.Context, input DependencyInput) (*domain.TaskDependency, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	dep := domain.TaskDependency{
		TaskID:      input.TaskID,
		DependsOnID: input.DependsOnID,
		CreatedAt:   s.clock.Now().UTC(),
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, getErr := s.getEditable(txCtx, actor, input.TaskID); getErr != nil {
			return getErr
		}
		if _, getErr := s.tasks.GetByID(txCtx, input.DependsOnID); getErr != nil {
			return fmt.Errorf("get dependency: %w", getErr)
		}

		edges, edgesErr := s.tasks.ReachableEdges(txCtx, input.DependsOnID)
		if edgesErr != nil {
			return fmt.Errorf("reachable edges: %w", edgesErr)
		}
		if domain.NewDependencyGraph(edges).WouldCycle(input.TaskID, input.DependsOnID) {
			return domain.NewValidationError("depends_on_id", "dependency would create a cycle")
		}

		if addErr := s.tasks.AddDependency(txCtx, dep); addErr != nil {
			if errors.Is(addErr, domain.ErrAlreadyExists) {
				return fmt.Errorf("task %s already depends on %s: %w", input.TaskID, input.DependsOnID, domain.ErrConflict)
			}
			return fmt.Errorf("add dependency: %w", addErr)
		}

		return s.auditDependency(txCtx, actor, input, "Task dependency added")
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task dependency added",
		slog.String("user_id", actor.ID.String()),
		slog.String("task_id", input.TaskID.String()),
		slog.String("depends_on_id", input.DependsOnID.String()),
	)

	return &dep, nil
}

// RemoveDependency deletes one edge. A missing edge is ErrNotFound.
func (s *Service) RemoveDependency(ctx context.Context, input DependencyInput) error {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, getErr := s.getEditable(txCtx, actor, input.TaskID); getErr != nil {
			return getErr
		}
		if removeErr := s.tasks.RemoveDependency(txCtx, input.TaskID, input.DependsOnID); removeErr != nil {
			return fmt.Errorf("remove dependency: %w", removeErr)
		}
		return s.auditDependency(txCtx, actor, input, "Task dependency removed")
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task dependency removed",
		slog.String("user_id", actor.ID.String()),
		slog.String("task_id", input.TaskID.String()),
		slog.String("depends_on_id", input.DependsOnID.String()),
	)

	return nil
}

// ListDependencies returns the direct dependencies of a task.
func (s *Service) ListDependencies(ctx context.Context, taskID uuid.UUID) ([]domain.TaskDependency, error) {
	if _, ok := domain.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "required")
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	deps, err := s.tasks.ListDependencies(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}
	return deps, nil
}

func (s *Service) auditDependency(ctx context.Context, actor domain.Actor, input DependencyInput, description string) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:      &actor.ID,
		EntityType:  domain.EntityTypeTask,
		EntityID:    &input.TaskID,
		Action:      domain.AuditActionUpdate,
		Description: description,
		Metadata:    map[string]any{"dependsOnId": input.DependsOnID.String()},
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
