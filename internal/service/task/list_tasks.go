package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// ListByUser returns the tasks assigned to userID, optionally narrowed by
// status. Callers may list their own tasks; roles that see every contract
// may list anyone's.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if userID == uuid.Nil {
		userID = actor.ID
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}
	if userID != actor.ID && !actor.Role.SeesAllContracts() {
		return nil, domain.ErrForbidden
	}

	tasks, err := s.tasks.List(ctx, domain.TaskFilter{AssignedTo: &userID, Status: status})
	if err != nil {
		return nil, fmt.Errorf("list tasks by user: %w", err)
	}
	return tasks, nil
}

// ListByContract returns every task on a contract visible to the caller.
func (s *Service) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Task, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if contractID == uuid.Nil {
		return nil, domain.NewValidationError("contract_id", "required")
	}

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}
	if !c.VisibleTo(actor) {
		return nil, fmt.Errorf("contract %s: %w", contractID, domain.ErrNotFound)
	}

	tasks, err := s.tasks.List(ctx, domain.TaskFilter{ContractID: &contractID})
	if err != nil {
		return nil, fmt.Errorf("list tasks by contract: %w", err)
	}
	return tasks, nil
}
