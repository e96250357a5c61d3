package contract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// UpdateStatus moves a contract to a new status and notifies its owner and
// stakeholder. Only admin and legal may activate or terminate.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Status.RequiresManager() && !actor.Role.CanManageContracts() {
		return nil, domain.ErrForbidden
	}

	return s.changeStatus(ctx, actor, statusChange{
		contractID: input.ContractID,
		next:       input.Status,
		action:     domain.AuditActionUpdate,
	})
}

// Approve activates a contract. Admin and legal only.
func (s *Service) Approve(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if contractID == uuid.Nil {
		return nil, domain.NewValidationError("contract_id", "required")
	}
	if !actor.Role.CanManageContracts() {
		return nil, domain.ErrForbidden
	}

	return s.changeStatus(ctx, actor, statusChange{
		contractID: contractID,
		next:       domain.ContractStatusActive,
		action:     domain.AuditActionApprove,
	})
}

// Reject terminates a contract and appends the reason to its notes. Earlier
// notes, including previous rejections, are kept. Admin and legal only.
func (s *Service) Reject(ctx context.Context, input RejectInput) (*domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !actor.Role.CanManageContracts() {
		return nil, domain.ErrForbidden
	}

	return s.changeStatus(ctx, actor, statusChange{
		contractID: input.ContractID,
		next:       domain.ContractStatusTerminated,
		action:     domain.AuditActionReject,
		mutate: func(c *domain.Contract) {
			c.AppendRejection(input.Reason)
		},
		metadata: map[string]any{"reason": input.Reason},
	})
}

type statusChange struct {
	contractID uuid.UUID
	next       domain.ContractStatus
	action     domain.AuditAction
	mutate     func(c *domain.Contract)
	metadata   map[string]any
}

// changeStatus writes the new status, audits it and fans out the change. The
// fanout runs after the commit.
func (s *Service) changeStatus(ctx context.Context, actor domain.Actor, t statusChange) (*domain.Contract, error) {
	var (
		updated   *domain.Contract
		oldStatus domain.ContractStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, getErr := s.getVisible(txCtx, actor, t.contractID)
		if getErr != nil {
			return getErr
		}

		oldStatus = c.Status
		if s.cfg.StrictTransitions && !oldStatus.CanTransitionTo(t.next) {
			return domain.NewValidationError("status",
				fmt.Sprintf("cannot move from %s to %s", oldStatus, t.next))
		}

		c.Status = t.next
		if t.mutate != nil {
			t.mutate(c)
		}
		c.UpdatedAt = s.clock.Now().UTC()

		var updateErr error
		updated, updateErr = s.contracts.Update(txCtx, c)
		if updateErr != nil {
			return fmt.Errorf("update contract: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeContract,
			EntityID:    &updated.ID,
			Action:      t.action,
			Description: fmt.Sprintf("Contract status changed from %s to %s", oldStatus, t.next),
			OldValues:   statusSnapshot(oldStatus),
			NewValues:   statusSnapshot(t.next),
			Metadata:    t.metadata,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.notify.NotifyStatusChanged(ctx, *updated, oldStatus, actor); err != nil {
		return nil, fmt.Errorf("notify status changed: %w", err)
	}

	s.log.InfoContext(ctx, "contract status changed",
		slog.String("user_id", actor.ID.String()),
		slog.String("contract_id", updated.ID.String()),
		slog.String("from", string(oldStatus)),
		slog.String("to", string(t.next)),
		slog.String("action", string(t.action)),
	)

	return updated, nil
}
