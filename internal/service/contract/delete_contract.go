package contract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// DeleteContract removes a contract and, by cascade, its tasks. Admin and
// legal only.
func (s *Service) DeleteContract(ctx context.Context, contractID uuid.UUID) error {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if contractID == uuid.Nil {
		return domain.NewValidationError("contract_id", "required")
	}
	if !actor.Role.CanManageContracts() {
		return domain.ErrForbidden
	}

	var title string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, getErr := s.contracts.GetByID(txCtx, contractID)
		if getErr != nil {
			return fmt.Errorf("get contract: %w", getErr)
		}
		title = c.Title

		if deleteErr := s.contracts.Delete(txCtx, contractID); deleteErr != nil {
			return fmt.Errorf("delete contract: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeContract,
			EntityID:    &contractID,
			Action:      domain.AuditActionDelete,
			Description: "Contract deleted: " + c.Title,
			OldValues: map[string]any{
				"title":  c.Title,
				"status": string(c.Status),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "contract deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("contract_id", contractID.String()),
		slog.String("title", title),
	)

	return nil
}
