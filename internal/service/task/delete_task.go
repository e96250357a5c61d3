package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// DeleteTask removes a task and its dependency edges. Same authorization as
// UpdateTask.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if taskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, getErr := s.getEditable(txCtx, actor, taskID)
		if getErr != nil {
			return getErr
		}

		if deleteErr := s.tasks.Delete(txCtx, taskID); deleteErr != nil {
			return fmt.Errorf("delete task: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeTask,
			EntityID:    &taskID,
			Action:      domain.AuditActionDelete,
			Description: "Task deleted: " + t.Title,
			OldValues: map[string]any{
				"title":      t.Title,
				"status":     string(t.Status),
				"contractId": t.ContractID.String(),
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

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("task_id", taskID.String()),
	)

	return nil
}
