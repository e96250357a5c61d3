package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// UpdateTask merges a partial update over a task. Only the assignee or
// admin/legal may edit an assigned task. Completing a task notifies its
// creator and the contract owner; reassigning it notifies the new assignee.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.Patch
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}

	var (
		updated    *domain.Task
		contract   *domain.Contract
		completed  bool
		reassigned bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.getEditable(txCtx, actor, input.TaskID)
		if getErr != nil {
			return getErr
		}

		reassigned = patch.AssignedTo != nil && !old.IsAssignedTo(*patch.AssignedTo)
		if reassigned {
			if assignErr := s.checkAssignee(txCtx, old.Category, *patch.AssignedTo); assignErr != nil {
				return assignErr
			}
		}

		var contractErr error
		contract, contractErr = s.contracts.GetByID(txCtx, old.ContractID)
		if contractErr != nil {
			return fmt.Errorf("get contract: %w", contractErr)
		}

		now := s.clock.Now().UTC()
		merged := patch.Apply(*old)
		completed = old.Status != domain.TaskStatusCompleted && merged.Status == domain.TaskStatusCompleted
		switch {
		case completed:
			merged.CompletedDate = &now
		case merged.Status != domain.TaskStatusCompleted:
			merged.CompletedDate = nil
		}
		merged.UpdatedAt = now

		var updateErr error
		updated, updateErr = s.tasks.Update(txCtx, &merged)
		if updateErr != nil {
			return fmt.Errorf("update task: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		oldValues, newValues := diffTasks(old, updated)
		if len(newValues) == 0 {
			return nil
		}

		action := domain.AuditActionUpdate
		switch {
		case completed:
			action = domain.AuditActionComplete
		case reassigned:
			action = domain.AuditActionAssign
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeTask,
			EntityID:    &updated.ID,
			Action:      action,
			Description: "Task updated: " + updated.Title,
			OldValues:   oldValues,
			NewValues:   newValues,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed {
		if err := s.notify.NotifyTaskCompleted(ctx, *updated, *contract, actor); err != nil {
			return nil, fmt.Errorf("notify task completed: %w", err)
		}
	}
	if reassigned {
		if err := s.notify.NotifyTaskAssigned(ctx, *updated, *contract, actor); err != nil {
			return nil, fmt.Errorf("notify task assigned: %w", err)
		}
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("task_id", updated.ID.String()),
		slog.String("status", string(updated.Status)),
	)

	return updated, nil
}

// diffTasks returns the changed audit-relevant fields on each side.
func diffTasks(old, updated *domain.Task) (map[string]any, map[string]any) {
	oldValues := make(map[string]any)
	newValues := make(map[string]any)
	set := func(key string, o, n any) {
		if o != n {
			oldValues[key] = o
			newValues[key] = n
		}
	}

	set("title", old.Title, updated.Title)
	set("type", string(old.Type), string(updated.Type))
	set("status", string(old.Status), string(updated.Status))
	set("priority", string(old.Priority), string(updated.Priority))
	set("description", derefString(old.Description), derefString(updated.Description))
	set("dueDate", formatTime(old.DueDate), formatTime(updated.DueDate))
	set("assignedTo", formatID(old.AssignedTo), formatID(updated.AssignedTo))
	return oldValues, newValues
}
