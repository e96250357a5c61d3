package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// Fanout thresholds for priority escalation.
const (
	expiringHighWithinDays = 7
	dueSoonHighWithinDays  = 3
)

// NotifyApprovalRequired tells every active admin that c awaits approval.
func (s *Service) NotifyApprovalRequired(ctx context.Context, c domain.Contract) error {
	admins, err := s.users.ListActiveByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}

	recipients := make([]uuid.UUID, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, a.ID)
	}

	return s.fanout(ctx, domain.NotificationContractApprovalRequired, recipients, func(uuid.UUID) CreateInput {
		return CreateInput{
			Title:      "Contract Approval Required: " + c.Title,
			Message:    fmt.Sprintf(`Contract "%s" requires your approval. Please review and approve or reject.`, c.Title),
			Priority:   domain.PriorityHigh,
			SenderID:   &c.OwnerID,
			ContractID: &c.ID,
		}
	})
}

// NotifyStatusChanged tells the owner and stakeholder, minus the actor, that
// c moved from oldStatus to its current status.
func (s *Service) NotifyStatusChanged(ctx context.Context, c domain.Contract, oldStatus domain.ContractStatus, actor domain.Actor) error {
	name := s.displayName(ctx, actor)

	return s.fanout(ctx, domain.NotificationContractStatusChanged, c.Recipients(actor.ID), func(uuid.UUID) CreateInput {
		return CreateInput{
			Title: "Contract Status Updated: " + c.Title,
			Message: fmt.Sprintf(`Contract "%s" status changed from %s to %s by %s.`,
				c.Title, oldStatus, c.Status, name),
			Priority:   domain.PriorityMedium,
			SenderID:   senderOf(actor),
			ContractID: &c.ID,
			Metadata: map[string]any{
				"oldStatus": string(oldStatus),
				"newStatus": string(c.Status),
			},
		}
	})
}

// NotifyContractExpiring warns the owner and stakeholder that c expires in
// days. Seven days or fewer is high priority.
func (s *Service) NotifyContractExpiring(ctx context.Context, c domain.Contract, days int) error {
	priority := domain.PriorityMedium
	if days <= expiringHighWithinDays {
		priority = domain.PriorityHigh
	}
	expiry := c.ExpiryDate.Format(dateLayout)

	return s.fanout(ctx, domain.NotificationContractExpiring, c.Recipients(uuid.Nil), func(uuid.UUID) CreateInput {
		return CreateInput{
			Title: "Contract Expiring Soon: " + c.Title,
			Message: fmt.Sprintf(`Contract "%s" expires in %d days on %s. Please review and take necessary action.`,
				c.Title, days, expiry),
			Priority:   priority,
			ContractID: &c.ID,
			Metadata: map[string]any{
				"daysUntilExpiry": days,
				"expiryDate":      expiry,
			},
		}
	})
}

// NotifyContractExpired tells the owner and stakeholder that c has expired.
func (s *Service) NotifyContractExpired(ctx context.Context, c domain.Contract) error {
	expiry := c.ExpiryDate.Format(dateLayout)

	return s.fanout(ctx, domain.NotificationContractExpired, c.Recipients(uuid.Nil), func(uuid.UUID) CreateInput {
		return CreateInput{
			Title:      "Contract Expired: " + c.Title,
			Message:    fmt.Sprintf(`Contract "%s" has expired on %s. Immediate action required.`, c.Title, expiry),
			Priority:   domain.PriorityUrgent,
			ContractID: &c.ID,
			Metadata:   map[string]any{"expiryDate": expiry},
		}
	})
}

// NotifyTaskAssigned tells the assignee of t about the assignment. Unassigned
// tasks notify nobody.
func (s *Service) NotifyTaskAssigned(ctx context.Context, t domain.Task, c domain.Contract, actor domain.Actor) error {
	if t.AssignedTo == nil {
		return nil
	}

	priority := domain.PriorityMedium
	if t.Priority == domain.PriorityUrgent {
		priority = domain.PriorityHigh
	}
	due := formatDue(t)

	sender := senderOf(actor)
	if sender == nil {
		sender = &t.CreatedBy
	}

	return s.fanout(ctx, domain.NotificationTaskAssigned, []uuid.UUID{*t.AssignedTo}, func(uuid.UUID) CreateInput {
		return CreateInput{
			Title: "New Task Assigned: " + t.Title,
			Message: fmt.Sprintf(`You have been assigned a new task: "%s" for contract "%s". Due date: %s.`,
				t.Title, c.Title, due),
			Priority:   priority,
			SenderID:   sender,
			ContractID: &t.ContractID,
			TaskID:     &t.ID,
			Metadata: map[string]any{
				"dueDate":  due,
				"priority": string(t.Priority),
			},
		}
	})
}

// NotifyTaskDueSoon reminds the assignee that t is due in days. Three days or
// fewer is high priority.
func (s *Service) NotifyTaskDueSoon(ctx context.Context, t domain.Task, days int) error {
	if t.AssignedTo == nil {
		return nil
	}

	priority := domain.PriorityMedium
	if days <= dueSoonHighWithinDays {
		priority = domain.PriorityHigh
	}
	due := formatDue(t)

	return s.fanout(ctx, domain.NotificationTaskDueSoon, []uuid.UUID{*t.AssignedTo}, func(uuid.UUID) CreateInput {
		return CreateInput{
			Title:      "Task Due Soon: " + t.Title,
			Message:    fmt.Sprintf(`Task "%s" is due in %d days on %s. Please complete it on time.`, t.Title, days, due),
			Priority:   priority,
			ContractID: &t.ContractID,
			TaskID:     &t.ID,
			Metadata: map[string]any{
				"daysUntilDue": days,
				"dueDate":      due,
			},
		}
	})
}

// NotifyTaskOverdue tells the assignee that t is past due.
func (s *Service) NotifyTaskOverdue(ctx context.Context, t domain.Task) error {
	if t.AssignedTo == nil {
		return nil
	}
	due := formatDue(t)

	return s.fanout(ctx, domain.NotificationTaskOverdue, []uuid.UUID{*t.AssignedTo}, func(uuid.UUID) CreateInput {
		return CreateInput{
			Title:      "Task Overdue: " + t.Title,
			Message:    fmt.Sprintf(`Task "%s" is overdue. It was due on %s. Please complete it immediately.`, t.Title, due),
			Priority:   domain.PriorityUrgent,
			ContractID: &t.ContractID,
			TaskID:     &t.ID,
			Metadata:   map[string]any{"dueDate": due},
		}
	})
}

// NotifyTaskCompleted tells the task creator and the contract owner that t was
// completed. Whoever completed it is skipped, and a creator who also owns the
// contract is notified once.
func (s *Service) NotifyTaskCompleted(ctx context.Context, t domain.Task, c domain.Contract, completer domain.Actor) error {
	name := s.displayName(ctx, completer)

	recipients := make([]uuid.UUID, 0, 2)
	if t.CreatedBy != completer.ID {
		recipients = append(recipients, t.CreatedBy)
	}
	if c.OwnerID != completer.ID && c.OwnerID != t.CreatedBy {
		recipients = append(recipients, c.OwnerID)
	}

	return s.fanout(ctx, domain.NotificationTaskCompleted, recipients, func(to uuid.UUID) CreateInput {
		msg := fmt.Sprintf(`Task "%s" has been completed by %s.`, t.Title, name)
		if to != t.CreatedBy {
			msg = fmt.Sprintf(`Task "%s" for contract "%s" has been completed by %s.`, t.Title, c.Title, name)
		}
		return CreateInput{
			Title:      "Task Completed: " + t.Title,
			Message:    msg,
			Priority:   domain.PriorityLow,
			SenderID:   senderOf(completer),
			ContractID: &t.ContractID,
			TaskID:     &t.ID,
		}
	})
}

// fanout creates one notification per recipient, sequentially, stopping at
// the first failure.
func (s *Service) fanout(
	ctx context.Context,
	typ domain.NotificationType,
	recipients []uuid.UUID,
	build func(recipient uuid.UUID) CreateInput,
) error {
	for _, to := range recipients {
		input := build(to)
		input.Type = typ
		input.RecipientID = to
		if _, err := s.CreateNotification(ctx, input); err != nil {
			return fmt.Errorf("notify %s to %s: %w", typ, to, err)
		}
	}

	s.log.DebugContext(ctx, "fanout done",
		slog.String("type", string(typ)),
		slog.Int("recipients", len(recipients)),
	)
	return nil
}

// displayName resolves the actor's full name, falling back to the email.
func (s *Service) displayName(ctx context.Context, actor domain.Actor) string {
	if actor.IsSystem() {
		return "system"
	}
	u, err := s.users.GetByID(ctx, actor.ID)
	if err != nil || u.FullName() == "" {
		return actor.Email
	}
	return u.FullName()
}

func senderOf(actor domain.Actor) *uuid.UUID {
	if actor.IsSystem() {
		return nil
	}
	id := actor.ID
	return &id
}

func formatDue(t domain.Task) string {
	if t.DueDate == nil {
		return "not set"
	}
	return t.DueDate.Format(dateLayout)
}
