package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// CreateNotification persists one notification and its audit entry, then
// attempts email delivery. Email failures are logged and never returned.
func (s *Service) CreateNotification(ctx context.Context, input CreateInput) (*domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := s.clock.Now().UTC()
	n := &domain.Notification{
		ID:          uuid.New(),
		Type:        input.Type,
		Title:       strings.TrimSpace(input.Title),
		Message:     strings.TrimSpace(input.Message),
		Priority:    priority,
		Status:      domain.NotificationStatusUnread,
		Metadata:    input.Metadata,
		RecipientID: input.RecipientID,
		SenderID:    input.SenderID,
		ContractID:  input.ContractID,
		TaskID:      input.TaskID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	actorID := n.RecipientID
	if n.SenderID != nil {
		actorID = *n.SenderID
	}

	var created *domain.Notification
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.notifications.Create(txCtx, n)
		if createErr != nil {
			return fmt.Errorf("create notification: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actorID,
			EntityType:  domain.EntityTypeNotification,
			EntityID:    &created.ID,
			Action:      domain.AuditActionCreate,
			Description: "Notification created: " + string(created.Type),
			Metadata:    map[string]any{"notificationId": created.ID.String()},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	createdTotal.WithLabelValues(string(created.Type)).Inc()

	s.log.InfoContext(ctx, "notification created",
		slog.String("notification_id", created.ID.String()),
		slog.String("recipient_id", created.RecipientID.String()),
		slog.String("type", string(created.Type)),
		slog.String("priority", string(created.Priority)),
	)

	s.sendEmail(ctx, created)

	return created, nil
}

// sendEmail is best-effort: the notification is already committed.
func (s *Service) sendEmail(ctx context.Context, n *domain.Notification) {
	if !s.cfg.EmailEnabled || s.email == nil {
		emailTotal.WithLabelValues("skipped").Inc()
		return
	}

	recipient, err := s.users.GetByID(ctx, n.RecipientID)
	if err != nil {
		emailTotal.WithLabelValues("failed").Inc()
		s.log.WarnContext(ctx, "email recipient lookup failed",
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.email.Send(ctx, *recipient, *n); err != nil {
		emailTotal.WithLabelValues("failed").Inc()
		s.log.WarnContext(ctx, "email dispatch failed",
			slog.String("notification_id", n.ID.String()),
			slog.String("recipient", recipient.Email),
			slog.String("error", err.Error()),
		)
		return
	}
	emailTotal.WithLabelValues("sent").Inc()

	sentAt := s.clock.Now().UTC()
	if err := s.notifications.MarkEmailSent(ctx, n.ID, sentAt); err != nil {
		s.log.WarnContext(ctx, "mark email sent failed",
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	n.EmailSent = true
	n.EmailSentAt = &sentAt
}
