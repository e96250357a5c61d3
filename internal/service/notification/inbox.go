package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
	"github.com/heartmarshall/contracts-backend/pkg/ctxutil"
)

// ListNotifications returns the caller's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, input ListInput) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}
	filter := domain.NotificationFilter{
		RecipientID: userID,
		Status:      input.Status,
		Limit:       limit,
	}
	filter.Normalize()

	items, err := s.notifications.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// MarkAsRead marks one of the caller's notifications as read. A notification
// addressed to someone else is reported as not found.
func (s *Service) MarkAsRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkRead(ctx, id, userID, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}

	s.log.InfoContext(ctx, "notification read",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", id.String()),
	)

	return n, nil
}

// MarkAllAsRead marks every unread notification of the caller as read and
// returns how many changed.
func (s *Service) MarkAllAsRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID, s.clock.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	s.log.InfoContext(ctx, "notifications read",
		slog.String("user_id", userID.String()),
		slog.Int("count", n),
	)

	return n, nil
}

// UnreadCount returns the number of unread notifications for the caller.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}
