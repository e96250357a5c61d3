// Package email delivers notifications out of band.
package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// LogSender "delivers" notifications by writing them to the log. It stands in
// for a real mail gateway.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log.With("adapter", "email")}
}

// Send logs the recipient and title. A recipient without an address fails.
func (s *LogSender) Send(ctx context.Context, to domain.User, n domain.Notification) error {
	if to.Email == "" {
		return errors.New("recipient has no email address")
	}
	s.log.InfoContext(ctx, "Email sent to "+to.Email+": "+n.Title,
		slog.String("notification_id", n.ID.String()),
		slog.String("type", string(n.Type)),
		slog.String("priority", string(n.Priority)),
	)
	return nil
}
