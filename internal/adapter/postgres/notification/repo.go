// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/contracts-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

const table = "notifications"

var columns = []string{
	"id", "type", "title", "message", "priority", "status", "metadata",
	"recipient_id", "sender_id", "contract_id", "task_id", "scheduled_for",
	"read_at", "email_sent", "email_sent_at", "created_at", "updated_at",
}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a notification and returns the persisted row.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	var metadata []byte
	if len(n.Metadata) > 0 {
		var err error
		if metadata, err = json.Marshal(n.Metadata); err != nil {
			return nil, fmt.Errorf("notification %s marshal metadata: %w", n.ID, err)
		}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			n.ID, string(n.Type), n.Title, n.Message, string(n.Priority), string(n.Status), metadata,
			n.RecipientID, n.SenderID, n.ContractID, n.TaskID, n.ScheduledFor,
			n.ReadAt, n.EmailSent, n.EmailSentAt, n.CreatedAt, n.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert notification: %w", err)
	}

	got, err := scanNotification(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return &got, nil
}

// MarkRead sets status=read and read_at on a notification owned by
// recipientID. Archived notifications keep their status. A notification
// belonging to someone else is reported as not found.
func (r *Repo) MarkRead(ctx context.Context, id, recipientID uuid.UUID, at time.Time) (*domain.Notification, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", squirrel.Expr("CASE WHEN status = ? THEN status ELSE ? END",
			string(domain.NotificationStatusArchived), string(domain.NotificationStatusRead))).
		Set("read_at", squirrel.Expr("COALESCE(read_at, ?)", at)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "recipient_id": recipientID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mark read: %w", err)
	}

	got, err := scanNotification(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return &got, nil
}

// MarkAllRead flips every unread notification of recipientID to read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID, at time.Time) (int, error) {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Update(table).
		Set("status", string(domain.NotificationStatusRead)).
		Set("read_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"recipient_id": recipientID, "status": string(domain.NotificationStatusUnread)}))
	if err != nil {
		return 0, fmt.Errorf("mark all read for %s: %w", recipientID, err)
	}
	return int(n), nil
}

// MarkEmailSent records a successful email dispatch.
func (r *Repo) MarkEmailSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Update(table).
		Set("email_sent", true).
		Set("email_sent_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if n == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the recipient's notifications, newest first. The filter
// must already be normalized.
func (r *Repo) List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"recipient_id": filter.RecipientID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit))
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select notifications: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

// CountUnread returns the number of unread notifications for recipientID.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"recipient_id": recipientID, "status": string(domain.NotificationStatusUnread)}))
	if err != nil {
		return 0, fmt.Errorf("count unread for %s: %w", recipientID, err)
	}
	return n, nil
}

// Stats returns total, unread and created-since counts for recipientID in
// a single pass.
func (r *Repo) Stats(ctx context.Context, recipientID uuid.UUID, since time.Time) (domain.NotificationStats, error) {
	sql, args, err := postgres.Builder().
		Select(
			"count(*)",
			"count(*) FILTER (WHERE status = 'unread')",
		).
		Column(squirrel.Expr("count(*) FILTER (WHERE created_at >= ?)", since)).
		From(table).
		Where(squirrel.Eq{"recipient_id": recipientID}).
		ToSql()
	if err != nil {
		return domain.NotificationStats{}, fmt.Errorf("build notification stats: %w", err)
	}

	var s domain.NotificationStats
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&s.Total, &s.Unread, &s.ThisWeek)
	if err != nil {
		return domain.NotificationStats{}, fmt.Errorf("notification stats for %s: %w", recipientID, err)
	}
	return s, nil
}

// scanNotification reads one row in `columns` order.
func scanNotification(row pgx.Row) (domain.Notification, error) {
	var (
		n                     domain.Notification
		typ, priority, status string
		metadata              []byte
	)
	err := row.Scan(
		&n.ID, &typ, &n.Title, &n.Message, &priority, &status, &metadata,
		&n.RecipientID, &n.SenderID, &n.ContractID, &n.TaskID, &n.ScheduledFor,
		&n.ReadAt, &n.EmailSent, &n.EmailSentAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return domain.Notification{}, err
	}

	n.Type = domain.NotificationType(typ)
	n.Priority = domain.Priority(priority)
	n.Status = domain.NotificationStatus(status)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &n.Metadata); err != nil {
			return domain.Notification{}, fmt.Errorf("notification %s unmarshal metadata: %w", n.ID, err)
		}
	}
	return n, nil
}
