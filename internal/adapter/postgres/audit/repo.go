// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

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
	"github.com/heartmarshall/contracts-backend/pkg/ctxutil"
)

const table = "audit_logs"

var columns = []string{
	"id", "user_id", "entity_type", "entity_id", "action", "description",
	"old_values", "new_values", "metadata", "ip_address", "user_agent", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	oldValues, err := marshalJSON(record.OldValues)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal old_values: %w", err)
	}
	newValues, err := marshalJSON(record.NewValues)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal new_values: %w", err)
	}
	metadata, err := marshalJSON(record.Metadata)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal metadata: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			record.ID, record.UserID, string(record.EntityType), record.EntityID, string(record.Action), record.Description,
			oldValues, newValues, metadata, record.IPAddress, record.UserAgent, record.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert audit_record: %w", err)
	}

	got, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return got, nil
}

// Log creates an audit record without returning it (fire-and-forget).
// Satisfies the auditLogger interface of every service. A missing ID or
// timestamp is generated, and client details are copied from the request
// context unless the record already carries them.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	info := ctxutil.ClientInfoFromCtx(ctx)
	if record.IPAddress == nil && info.IP != "" {
		record.IPAddress = &info.IP
	}
	if record.UserAgent == nil && info.UserAgent != "" {
		record.UserAgent = &info.UserAgent
	}
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)))
}

// GetByUser returns audit log records for a user, ordered by created_at DESC
// with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.AuditRecord, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select audit_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// scanRecord reads one row in `columns` order.
func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec                            domain.AuditRecord
		entityType, action             string
		oldValues, newValues, metadata []byte
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &rec.Description,
		&oldValues, &newValues, &metadata, &rec.IPAddress, &rec.UserAgent, &rec.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, err
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	for _, f := range []struct {
		name string
		raw  []byte
		dst  *map[string]any
	}{
		{"old_values", oldValues, &rec.OldValues},
		{"new_values", newValues, &rec.NewValues},
		{"metadata", metadata, &rec.Metadata},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal %s: %w", rec.ID, f.name, err)
		}
	}

	return rec, nil
}

// marshalJSON encodes m for a jsonb column; nil maps are stored as NULL.
func marshalJSON(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
