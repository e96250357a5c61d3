// Package contract implements the Contract repository using PostgreSQL.
package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/contracts-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

const table = "contracts"

// writeColumns is the insert order; selectColumns mirrors it with
// contract_value read back as text so no precision is lost.
var (
	writeColumns = []string{
		"id", "title", "description", "type", "status",
		"counterparty_name", "counterparty_email", "counterparty_phone",
		"effective_date", "expiry_date", "renewal_date", "auto_renew", "renewal_frequency", "renewal_notice_days",
		"contract_value", "currency", "department", "project", "cost_center",
		"document_url", "document_type", "tags", "custom_fields", "notes",
		"owner_id", "stakeholder_id", "created_at", "updated_at",
	}
	selectColumns = selectList()
)

func selectList() []string {
	cols := make([]string, len(writeColumns))
	copy(cols, writeColumns)
	for i, c := range cols {
		if c == "contract_value" {
			cols[i] = "contract_value::text"
		}
	}
	return cols
}

// Repo provides contract persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contract repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new contract and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	customFields, err := marshalJSON(c.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("contract %s marshal custom_fields: %w", c.ID, err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(writeColumns...).
		Values(
			c.ID, c.Title, c.Description, string(c.Type), string(c.Status),
			c.CounterpartyName, c.CounterpartyEmail, c.CounterpartyPhone,
			c.EffectiveDate, c.ExpiryDate, c.RenewalDate, c.AutoRenew, renewalFrequency(c.RenewalFrequency), c.RenewalNoticeDays,
			numeric(c.ContractValue), c.Currency, c.Department, c.Project, c.CostCenter,
			c.DocumentURL, c.DocumentType, tags(c.Tags), customFields, c.Notes,
			c.OwnerID, c.StakeholderID, c.CreatedAt, c.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert contract: %w", err)
	}

	got, err := scanContract(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contract", c.ID)
	}
	return &got, nil
}

// Update overwrites every mutable column of c. Last write wins.
func (r *Repo) Update(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	customFields, err := marshalJSON(c.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("contract %s marshal custom_fields: %w", c.ID, err)
	}

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":               c.Title,
			"description":         c.Description,
			"type":                string(c.Type),
			"status":              string(c.Status),
			"counterparty_name":   c.CounterpartyName,
			"counterparty_email":  c.CounterpartyEmail,
			"counterparty_phone":  c.CounterpartyPhone,
			"effective_date":      c.EffectiveDate,
			"expiry_date":         c.ExpiryDate,
			"renewal_date":        c.RenewalDate,
			"auto_renew":          c.AutoRenew,
			"renewal_frequency":   renewalFrequency(c.RenewalFrequency),
			"renewal_notice_days": c.RenewalNoticeDays,
			"contract_value":      numeric(c.ContractValue),
			"currency":            c.Currency,
			"department":          c.Department,
			"project":             c.Project,
			"cost_center":         c.CostCenter,
			"document_url":        c.DocumentURL,
			"document_type":       c.DocumentType,
			"tags":                tags(c.Tags),
			"custom_fields":       customFields,
			"notes":               c.Notes,
			"stakeholder_id":      c.StakeholderID,
			"updated_at":          c.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update contract: %w", err)
	}

	got, err := scanContract(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contract", c.ID)
	}
	return &got, nil
}

// Delete removes a contract. Its tasks cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "contract", id)
	}
	if n == 0 {
		return fmt.Errorf("contract %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a contract by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	sql, args, err := selectContracts().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select contract: %w", err)
	}

	c, err := scanContract(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contract", id)
	}
	return &c, nil
}

// List returns one page of contracts matching filter, newest first.
// The filter must already be normalized.
func (r *Repo) List(ctx context.Context, filter domain.ContractFilter) (domain.ContractPage, error) {
	where := filterConditions(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := postgres.Count(ctx, q, postgres.Builder().Select("count(*)").From(table).Where(where))
	if err != nil {
		return domain.ContractPage{}, fmt.Errorf("count contracts: %w", err)
	}

	items, err := r.list(ctx, selectContracts().
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())))
	if err != nil {
		return domain.ContractPage{}, err
	}

	return domain.ContractPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ListByStatus returns every contract in status, ordered by expiry.
// The sweep uses it to scan active contracts.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	return r.list(ctx, selectContracts().
		Where(squirrel.Eq{"status": string(status)}).
		OrderBy("expiry_date ASC", "id"))
}

// ListExpiring returns active contracts with expiry in [from, to], soonest
// first. limit <= 0 means unlimited.
func (r *Repo) ListExpiring(ctx context.Context, scope domain.DashboardScope, from, to time.Time, limit int) ([]domain.Contract, error) {
	b := selectContracts().
		Where(squirrel.Eq{"status": string(domain.ContractStatusActive)}).
		Where(squirrel.GtOrEq{"expiry_date": from}).
		Where(squirrel.LtOrEq{"expiry_date": to}).
		Where(scopeCondition(scope)).
		OrderBy("expiry_date ASC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.list(ctx, b)
}

// ---------------------------------------------------------------------------
// Dashboard aggregates
// ---------------------------------------------------------------------------

// CountByStatus returns contract counts keyed by status within scope.
func (r *Repo) CountByStatus(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractStatus]int, error) {
	out := make(map[domain.ContractStatus]int)
	err := r.groupCount(ctx, "status", scope, func(key string, n int) {
		out[domain.ContractStatus(key)] = n
	})
	if err != nil {
		return nil, fmt.Errorf("count contracts by status: %w", err)
	}
	return out, nil
}

// CountByType returns contract counts keyed by type within scope.
func (r *Repo) CountByType(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractType]int, error) {
	out := make(map[domain.ContractType]int)
	err := r.groupCount(ctx, "type", scope, func(key string, n int) {
		out[domain.ContractType(key)] = n
	})
	if err != nil {
		return nil, fmt.Errorf("count contracts by type: %w", err)
	}
	return out, nil
}

// CountCreatedSince counts contracts created at or after since within scope.
func (r *Repo) CountCreatedSince(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("count(*)").
		From(table).
		Where(scopeCondition(scope)).
		Where(squirrel.GtOrEq{"created_at": since}))
	if err != nil {
		return 0, fmt.Errorf("count contracts created since: %w", err)
	}
	return n, nil
}

// ListRecent returns the most recently updated contracts within scope.
func (r *Repo) ListRecent(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Contract, error) {
	return r.list(ctx, selectContracts().
		Where(scopeCondition(scope)).
		OrderBy("updated_at DESC", "id").
		Limit(uint64(limit)))
}

// ListActiveValues returns type, value and currency for every active
// contract within scope.
func (r *Repo) ListActiveValues(ctx context.Context, scope domain.DashboardScope) ([]domain.ContractValueRow, error) {
	sql, args, err := postgres.Builder().
		Select("type", "contract_value::text", "currency").
		From(table).
		Where(squirrel.Eq{"status": string(domain.ContractStatusActive)}).
		Where(scopeCondition(scope)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select contract values: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query contract values: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContractValueRow, 0)
	for rows.Next() {
		var (
			typ   string
			value pgtype.Text
			row   domain.ContractValueRow
		)
		if err := rows.Scan(&typ, &value, &row.Currency); err != nil {
			return nil, fmt.Errorf("scan contract value: %w", err)
		}
		row.Type = domain.ContractType(typ)
		if value.Valid {
			row.Value = &value.String
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contract values: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectContracts() squirrel.SelectBuilder {
	return postgres.Builder().Select(selectColumns...).From(table)
}

// filterConditions translates a ContractFilter into a WHERE clause.
func filterConditions(f domain.ContractFilter) squirrel.And {
	and := squirrel.And{}
	if f.Type != nil {
		and = append(and, squirrel.Eq{"type": string(*f.Type)})
	}
	if f.Status != nil {
		and = append(and, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Department != nil && *f.Department != "" {
		and = append(and, squirrel.ILike{"department": contains(*f.Department)})
	}
	if f.Project != nil && *f.Project != "" {
		and = append(and, squirrel.ILike{"project": contains(*f.Project)})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := contains(*f.Search)
		and = append(and, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"counterparty_name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if f.OwnerID != nil {
		and = append(and, squirrel.Eq{"owner_id": *f.OwnerID})
	}
	return and
}

// scopeCondition restricts to the scope's owner; global scopes match all.
func scopeCondition(scope domain.DashboardScope) squirrel.Sqlizer {
	if scope.IsGlobal() {
		return squirrel.And{}
	}
	return squirrel.Eq{"owner_id": *scope.UserID}
}

// contains builds an ILIKE pattern, escaping wildcard characters in s.
func contains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func (r *Repo) groupCount(ctx context.Context, column string, scope domain.DashboardScope, fn func(key string, n int)) error {
	sql, args, err := postgres.Builder().
		Select(column, "count(*)").
		From(table).
		Where(scopeCondition(scope)).
		GroupBy(column).
		ToSql()
	if err != nil {
		return err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		fn(key, n)
	}
	return rows.Err()
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Contract, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select contracts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}
	return out, nil
}

// scanContract reads one row in selectColumns order.
func scanContract(row pgx.Row) (domain.Contract, error) {
	var (
		c            domain.Contract
		typ, status  string
		frequency    pgtype.Text
		value        pgtype.Text
		customFields []byte
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &typ, &status,
		&c.CounterpartyName, &c.CounterpartyEmail, &c.CounterpartyPhone,
		&c.EffectiveDate, &c.ExpiryDate, &c.RenewalDate, &c.AutoRenew, &frequency, &c.RenewalNoticeDays,
		&value, &c.Currency, &c.Department, &c.Project, &c.CostCenter,
		&c.DocumentURL, &c.DocumentType, &c.Tags, &customFields, &c.Notes,
		&c.OwnerID, &c.StakeholderID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Contract{}, err
	}

	c.Type = domain.ContractType(typ)
	c.Status = domain.ContractStatus(status)
	if frequency.Valid {
		f := domain.RenewalFrequency(frequency.String)
		c.RenewalFrequency = &f
	}
	if value.Valid {
		c.ContractValue = &value.String
	}
	if len(customFields) > 0 {
		if err := json.Unmarshal(customFields, &c.CustomFields); err != nil {
			return domain.Contract{}, fmt.Errorf("contract %s unmarshal custom_fields: %w", c.ID, err)
		}
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Value helpers
// ---------------------------------------------------------------------------

// numeric casts a decimal string through text so pgx never has to guess
// a Go type for the numeric column.
func numeric(v *string) squirrel.Sqlizer {
	return squirrel.Expr("?::text::numeric", v)
}

func renewalFrequency(f *domain.RenewalFrequency) *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}

func tags(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}

// marshalJSON encodes m for a jsonb column; empty maps are stored as NULL.
func marshalJSON(m map[string]any) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}
