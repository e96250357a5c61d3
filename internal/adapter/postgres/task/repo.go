// Package task implements the Task and TaskDependency repositories using
// PostgreSQL.
package task

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

const (
	table           = "tasks"
	dependencyTable = "task_dependencies"
)

var columns = []string{
	"id", "title", "description", "type", "category", "status", "priority",
	"due_date", "completed_date", "metadata", "contract_id", "assigned_to",
	"created_by", "created_at", "updated_at",
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new task and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	metadata, err := marshalJSON(t.Metadata)
	if err != nil {
		return nil, fmt.Errorf("task %s marshal metadata: %w", t.ID, err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.Title, t.Description, string(t.Type), string(t.Category), string(t.Status), string(t.Priority),
			t.DueDate, t.CompletedDate, metadata, t.ContractID, t.AssignedTo,
			t.CreatedBy, t.CreatedAt, t.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert task: %w", err)
	}

	got, err := scanTask(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return &got, nil
}

// Update overwrites the mutable columns of t. Last write wins.
func (r *Repo) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	metadata, err := marshalJSON(t.Metadata)
	if err != nil {
		return nil, fmt.Errorf("task %s marshal metadata: %w", t.ID, err)
	}

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":          t.Title,
			"description":    t.Description,
			"type":           string(t.Type),
			"status":         string(t.Status),
			"priority":       string(t.Priority),
			"due_date":       t.DueDate,
			"completed_date": t.CompletedDate,
			"metadata":       metadata,
			"assigned_to":    t.AssignedTo,
			"updated_at":     t.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	got, err := scanTask(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return &got, nil
}

// Delete hard-deletes a task. Dependency edges cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	sql, args, err := selectTasks().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select task: %w", err)
	}

	t, err := scanTask(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &t, nil
}

// List returns tasks matching filter. Tasks with a due date come first,
// earliest due first, then newest created.
func (r *Repo) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	b := selectTasks().OrderBy("due_date ASC NULLS LAST", "created_at DESC", "id")
	if filter.ContractID != nil {
		b = b.Where(squirrel.Eq{"contract_id": *filter.ContractID})
	}
	if filter.AssignedTo != nil {
		b = b.Where(squirrel.Eq{"assigned_to": *filter.AssignedTo})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.DueBefore != nil {
		b = b.Where(squirrel.Lt{"due_date": *filter.DueBefore})
	}
	return r.list(ctx, b)
}

// ListPendingAssignedWithDue returns every pending task that has both an
// assignee and a due date. The sweep's task pass reads this.
func (r *Repo) ListPendingAssignedWithDue(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, selectTasks().
		Where(squirrel.Eq{"status": string(domain.TaskStatusPending)}).
		Where(squirrel.NotEq{"assigned_to": nil}).
		Where(squirrel.NotEq{"due_date": nil}).
		OrderBy("due_date ASC", "id"))
}

// ---------------------------------------------------------------------------
// Dependencies
// ---------------------------------------------------------------------------

// AddDependency inserts the edge taskID -> dependsOnID. A duplicate edge
// maps to domain.ErrAlreadyExists.
func (r *Repo) AddDependency(ctx context.Context, dep domain.TaskDependency) error {
	_, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(dependencyTable).
		Columns("task_id", "depends_on_id", "created_at").
		Values(dep.TaskID, dep.DependsOnID, dep.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "task_dependency", dep.TaskID)
	}
	return nil
}

// RemoveDependency deletes one edge.
func (r *Repo) RemoveDependency(ctx context.Context, taskID, dependsOnID uuid.UUID) error {
	n, err := postgres.ExecBuilder(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Delete(dependencyTable).
		Where(squirrel.Eq{"task_id": taskID, "depends_on_id": dependsOnID}))
	if err != nil {
		return postgres.MapError(err, "task_dependency", taskID)
	}
	if n == 0 {
		return fmt.Errorf("task_dependency %s -> %s: %w", taskID, dependsOnID, domain.ErrNotFound)
	}
	return nil
}

// ListDependencies returns the direct dependencies of taskID.
func (r *Repo) ListDependencies(ctx context.Context, taskID uuid.UUID) ([]domain.TaskDependency, error) {
	sql, args, err := postgres.Builder().
		Select("task_id", "depends_on_id", "created_at").
		From(dependencyTable).
		Where(squirrel.Eq{"task_id": taskID}).
		OrderBy("created_at ASC", "depends_on_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select dependencies: %w", err)
	}
	return r.queryEdges(ctx, sql, args)
}

// ReachableEdges returns every edge reachable by following dependencies
// from start. The caller builds a domain.DependencyGraph from them.
func (r *Repo) ReachableEdges(ctx context.Context, start uuid.UUID) ([]domain.TaskDependency, error) {
	const sql = `
WITH RECURSIVE reach AS (
    SELECT task_id, depends_on_id, created_at
      FROM task_dependencies
     WHERE task_id = $1
    UNION
    SELECT d.task_id, d.depends_on_id, d.created_at
      FROM task_dependencies d
      JOIN reach r ON d.task_id = r.depends_on_id
)
SELECT task_id, depends_on_id, created_at FROM reach`
	return r.queryEdges(ctx, sql, []any{start})
}

func (r *Repo) queryEdges(ctx context.Context, sql string, args []any) ([]domain.TaskDependency, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TaskDependency, 0)
	for rows.Next() {
		var d domain.TaskDependency
		if err := rows.Scan(&d.TaskID, &d.DependsOnID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dependencies: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Dashboard aggregates
// ---------------------------------------------------------------------------

// CountByStatus returns task counts keyed by status within scope.
func (r *Repo) CountByStatus(ctx context.Context, scope domain.DashboardScope) (map[domain.TaskStatus]int, error) {
	sql, args, err := postgres.Builder().
		Select("status", "count(*)").
		From(table).
		Where(scopeCondition(scope)).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count tasks by status: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.TaskStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan task count: %w", err)
		}
		out[domain.TaskStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task counts: %w", err)
	}
	return out, nil
}

// CountOverdue counts pending tasks due before now within scope.
func (r *Repo) CountOverdue(ctx context.Context, scope domain.DashboardScope, now time.Time) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("count(*)").
		From(table).
		Where(overdueCondition(now)).
		Where(scopeCondition(scope)))
	if err != nil {
		return 0, fmt.Errorf("count overdue tasks: %w", err)
	}
	return n, nil
}

// CountCreatedSince counts tasks created at or after since within scope.
func (r *Repo) CountCreatedSince(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.GtOrEq{"created_at": since}).
		Where(scopeCondition(scope)))
	if err != nil {
		return 0, fmt.Errorf("count tasks created since: %w", err)
	}
	return n, nil
}

// ListRecent returns the most recently updated tasks within scope.
func (r *Repo) ListRecent(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Task, error) {
	return r.list(ctx, selectTasks().
		Where(scopeCondition(scope)).
		OrderBy("updated_at DESC", "id").
		Limit(uint64(limit)))
}

// ListOverdue returns pending tasks due before now, most overdue first.
func (r *Repo) ListOverdue(ctx context.Context, scope domain.DashboardScope, now time.Time, limit int) ([]domain.Task, error) {
	return r.list(ctx, selectTasks().
		Where(overdueCondition(now)).
		Where(scopeCondition(scope)).
		OrderBy("due_date ASC", "id").
		Limit(uint64(limit)))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectTasks() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func overdueCondition(now time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Eq{"status": string(domain.TaskStatusPending)},
		squirrel.Lt{"due_date": now},
	}
}

// scopeCondition limits tasks to those assigned to the scope's user or on
// contracts the user owns.
func scopeCondition(scope domain.DashboardScope) squirrel.Sqlizer {
	if scope.IsGlobal() {
		return squirrel.And{}
	}
	return squirrel.Or{
		squirrel.Eq{"assigned_to": *scope.UserID},
		squirrel.Expr("contract_id IN (SELECT id FROM contracts WHERE owner_id = ?)", *scope.UserID),
	}
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Task, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tasks: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// scanTask reads one row in `columns` order.
func scanTask(row pgx.Row) (domain.Task, error) {
	var (
		t                               domain.Task
		typ, category, status, priority string
		metadata                        []byte
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &typ, &category, &status, &priority,
		&t.DueDate, &t.CompletedDate, &metadata, &t.ContractID, &t.AssignedTo,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	t.Type = domain.TaskType(typ)
	t.Category = domain.TaskCategory(category)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
			return domain.Task{}, fmt.Errorf("task %s unmarshal metadata: %w", t.ID, err)
		}
	}
	return t, nil
}

// marshalJSON encodes m for a jsonb column; empty maps are stored as NULL.
func marshalJSON(m map[string]any) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}
