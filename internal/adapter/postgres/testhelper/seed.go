package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "staff-" + suffix + "@example.com",
		FirstName: "Test",
		LastName:  "User " + suffix,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, first_name, last_name, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.FirstName, user.LastName, string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// DeactivateUser flips is_active off for an existing user.
func DeactivateUser(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `UPDATE users SET is_active = false WHERE id = $1`, id); err != nil {
		t.Fatalf("testhelper: DeactivateUser: %v", err)
	}
}

// SeedContract creates a contract owned by ownerID. Defaults: supplier,
// draft, effective yesterday, expiring in 90 days. opts adjust the
// contract before insert.
func SeedContract(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...func(*domain.Contract)) domain.Contract {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Contract{
		ID:                uuid.New(),
		Title:             "Contract " + suffix,
		Type:              domain.ContractTypeSupplier,
		Status:            domain.ContractStatusDraft,
		CounterpartyName:  "Acme " + suffix,
		EffectiveDate:     now.AddDate(0, 0, -1),
		ExpiryDate:        now.AddDate(0, 0, 90),
		RenewalNoticeDays: 30,
		Currency:          "USD",
		Tags:              []string{},
		OwnerID:           ownerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(&c)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contracts (id, title, description, type, status, counterparty_name, effective_date, expiry_date,
		                        renewal_notice_days, contract_value, currency, department, project, tags, notes,
		                        owner_id, stakeholder_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::numeric, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		c.ID, c.Title, c.Description, string(c.Type), string(c.Status), c.CounterpartyName, c.EffectiveDate, c.ExpiryDate,
		c.RenewalNoticeDays, c.ContractValue, c.Currency, c.Department, c.Project, c.Tags, c.Notes,
		c.OwnerID, c.StakeholderID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContract insert: %v", err)
	}

	return c
}

// SeedTask creates a pending medium-priority review task on contractID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, contractID, createdBy uuid.UUID, opts ...func(*domain.Task)) domain.Task {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:         uuid.New(),
		Title:      "Review " + uniqueSuffix(),
		Type:       domain.TaskTypeReview,
		Category:   domain.TaskCategoryGeneral,
		Status:     domain.TaskStatusPending,
		Priority:   domain.PriorityMedium,
		ContractID: contractID,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(&task)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, title, type, category, status, priority, due_date, completed_date,
		                    contract_id, assigned_to, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		task.ID, task.Title, string(task.Type), string(task.Category), string(task.Status), string(task.Priority),
		task.DueDate, task.CompletedDate, task.ContractID, task.AssignedTo, task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert: %v", err)
	}

	return task
}

// SeedNotification creates an unread system_alert notification for recipientID.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, recipientID uuid.UUID, opts ...func(*domain.Notification)) domain.Notification {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	n := domain.Notification{
		ID:          uuid.New(),
		Type:        domain.NotificationSystemAlert,
		Title:       "Alert " + uniqueSuffix(),
		Message:     "seeded",
		Priority:    domain.PriorityMedium,
		Status:      domain.NotificationStatusUnread,
		RecipientID: recipientID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&n)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notifications (id, type, title, message, priority, status, recipient_id, contract_id, task_id,
		                            read_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		n.ID, string(n.Type), n.Title, n.Message, string(n.Priority), string(n.Status), n.RecipientID,
		n.ContractID, n.TaskID, n.ReadAt, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification insert: %v", err)
	}

	return n
}
