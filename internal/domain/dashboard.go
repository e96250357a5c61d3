package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardScope restricts aggregate queries. A nil UserID means global
// visibility; otherwise contracts are limited to those owned by UserID and
// tasks to those on such contracts or assigned to UserID.
type DashboardScope struct {
	UserID *uuid.UUID
}

// ScopeFor derives the dashboard scope from the caller's role.
func ScopeFor(actor Actor) DashboardScope {
	if actor.Role.SeesAllContracts() {
		return DashboardScope{}
	}
	id := actor.ID
	return DashboardScope{UserID: &id}
}

// IsGlobal reports whether the scope is unrestricted.
func (s DashboardScope) IsGlobal() bool { return s.UserID == nil }

// ContractStats are contract counts within a scope.
type ContractStats struct {
	Total      int
	Active     int
	Draft      int
	Expired    int
	Terminated int
	ThisMonth  int
	ByStatus   map[ContractStatus]int
	ByType     map[ContractType]int
}

// TaskStats are task counts within a scope.
type TaskStats struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int // pending with due date in the past
	ThisMonth int
}

// NotificationStats are counts for the caller's own notifications.
type NotificationStats struct {
	Total    int
	Unread   int
	ThisWeek int
}

// DashboardStats is the full dashboard rollup.
type DashboardStats struct {
	Contracts         ContractStats
	Tasks             TaskStats
	Notifications     NotificationStats
	RecentContracts   []Contract
	RecentTasks       []Task
	ExpiringContracts []Contract
	OverdueTasks      []Task
	GeneratedAt       time.Time
}

// ContractValueRow is the projection used for value analytics.
type ContractValueRow struct {
	Type     ContractType
	Value    *string
	Currency string
}

// ValueAnalytics sums the value of active contracts.
type ValueAnalytics struct {
	TotalValue    decimal.Decimal
	ValueByType   map[ContractType]decimal.Decimal
	ContractCount int
}
