package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

type dashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
	GetValueAnalytics(ctx context.Context) (*domain.ValueAnalytics, error)
}

// DashboardHandler serves /dashboard.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Routes mounts the dashboard endpoints.
func (h *DashboardHandler) Routes(r chi.Router) {
	r.Get("/stats", h.Stats)
	r.Get("/value-analytics", h.ValueAnalytics)
}

type contractStatsResponse struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Draft      int            `json:"draft"`
	Expired    int            `json:"expired"`
	Terminated int            `json:"terminated"`
	ThisMonth  int            `json:"thisMonth"`
	ByStatus   map[string]int `json:"byStatus"`
	ByType     map[string]int `json:"byType"`
}

type taskStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	ThisMonth int `json:"thisMonth"`
}

type notificationStatsResponse struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	ThisWeek int `json:"thisWeek"`
}

type dashboardStatsResponse struct {
	Contracts         contractStatsResponse     `json:"contracts"`
	Tasks             taskStatsResponse         `json:"tasks"`
	Notifications     notificationStatsResponse `json:"notifications"`
	RecentContracts   []contractResponse        `json:"recentContracts"`
	RecentTasks       []taskResponse            `json:"recentTasks"`
	ExpiringContracts []contractResponse        `json:"expiringContracts"`
	OverdueTasks      []taskResponse            `json:"overdueTasks"`
	GeneratedAt       time.Time                 `json:"generatedAt"`
}

type valueAnalyticsResponse struct {
	TotalValue    string            `json:"totalValue"`
	ValueByType   map[string]string `json:"valueByType"`
	ContractCount int               `json:"contractCount"`
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ctx := r.Context()
	byStatus := make(map[string]int, len(stats.Contracts.ByStatus))
	for k, v := range stats.Contracts.ByStatus {
		byStatus[k.String()] = v
	}
	byType := make(map[string]int, len(stats.Contracts.ByType))
	for k, v := range stats.Contracts.ByType {
		byType[k.String()] = v
	}

	writeJSON(w, http.StatusOK, dashboardStatsResponse{
		Contracts: contractStatsResponse{
			Total:      stats.Contracts.Total,
			Active:     stats.Contracts.Active,
			Draft:      stats.Contracts.Draft,
			Expired:    stats.Contracts.Expired,
			Terminated: stats.Contracts.Terminated,
			ThisMonth:  stats.Contracts.ThisMonth,
			ByStatus:   byStatus,
			ByType:     byType,
		},
		Tasks: taskStatsResponse{
			Total:     stats.Tasks.Total,
			Pending:   stats.Tasks.Pending,
			Completed: stats.Tasks.Completed,
			Overdue:   stats.Tasks.Overdue,
			ThisMonth: stats.Tasks.ThisMonth,
		},
		Notifications: notificationStatsResponse{
			Total:    stats.Notifications.Total,
			Unread:   stats.Notifications.Unread,
			ThisWeek: stats.Notifications.ThisWeek,
		},
		RecentContracts:   toContractResponses(ctx, stats.RecentContracts),
		RecentTasks:       toTaskResponses(ctx, stats.RecentTasks),
		ExpiringContracts: toContractResponses(ctx, stats.ExpiringContracts),
		OverdueTasks:      toTaskResponses(ctx, stats.OverdueTasks),
		GeneratedAt:       stats.GeneratedAt,
	})
}

// ValueAnalytics handles GET /dashboard/value-analytics. Amounts are
// rendered as fixed two-decimal strings.
func (h *DashboardHandler) ValueAnalytics(w http.ResponseWriter, r *http.Request) {
	va, err := h.svc.GetValueAnalytics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	byType := make(map[string]string, len(va.ValueByType))
	for k, v := range va.ValueByType {
		byType[k.String()] = v.StringFixed(2)
	}

	writeJSON(w, http.StatusOK, valueAnalyticsResponse{
		TotalValue:    va.TotalValue.StringFixed(2),
		ValueByType:   byType,
		ContractCount: va.ContractCount,
	})
}
