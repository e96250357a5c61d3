package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
	"github.com/heartmarshall/contracts-backend/internal/service/notification"
)

type notificationService interface {
	ListNotifications(ctx context.Context, input notification.ListInput) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context) (int, error)
	UnreadCount(ctx context.Context) (int, error)
}

// NotificationHandler serves the caller's inbox under /notifications.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// Routes mounts the notification endpoints.
func (h *NotificationHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/unread-count", h.UnreadCount)
	r.Patch("/mark-all-read", h.MarkAllRead)
	r.Patch("/{id}/read", h.MarkRead)
}

type countResponse struct {
	Count int `json:"count"`
}

// List handles GET /notifications?status=&limit=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := notification.ListInput{Limit: limit}
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.NotificationStatus(raw)
		input.Status = &s
	}

	items, err := h.svc.ListNotifications(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, out)
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// MarkRead handles PATCH /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.MarkAsRead(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNotificationResponse(*n))
}

// MarkAllRead handles PATCH /notifications/mark-all-read.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllAsRead(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: n})
}
