package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
	"github.com/heartmarshall/contracts-backend/internal/service/task"
)

type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Task, error)
	AddDependency(ctx context.Context, input task.DependencyInput) (*domain.TaskDependency, error)
	RemoveDependency(ctx context.Context, input task.DependencyInput) error
	ListDependencies(ctx context.Context, taskID uuid.UUID) ([]domain.TaskDependency, error)
}

// TaskHandler serves /tasks and /contracts/{id}/tasks.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

// Routes mounts the /tasks endpoints.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/my", h.ListMine)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/dependencies", h.ListDependencies)
	r.Post("/{id}/dependencies", h.AddDependency)
	r.Delete("/{id}/dependencies/{dependsOn}", h.RemoveDependency)
}

// ContractRoutes mounts the endpoints nested under a contract.
func (h *TaskHandler) ContractRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.ListByContract)
}

type createTaskRequest struct {
	Title       string         `json:"title"       validate:"required,max=255"`
	Description *string        `json:"description"`
	Type        string         `json:"type"        validate:"required,oneof=approval signature review negotiation renewal termination custom"`
	Category    *string        `json:"category"    validate:"omitempty,oneof=general legal finance hr"`
	Priority    *string        `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time     `json:"dueDate"`
	AssignedTo  *uuid.UUID     `json:"assignedTo"`
	Metadata    map[string]any `json:"metadata"`
}

type updateTaskRequest struct {
	Title       *string        `json:"title"       validate:"omitempty,max=255"`
	Description *string        `json:"description"`
	Type        *string        `json:"type"        validate:"omitempty,oneof=approval signature review negotiation renewal termination custom"`
	Status      *string        `json:"status"      validate:"omitempty,oneof=pending in_progress completed overdue cancelled"`
	Priority    *string        `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time     `json:"dueDate"`
	AssignedTo  *uuid.UUID     `json:"assignedTo"`
	Metadata    map[string]any `json:"metadata"`
}

type addDependencyRequest struct {
	DependsOnID uuid.UUID `json:"dependsOnId" validate:"required"`
}

// Create handles POST /contracts/{id}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := task.CreateTaskInput{
		ContractID:  contractID,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.TaskType(req.Type),
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Metadata:    req.Metadata,
	}
	if req.Category != nil {
		c := domain.TaskCategory(*req.Category)
		input.Category = &c
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}

	t, err := h.svc.CreateTask(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponses(r.Context(), []domain.Task{*t})[0])
}

// ListByContract handles GET /contracts/{id}/tasks.
func (h *TaskHandler) ListByContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, err := h.svc.ListByContract(r.Context(), contractID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(r.Context(), tasks))
}

// ListMine handles GET /tasks/my?status=&userId=. userId defaults to the
// caller.
func (h *TaskHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var userID uuid.UUID
	if raw := q.Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("userId", "invalid id"))
			return
		}
		userID = id
	}
	var status *domain.TaskStatus
	if raw := q.Get("status"); raw != "" {
		s := domain.TaskStatus(raw)
		status = &s
	}

	tasks, err := h.svc.ListByUser(r.Context(), userID, status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(r.Context(), tasks))
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Metadata:    req.Metadata,
	}
	if req.Type != nil {
		t := domain.TaskType(*req.Type)
		patch.Type = &t
	}
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		patch.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}

	t, err := h.svc.UpdateTask(r.Context(), task.UpdateTaskInput{TaskID: id, Patch: patch})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(r.Context(), []domain.Task{*t})[0])
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDependencies handles GET /tasks/{id}/dependencies.
func (h *TaskHandler) ListDependencies(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	deps, err := h.svc.ListDependencies(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDependencyResponses(deps))
}

// AddDependency handles POST /tasks/{id}/dependencies.
func (h *TaskHandler) AddDependency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addDependencyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dep, err := h.svc.AddDependency(r.Context(), task.DependencyInput{TaskID: id, DependsOnID: req.DependsOnID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDependencyResponses([]domain.TaskDependency{*dep})[0])
}

// RemoveDependency handles DELETE /tasks/{id}/dependencies/{dependsOn}.
func (h *TaskHandler) RemoveDependency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	dependsOn, err := pathID(r, "dependsOn")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveDependency(r.Context(), task.DependencyInput{TaskID: id, DependsOnID: dependsOn}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
