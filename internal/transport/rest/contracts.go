package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
	"github.com/heartmarshall/contracts-backend/internal/service/contract"
)

type contractService interface {
	CreateContract(ctx context.Context, input contract.CreateContractInput) (*domain.Contract, error)
	UpdateContract(ctx context.Context, input contract.UpdateContractInput) (*domain.Contract, error)
	UpdateStatus(ctx context.Context, input contract.UpdateStatusInput) (*domain.Contract, error)
	Approve(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error)
	Reject(ctx context.Context, input contract.RejectInput) (*domain.Contract, error)
	DeleteContract(ctx context.Context, contractID uuid.UUID) error
	GetContract(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error)
	ListContracts(ctx context.Context, input contract.ListContractsInput) (domain.ContractPage, error)
	ListByType(ctx context.Context, typ domain.ContractType, page int, limit int) (domain.ContractPage, error)
	ListByStatus(ctx context.Context, status domain.ContractStatus, page int, limit int) (domain.ContractPage, error)
	GetExpiringContracts(ctx context.Context, days int) ([]domain.Contract, error)
}

// ContractHandler serves /contracts.
type ContractHandler struct {
	svc contractService
	log *slog.Logger
}

// NewContractHandler creates a ContractHandler.
func NewContractHandler(svc contractService, logger *slog.Logger) *ContractHandler {
	return &ContractHandler{svc: svc, log: logger.With("handler", "contract")}
}

// Routes mounts the contract endpoints.
func (h *ContractHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/expiring", h.Expiring)
	r.Get("/type/{type}", h.ListByType)
	r.Get("/status/{status}", h.ListByStatus)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/approve", h.Approve)
	r.Post("/{id}/reject", h.Reject)
	r.Patch("/{id}/status", h.UpdateStatus)
}

type createContractRequest struct {
	Title             string         `json:"title"             validate:"required,max=255"`
	Description       *string        `json:"description"`
	Type              string         `json:"type"              validate:"required,oneof=supplier service employee"`
	CounterpartyName  string         `json:"counterpartyName"  validate:"required,max=255"`
	CounterpartyEmail *string        `json:"counterpartyEmail" validate:"omitempty,email"`
	CounterpartyPhone *string        `json:"counterpartyPhone" validate:"omitempty,max=50"`
	EffectiveDate     time.Time      `json:"effectiveDate"     validate:"required"`
	ExpiryDate        time.Time      `json:"expiryDate"        validate:"required"`
	RenewalDate       *time.Time     `json:"renewalDate"`
	AutoRenew         bool           `json:"autoRenew"`
	RenewalFrequency  *string        `json:"renewalFrequency"  validate:"omitempty,oneof=monthly quarterly biannual annual biennial custom"`
	RenewalNoticeDays *int           `json:"renewalNoticeDays" validate:"omitempty,min=0"`
	ContractValue     *string        `json:"contractValue"     validate:"omitempty,numeric"`
	Currency          *string        `json:"currency"          validate:"omitempty,len=3"`
	Department        *string        `json:"department"        validate:"omitempty,max=100"`
	Project           *string        `json:"project"           validate:"omitempty,max=100"`
	CostCenter        *string        `json:"costCenter"        validate:"omitempty,max=50"`
	DocumentURL       *string        `json:"documentUrl"       validate:"omitempty,url"`
	DocumentType      *string        `json:"documentType"      validate:"omitempty,max=50"`
	Tags              []string       `json:"tags"              validate:"omitempty,dive,max=50"`
	CustomFields      map[string]any `json:"customFields"`
	Notes             *string        `json:"notes"`
	StakeholderID     *uuid.UUID     `json:"stakeholderId"`
}

type updateContractRequest struct {
	Title             *string        `json:"title"             validate:"omitempty,max=255"`
	Description       *string        `json:"description"`
	Type              *string        `json:"type"              validate:"omitempty,oneof=supplier service employee"`
	CounterpartyName  *string        `json:"counterpartyName"  validate:"omitempty,max=255"`
	CounterpartyEmail *string        `json:"counterpartyEmail" validate:"omitempty,email"`
	CounterpartyPhone *string        `json:"counterpartyPhone" validate:"omitempty,max=50"`
	EffectiveDate     *time.Time     `json:"effectiveDate"`
	ExpiryDate        *time.Time     `json:"expiryDate"`
	RenewalDate       *time.Time     `json:"renewalDate"`
	AutoRenew         *bool          `json:"autoRenew"`
	RenewalFrequency  *string        `json:"renewalFrequency"  validate:"omitempty,oneof=monthly quarterly biannual annual biennial custom"`
	RenewalNoticeDays *int           `json:"renewalNoticeDays" validate:"omitempty,min=0"`
	ContractValue     *string        `json:"contractValue"     validate:"omitempty,numeric"`
	Currency          *string        `json:"currency"          validate:"omitempty,len=3"`
	Department        *string        `json:"department"        validate:"omitempty,max=100"`
	Project           *string        `json:"project"           validate:"omitempty,max=100"`
	CostCenter        *string        `json:"costCenter"        validate:"omitempty,max=50"`
	DocumentURL       *string        `json:"documentUrl"       validate:"omitempty,url"`
	DocumentType      *string        `json:"documentType"      validate:"omitempty,max=50"`
	Tags              []string       `json:"tags"              validate:"omitempty,dive,max=50"`
	CustomFields      map[string]any `json:"customFields"`
	Notes             *string        `json:"notes"`
	StakeholderID     *uuid.UUID     `json:"stakeholderId"`
	ClearStakeholder  bool           `json:"clearStakeholder"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active expiring_soon expired renewed terminated"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

// Create handles POST /contracts.
func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.CreateContract(r.Context(), contract.CreateContractInput{
		Title:             req.Title,
		Description:       req.Description,
		Type:              domain.ContractType(req.Type),
		CounterpartyName:  req.CounterpartyName,
		CounterpartyEmail: req.CounterpartyEmail,
		CounterpartyPhone: req.CounterpartyPhone,
		EffectiveDate:     req.EffectiveDate,
		ExpiryDate:        req.ExpiryDate,
		RenewalDate:       req.RenewalDate,
		AutoRenew:         req.AutoRenew,
		RenewalFrequency:  renewalFrequency(req.RenewalFrequency),
		RenewalNoticeDays: req.RenewalNoticeDays,
		ContractValue:     req.ContractValue,
		Currency:          req.Currency,
		Department:        req.Department,
		Project:           req.Project,
		CostCenter:        req.CostCenter,
		DocumentURL:       req.DocumentURL,
		DocumentType:      req.DocumentType,
		Tags:              req.Tags,
		CustomFields:      req.CustomFields,
		Notes:             req.Notes,
		StakeholderID:     req.StakeholderID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.one(r.Context(), *c))
}

// List handles GET /contracts.
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := contract.ListContractsInput{
		Department: queryOrNil(q.Get("department")),
		Project:    queryOrNil(q.Get("project")),
		Search:     queryOrNil(q.Get("search")),
		Page:       page,
		Limit:      limit,
	}
	if v := q.Get("type"); v != "" {
		t := domain.ContractType(v)
		input.Type = &t
	}
	if v := q.Get("status"); v != "" {
		s := domain.ContractStatus(v)
		input.Status = &s
	}

	result, err := h.svc.ListContracts(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContractPageResponse(r.Context(), result))
}

// ListByType handles GET /contracts/type/{type}.
func (h *ContractHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListByType(r.Context(), domain.ContractType(chi.URLParam(r, "type")), page, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContractPageResponse(r.Context(), result))
}

// ListByStatus handles GET /contracts/status/{status}.
func (h *ContractHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pagination(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListByStatus(r.Context(), domain.ContractStatus(chi.URLParam(r, "status")), page, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContractPageResponse(r.Context(), result))
}

// Expiring handles GET /contracts/expiring?days=N.
func (h *ContractHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	contracts, err := h.svc.GetExpiringContracts(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContractResponses(r.Context(), contracts))
}

// Get handles GET /contracts/{id}.
func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.GetContract(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.one(r.Context(), *c))
}

// Update handles PATCH /contracts/{id}.
func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateContractRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	patch := domain.ContractPatch{
		Title:             req.Title,
		Description:       req.Description,
		CounterpartyName:  req.CounterpartyName,
		CounterpartyEmail: req.CounterpartyEmail,
		CounterpartyPhone: req.CounterpartyPhone,
		EffectiveDate:     req.EffectiveDate,
		ExpiryDate:        req.ExpiryDate,
		RenewalDate:       req.RenewalDate,
		AutoRenew:         req.AutoRenew,
		RenewalFrequency:  renewalFrequency(req.RenewalFrequency),
		RenewalNoticeDays: req.RenewalNoticeDays,
		ContractValue:     req.ContractValue,
		Currency:          req.Currency,
		Department:        req.Department,
		Project:           req.Project,
		CostCenter:        req.CostCenter,
		DocumentURL:       req.DocumentURL,
		DocumentType:      req.DocumentType,
		Tags:              req.Tags,
		CustomFields:      req.CustomFields,
		Notes:             req.Notes,
		StakeholderID:     req.StakeholderID,
		ClearStakeholder:  req.ClearStakeholder,
	}
	if req.Type != nil {
		t := domain.ContractType(*req.Type)
		patch.Type = &t
	}

	c, err := h.svc.UpdateContract(r.Context(), contract.UpdateContractInput{ContractID: id, Patch: patch})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.one(r.Context(), *c))
}

// Delete handles DELETE /contracts/{id}.
func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteContract(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Approve handles POST /contracts/{id}/approve.
func (h *ContractHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.one(r.Context(), *c))
}

// Reject handles POST /contracts/{id}/reject.
func (h *ContractHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Reject(r.Context(), contract.RejectInput{ContractID: id, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.one(r.Context(), *c))
}

// UpdateStatus handles PATCH /contracts/{id}/status.
func (h *ContractHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), contract.UpdateStatusInput{
		ContractID: id,
		Status:     domain.ContractStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.one(r.Context(), *c))
}

func (h *ContractHandler) one(ctx context.Context, c domain.Contract) contractResponse {
	return toContractResponses(ctx, []domain.Contract{c})[0]
}

func renewalFrequency(s *string) *domain.RenewalFrequency {
	if s == nil {
		return nil
	}
	f := domain.RenewalFrequency(*s)
	return &f
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func pagination(r *http.Request) (page, limit int, err error) {
	if page, err = queryInt(r, "page"); err != nil {
		return 0, 0, err
	}
	if limit, err = queryInt(r, "limit"); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

// queryInt parses an optional integer query parameter. Absent is 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

func queryOrNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
