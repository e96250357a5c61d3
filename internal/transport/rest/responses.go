package rest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/contracts-backend/internal/domain"
	dl "github.com/heartmarshall/contracts-backend/internal/transport/dataloader"
)

type userSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
}

type contractResponse struct {
	ID                uuid.UUID            `json:"id"`
	Title             string               `json:"title"`
	Description       *string              `json:"description,omitempty"`
	Type              string               `json:"type"`
	Status            string               `json:"status"`
	CounterpartyName  string               `json:"counterpartyName"`
	CounterpartyEmail *string              `json:"counterpartyEmail,omitempty"`
	CounterpartyPhone *string              `json:"counterpartyPhone,omitempty"`
	EffectiveDate     time.Time            `json:"effectiveDate"`
	ExpiryDate        time.Time            `json:"expiryDate"`
	RenewalDate       *time.Time           `json:"renewalDate,omitempty"`
	AutoRenew         bool                 `json:"autoRenew"`
	RenewalFrequency  *string              `json:"renewalFrequency,omitempty"`
	RenewalNoticeDays int                  `json:"renewalNoticeDays"`
	ContractValue     *string              `json:"contractValue,omitempty"`
	Currency          string               `json:"currency"`
	Department        *string              `json:"department,omitempty"`
	Project           *string              `json:"project,omitempty"`
	CostCenter        *string              `json:"costCenter,omitempty"`
	DocumentURL       *string              `json:"documentUrl,omitempty"`
	DocumentType      *string              `json:"documentType,omitempty"`
	Tags              []string             `json:"tags"`
	CustomFields      map[string]any       `json:"customFields,omitempty"`
	Notes             *string              `json:"notes,omitempty"`
	OwnerID           uuid.UUID            `json:"ownerId"`
	Owner             *userSummaryResponse `json:"owner,omitempty"`
	StakeholderID     *uuid.UUID           `json:"stakeholderId,omitempty"`
	Stakeholder       *userSummaryResponse `json:"stakeholder,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

type contractPageResponse struct {
	Items []contractResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Pages int                `json:"pages"`
}

type taskResponse struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Description   *string              `json:"description,omitempty"`
	Type          string               `json:"type"`
	Category      string               `json:"category"`
	Status        string               `json:"status"`
	Priority      string               `json:"priority"`
	DueDate       *time.Time           `json:"dueDate,omitempty"`
	CompletedDate *time.Time           `json:"completedDate,omitempty"`
	Metadata      map[string]any       `json:"metadata,omitempty"`
	ContractID    uuid.UUID            `json:"contractId"`
	AssignedTo    *uuid.UUID           `json:"assignedTo,omitempty"`
	Assignee      *userSummaryResponse `json:"assignee,omitempty"`
	CreatedBy     uuid.UUID            `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type dependencyResponse struct {
	TaskID      uuid.UUID `json:"taskId"`
	DependsOnID uuid.UUID `json:"dependsOnId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type notificationResponse struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Priority    string         `json:"priority"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	RecipientID uuid.UUID      `json:"recipientId"`
	SenderID    *uuid.UUID     `json:"senderId,omitempty"`
	ContractID  *uuid.UUID     `json:"contractId,omitempty"`
	TaskID      *uuid.UUID     `json:"taskId,omitempty"`
	ReadAt      *time.Time     `json:"readAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ---------------------------------------------------------------------------
// User summaries
// ---------------------------------------------------------------------------

// userSet batches summary lookups for one response. Thunks are created for
// every id first so the loader sees them in a single batch.
type userSet struct {
	thunks map[uuid.UUID]dataloader.Thunk[*domain.UserSummary]
}

func newUserSet(ctx context.Context, ids ...uuid.UUID) userSet {
	loaders := dl.FromContext(ctx)
	set := userSet{thunks: make(map[uuid.UUID]dataloader.Thunk[*domain.UserSummary], len(ids))}
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := set.thunks[id]; !ok {
			set.thunks[id] = loaders.UserByID.Load(ctx, id)
		}
	}
	return set
}

// get resolves a summary. Lookup failures degrade to a missing summary; the
// id is still present in the response.
func (s userSet) get(id *uuid.UUID) *userSummaryResponse {
	if id == nil {
		return nil
	}
	thunk, ok := s.thunks[*id]
	if !ok {
		return nil
	}
	u, err := thunk()
	if err != nil || u == nil {
		return nil
	}
	return &userSummaryResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
	}
}

func contractUserIDs(cs []domain.Contract) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cs)*2)
	for _, c := range cs {
		ids = append(ids, c.OwnerID)
		if c.StakeholderID != nil {
			ids = append(ids, *c.StakeholderID)
		}
	}
	return ids
}

func taskUserIDs(ts []domain.Task) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ts))
	for _, t := range ts {
		if t.AssignedTo != nil {
			ids = append(ids, *t.AssignedTo)
		}
	}
	return ids
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toContractResponses(ctx context.Context, cs []domain.Contract) []contractResponse {
	users := newUserSet(ctx, contractUserIDs(cs)...)
	out := make([]contractResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toContractResponse(c, users))
	}
	return out
}

func toContractResponse(c domain.Contract, users userSet) contractResponse {
	var freq *string
	if c.RenewalFrequency != nil {
		f := c.RenewalFrequency.String()
		freq = &f
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	owner := c.OwnerID
	return contractResponse{
		ID:                c.ID,
		Title:             c.Title,
		Description:       c.Description,
		Type:              c.Type.String(),
		Status:            c.Status.String(),
		CounterpartyName:  c.CounterpartyName,
		CounterpartyEmail: c.CounterpartyEmail,
		CounterpartyPhone: c.CounterpartyPhone,
		EffectiveDate:     c.EffectiveDate,
		ExpiryDate:        c.ExpiryDate,
		RenewalDate:       c.RenewalDate,
		AutoRenew:         c.AutoRenew,
		RenewalFrequency:  freq,
		RenewalNoticeDays: c.RenewalNoticeDays,
		ContractValue:     c.ContractValue,
		Currency:          c.Currency,
		Department:        c.Department,
		Project:           c.Project,
		CostCenter:        c.CostCenter,
		DocumentURL:       c.DocumentURL,
		DocumentType:      c.DocumentType,
		Tags:              tags,
		CustomFields:      c.CustomFields,
		Notes:             c.Notes,
		OwnerID:           c.OwnerID,
		Owner:             users.get(&owner),
		StakeholderID:     c.StakeholderID,
		Stakeholder:       users.get(c.StakeholderID),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toContractPageResponse(ctx context.Context, p domain.ContractPage) contractPageResponse {
	pages := 0
	if p.Limit > 0 {
		pages = (p.Total + p.Limit - 1) / p.Limit
	}
	return contractPageResponse{
		Items: toContractResponses(ctx, p.Items),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: pages,
	}
}

func toTaskResponses(ctx context.Context, ts []domain.Task) []taskResponse {
	users := newUserSet(ctx, taskUserIDs(ts)...)
	out := make([]taskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTaskResponse(t, users))
	}
	return out
}

func toTaskResponse(t domain.Task, users userSet) taskResponse {
	return taskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Type:          t.Type.String(),
		Category:      t.Category.String(),
		Status:        t.Status.String(),
		Priority:      t.Priority.String(),
		DueDate:       t.DueDate,
		CompletedDate: t.CompletedDate,
		Metadata:      t.Metadata,
		ContractID:    t.ContractID,
		AssignedTo:    t.AssignedTo,
		Assignee:      users.get(t.AssignedTo),
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toDependencyResponses(deps []domain.TaskDependency) []dependencyResponse {
	out := make([]dependencyResponse, 0, len(deps))
	for _, d := range deps {
		out = append(out, dependencyResponse{TaskID: d.TaskID, DependsOnID: d.DependsOnID, CreatedAt: d.CreatedAt})
	}
	return out
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		Type:        n.Type.String(),
		Title:       n.Title,
		Message:     n.Message,
		Priority:    n.Priority.String(),
		Status:      n.Status.String(),
		Metadata:    n.Metadata,
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		ContractID:  n.ContractID,
		TaskID:      n.TaskID,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}
