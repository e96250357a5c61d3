package notification

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// CreateInput describes one notification to persist.
type CreateInput struct {
	Type        domain.NotificationType
	Title       string
	Message     string
	Priority    domain.Priority // defaults to medium
	RecipientID uuid.UUID
	SenderID    *uuid.UUID
	ContractID  *uuid.UUID
	TaskID      *uuid.UUID
	Metadata    map[string]any
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.RecipientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipient_id", Message: "required"})
	}

	return domain.ValidationErrorOrNil(errs)
}

// ListInput narrows the caller's inbox.
type ListInput struct {
	Status *domain.NotificationStatus
	Limit  int
}

func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}

	return domain.ValidationErrorOrNil(errs)
}
