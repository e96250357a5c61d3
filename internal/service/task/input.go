package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// CreateTaskInput holds parameters for creating a task on a contract.
type CreateTaskInput struct {
	ContractID  uuid.UUID
	Title       string
	Description *string
	Type        domain.TaskType
	Category    *domain.TaskCategory // derived from the title when nil
	Priority    *domain.Priority
	DueDate     *time.Time
	AssignedTo  *uuid.UUID
	Metadata    map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	errs = append(errs, validateTitle(&i.Title)...)
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.AssignedTo != nil && *i.AssignedTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid value"})
	}

	return domain.ValidationErrorOrNil(errs)
}

// UpdateTaskInput holds a partial task update.
type UpdateTaskInput struct {
	TaskID uuid.UUID
	Patch  domain.TaskPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError
	p := i.Patch

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if p.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Title != nil {
		errs = append(errs, validateTitle(p.Title)...)
	}
	if p.Type != nil && !p.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if p.AssignedTo != nil && *p.AssignedTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid value"})
	}

	return domain.ValidationErrorOrNil(errs)
}

// DependencyInput names one edge of the dependency graph.
type DependencyInput struct {
	TaskID      uuid.UUID
	DependsOnID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DependencyInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.DependsOnID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "depends_on_id", Message: "required"})
	}
	if i.TaskID != uuid.Nil && i.TaskID == i.DependsOnID {
		errs = append(errs, domain.FieldError{Field: "depends_on_id", Message: "task cannot depend on itself"})
	}

	return domain.ValidationErrorOrNil(errs)
}

func validateTitle(title *string) []domain.FieldError {
	t := strings.TrimSpace(*title)
	if t == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(t) > 255 {
		return []domain.FieldError{{Field: "title", Message: "max 255 characters"}}
	}
	return nil
}
