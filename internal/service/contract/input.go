package contract

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

const (
	maxTitleLength  = 255
	maxReasonLength = 2000
)

// CreateContractInput holds the parameters for creating a contract.
type CreateContractInput struct {
	Title             string
	Description       *string
	Type              domain.ContractType
	CounterpartyName  string
	CounterpartyEmail *string
	CounterpartyPhone *string
	EffectiveDate     time.Time
	ExpiryDate        time.Time
	RenewalDate       *time.Time
	AutoRenew         bool
	RenewalFrequency  *domain.RenewalFrequency
	RenewalNoticeDays *int
	ContractValue     *string
	Currency          *string
	Department        *string
	Project           *string
	CostCenter        *string
	DocumentURL       *string
	DocumentType      *string
	Tags              []string
	CustomFields      map[string]any
	Notes             *string
	StakeholderID     *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateContractInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if strings.TrimSpace(i.CounterpartyName) == "" {
		errs = append(errs, domain.FieldError{Field: "counterparty_name", Message: "required"})
	}
	if i.EffectiveDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "effective_date", Message: "required"})
	}
	if i.ExpiryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "expiry_date", Message: "required"})
	}
	errs = append(errs, validateTerms(i.RenewalFrequency, i.RenewalNoticeDays, i.ContractValue, i.Currency)...)

	return domain.ValidationErrorOrNil(errs)
}

// UpdateContractInput holds a partial update of a contract.
type UpdateContractInput struct {
	ContractID uuid.UUID
	Patch      domain.ContractPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateContractInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	p := i.Patch
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if p.Type != nil && !p.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if p.ClearStakeholder && p.StakeholderID != nil {
		errs = append(errs, domain.FieldError{Field: "stakeholder_id", Message: "cannot be set and cleared together"})
	}
	if p.CounterpartyName != nil && strings.TrimSpace(*p.CounterpartyName) == "" {
		errs = append(errs, domain.FieldError{Field: "counterparty_name", Message: "required"})
	}
	errs = append(errs, validateTerms(p.RenewalFrequency, p.RenewalNoticeDays, p.ContractValue, p.Currency)...)

	return domain.ValidationErrorOrNil(errs)
}

// UpdateStatusInput moves a contract to a new status.
type UpdateStatusInput struct {
	ContractID uuid.UUID
	Status     domain.ContractStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	return domain.ValidationErrorOrNil(errs)
}

// RejectInput terminates a contract with a reason.
type RejectInput struct {
	ContractID uuid.UUID
	Reason     string
}

// Validate checks all fields and collects all errors.
func (i RejectInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if len(reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 2000 characters"})
	}

	return domain.ValidationErrorOrNil(errs)
}

// ListContractsInput holds listing filters. Visibility is applied by the
// service and cannot be widened here.
type ListContractsInput struct {
	Type       *domain.ContractType
	Status     *domain.ContractStatus
	Department *string
	Project    *string
	Search     *string
	Page       int
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i ListContractsInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}

	return domain.ValidationErrorOrNil(errs)
}

// validateTerms checks the commercial fields shared by create and update.
func validateTerms(freq *domain.RenewalFrequency, noticeDays *int, value, currency *string) []domain.FieldError {
	var errs []domain.FieldError

	if freq != nil && !freq.IsValid() {
		errs = append(errs, domain.FieldError{Field: "renewal_frequency", Message: "invalid value"})
	}
	if noticeDays != nil && *noticeDays < 0 {
		errs = append(errs, domain.FieldError{Field: "renewal_notice_days", Message: "must not be negative"})
	}
	if value != nil {
		d, err := decimal.NewFromString(strings.TrimSpace(*value))
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "contract_value", Message: "must be a decimal number"})
		case d.IsNegative():
			errs = append(errs, domain.FieldError{Field: "contract_value", Message: "must not be negative"})
		}
	}
	if currency != nil && len(strings.TrimSpace(*currency)) != 3 {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter code"})
	}

	return errs
}

// normalizeValue renders a validated contract value with two decimals.
func normalizeValue(v *string) *string {
	if v == nil {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*v))
	if err != nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
