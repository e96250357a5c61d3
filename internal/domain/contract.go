package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contract is an organizational agreement tracked through its lifecycle.
type Contract struct {
	ID                uuid.UUID
	Title             string
	Description       *string
	Type              ContractType
	Status            ContractStatus
	CounterpartyName  string
	CounterpartyEmail *string
	CounterpartyPhone *string
	EffectiveDate     time.Time
	ExpiryDate        time.Time
	RenewalDate       *time.Time
	AutoRenew         bool
	RenewalFrequency  *RenewalFrequency
	RenewalNoticeDays int
	ContractValue     *string // decimal string, e.g. "12500.00"
	Currency          string
	Department        *string
	Project           *string
	CostCenter        *string
	DocumentURL       *string
	DocumentType      *string
	Tags              []string
	CustomFields      map[string]any
	Notes             *string
	OwnerID           uuid.UUID
	StakeholderID     *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Recipients returns the owner and the stakeholder (if any), deduplicated,
// with exclude removed. Pass uuid.Nil to exclude nobody.
func (c Contract) Recipients(exclude uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, 2)
	if c.OwnerID != exclude {
		out = append(out, c.OwnerID)
	}
	if c.StakeholderID != nil && *c.StakeholderID != exclude && *c.StakeholderID != c.OwnerID {
		out = append(out, *c.StakeholderID)
	}
	return out
}

// VisibleTo reports whether the actor may read the contract.
func (c Contract) VisibleTo(actor Actor) bool {
	return actor.Role.SeesAllContracts() || c.OwnerID == actor.ID
}

// AppendRejection appends a rejection block to the notes. Existing notes are
// never overwritten.
func (c *Contract) AppendRejection(reason string) {
	block := "REJECTED: " + strings.TrimSpace(reason)
	if c.Notes == nil || *c.Notes == "" {
		c.Notes = &block
		return
	}
	notes := *c.Notes + "\n\n" + block
	c.Notes = &notes
}

// ValidateContractDates checks the effective < expiry invariant.
func ValidateContractDates(effective, expiry time.Time) error {
	if !effective.Before(expiry) {
		return NewValidationError("expiry_date", "must be after effective_date")
	}
	return nil
}

// ContractPatch holds optional field updates. nil means "don't change".
type ContractPatch struct {
	Title             *string
	Description       *string
	Type              *ContractType
	CounterpartyName  *string
	CounterpartyEmail *string
	CounterpartyPhone *string
	EffectiveDate     *time.Time
	ExpiryDate        *time.Time
	RenewalDate       *time.Time
	AutoRenew         *bool
	RenewalFrequency  *RenewalFrequency
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
	// ClearStakeholder removes the stakeholder. It cannot be combined with
	// StakeholderID.
	ClearStakeholder  bool
}

// Apply merges the patch over c and returns the result.
func (p ContractPatch) Apply(c Contract) Contract {
	setStr := func(dst **string, v *string) {
		if v != nil {
			s := *v
			*dst = &s
		}
	}

	if p.Title != nil {
		c.Title = *p.Title
	}
	setStr(&c.Description, p.Description)
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.CounterpartyName != nil {
		c.CounterpartyName = *p.CounterpartyName
	}
	setStr(&c.CounterpartyEmail, p.CounterpartyEmail)
	setStr(&c.CounterpartyPhone, p.CounterpartyPhone)
	if p.EffectiveDate != nil {
		c.EffectiveDate = *p.EffectiveDate
	}
	if p.ExpiryDate != nil {
		c.ExpiryDate = *p.ExpiryDate
	}
	if p.RenewalDate != nil {
		d := *p.RenewalDate
		c.RenewalDate = &d
	}
	if p.AutoRenew != nil {
		c.AutoRenew = *p.AutoRenew
	}
	if p.RenewalFrequency != nil {
		f := *p.RenewalFrequency
		c.RenewalFrequency = &f
	}
	if p.RenewalNoticeDays != nil {
		c.RenewalNoticeDays = *p.RenewalNoticeDays
	}
	setStr(&c.ContractValue, p.ContractValue)
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	setStr(&c.Department, p.Department)
	setStr(&c.Project, p.Project)
	setStr(&c.CostCenter, p.CostCenter)
	setStr(&c.DocumentURL, p.DocumentURL)
	setStr(&c.DocumentType, p.DocumentType)
	if p.Tags != nil {
		c.Tags = p.Tags
	}
	if p.CustomFields != nil {
		c.CustomFields = p.CustomFields
	}
	setStr(&c.Notes, p.Notes)
	if p.StakeholderID != nil {
		id := *p.StakeholderID
		c.StakeholderID = &id
	}
	if p.ClearStakeholder {
		c.StakeholderID = nil
	}
	return c
}

// IsEmpty reports whether the patch changes nothing.
func (p ContractPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Type == nil &&
		p.CounterpartyName == nil && p.CounterpartyEmail == nil && p.CounterpartyPhone == nil &&
		p.EffectiveDate == nil && p.ExpiryDate == nil && p.RenewalDate == nil &&
		p.AutoRenew == nil && p.RenewalFrequency == nil && p.RenewalNoticeDays == nil &&
		p.ContractValue == nil && p.Currency == nil &&
		p.Department == nil && p.Project == nil && p.CostCenter == nil &&
		p.DocumentURL == nil && p.DocumentType == nil &&
		p.Tags == nil && p.CustomFields == nil && p.Notes == nil && p.StakeholderID == nil &&
		!p.ClearStakeholder
}

// ContractFilter narrows a contract listing. OwnerID is set by the service
// from the caller's visibility, never from request input.
type ContractFilter struct {
	Type       *ContractType
	Status     *ContractStatus
	Department *string
	Project    *string
	Search     *string
	OwnerID    *uuid.UUID
	Page       int
	Limit      int
}

const (
	DefaultContractPageLimit = 10
	MaxContractPageLimit     = 100
)

// Normalize applies paging defaults and clamps the limit.
func (f *ContractFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultContractPageLimit
	}
	if f.Limit > MaxContractPageLimit {
		f.Limit = MaxContractPageLimit
	}
}

// Offset returns the row offset for the current page.
func (f ContractFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ContractPage is one page of a contract listing.
type ContractPage struct {
	Items []Contract
	Total int
	Page  int
	Limit int
}
