package contract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// UpdateContract merges a partial update over a contract visible to the
// caller. Status is not editable here; use UpdateStatus.
func (s *Service) UpdateContract(ctx context.Context, input UpdateContractInput) (*domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := normalizePatch(input.Patch)

	var (
		updated              *domain.Contract
		oldValues, newValues map[string]any
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.getVisible(txCtx, actor, input.ContractID)
		if getErr != nil {
			return getErr
		}

		merged := patch.Apply(*old)
		if patch.EffectiveDate != nil || patch.ExpiryDate != nil {
			if dateErr := domain.ValidateContractDates(merged.EffectiveDate, merged.ExpiryDate); dateErr != nil {
				return dateErr
			}
		}
		if patch.StakeholderID != nil && !sameValue(old.StakeholderID, patch.StakeholderID) {
			if shErr := s.checkStakeholder(txCtx, patch.StakeholderID); shErr != nil {
				return shErr
			}
		}
		merged.UpdatedAt = s.clock.Now().UTC()

		var updateErr error
		updated, updateErr = s.contracts.Update(txCtx, &merged)
		if updateErr != nil {
			return fmt.Errorf("update contract: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		oldValues, newValues = diffContracts(old, updated)
		if len(newValues) == 0 {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeContract,
			EntityID:    &updated.ID,
			Action:      domain.AuditActionUpdate,
			Description: "Contract updated: " + updated.Title,
			OldValues:   oldValues,
			NewValues:   newValues,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contract updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("contract_id", updated.ID.String()),
		slog.Int("changed_fields", len(newValues)),
	)

	return updated, nil
}

// normalizePatch trims strings and canonicalizes value and currency.
func normalizePatch(p domain.ContractPatch) domain.ContractPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	p.Title = trim(p.Title)
	p.CounterpartyName = trim(p.CounterpartyName)
	p.ContractValue = normalizeValue(p.ContractValue)
	if p.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*p.Currency))
		p.Currency = &c
	}
	return p
}

func sameValue[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// diffContracts returns old/new snapshots of the changed fields only.
func diffContracts(old, updated *domain.Contract) (oldValues, newValues map[string]any) {
	oldValues = make(map[string]any)
	newValues = make(map[string]any)
	add := func(field string, o, n any) {
		oldValues[field] = o
		newValues[field] = n
	}

	if old.Title != updated.Title {
		add("title", old.Title, updated.Title)
	}
	if !sameValue(old.Description, updated.Description) {
		add("description", old.Description, updated.Description)
	}
	if old.Type != updated.Type {
		add("type", string(old.Type), string(updated.Type))
	}
	if old.CounterpartyName != updated.CounterpartyName {
		add("counterparty_name", old.CounterpartyName, updated.CounterpartyName)
	}
	if !old.EffectiveDate.Equal(updated.EffectiveDate) {
		add("effective_date", old.EffectiveDate, updated.EffectiveDate)
	}
	if !old.ExpiryDate.Equal(updated.ExpiryDate) {
		add("expiry_date", old.ExpiryDate, updated.ExpiryDate)
	}
	if old.AutoRenew != updated.AutoRenew {
		add("auto_renew", old.AutoRenew, updated.AutoRenew)
	}
	if !sameValue(old.ContractValue, updated.ContractValue) {
		add("contract_value", old.ContractValue, updated.ContractValue)
	}
	if old.Currency != updated.Currency {
		add("currency", old.Currency, updated.Currency)
	}
	if !sameValue(old.Department, updated.Department) {
		add("department", old.Department, updated.Department)
	}
	if !sameValue(old.Project, updated.Project) {
		add("project", old.Project, updated.Project)
	}
	if !sameValue(old.Notes, updated.Notes) {
		add("notes", old.Notes, updated.Notes)
	}
	if !sameValue(old.StakeholderID, updated.StakeholderID) {
		add("stakeholder_id", old.StakeholderID, updated.StakeholderID)
	}
	return oldValues, newValues
}
