package contract

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// GetContract returns a contract visible to the caller. Contracts the caller
// may not see are reported as not found.
func (s *Service) GetContract(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if contractID == uuid.Nil {
		return nil, domain.NewValidationError("contract_id", "required")
	}

	return s.getVisible(ctx, actor, contractID)
}

// ListContracts returns one page of contracts visible to the caller.
func (s *Service) ListContracts(ctx context.Context, input ListContractsInput) (domain.ContractPage, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return domain.ContractPage{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ContractPage{}, err
	}

	filter := domain.ContractFilter{
		Type:       input.Type,
		Status:     input.Status,
		Department: trimOrNil(input.Department),
		Project:    trimOrNil(input.Project),
		Search:     trimOrNil(input.Search),
		Page:       input.Page,
		Limit:      input.Limit,
	}
	if !actor.Role.SeesAllContracts() {
		filter.OwnerID = &actor.ID
	}
	filter.Normalize()

	page, err := s.contracts.List(ctx, filter)
	if err != nil {
		return domain.ContractPage{}, fmt.Errorf("list contracts: %w", err)
	}
	return page, nil
}

// ListByType is ListContracts narrowed to one contract type.
func (s *Service) ListByType(ctx context.Context, typ domain.ContractType, page, limit int) (domain.ContractPage, error) {
	return s.ListContracts(ctx, ListContractsInput{Type: &typ, Page: page, Limit: limit})
}

// ListByStatus is ListContracts narrowed to one status.
func (s *Service) ListByStatus(ctx context.Context, status domain.ContractStatus, page, limit int) (domain.ContractPage, error) {
	return s.ListContracts(ctx, ListContractsInput{Status: &status, Page: page, Limit: limit})
}

// GetExpiringContracts returns active contracts visible to the caller whose
// expiry falls within [now, now+days]. days <= 0 uses 30.
func (s *Service) GetExpiringContracts(ctx context.Context, days int) ([]domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if days <= 0 {
		days = defaultExpiringDays
	}

	now := s.clock.Now().UTC()
	contracts, err := s.contracts.ListExpiring(ctx, domain.ScopeFor(actor), now, now.AddDate(0, 0, days), 0)
	if err != nil {
		return nil, fmt.Errorf("list expiring contracts: %w", err)
	}
	return contracts, nil
}
