package contract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// CreateContract creates a draft contract owned by the caller and asks every
// active admin for approval.
func (s *Service) CreateContract(ctx context.Context, input CreateContractInput) (*domain.Contract, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateContractDates(input.EffectiveDate, input.ExpiryDate); err != nil {
		return nil, err
	}
	if err := s.checkStakeholder(ctx, input.StakeholderID); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	c := &domain.Contract{
		ID:                uuid.New(),
		Title:             strings.TrimSpace(input.Title),
		Description:       trimOrNil(input.Description),
		Type:              input.Type,
		Status:            domain.ContractStatusDraft,
		CounterpartyName:  strings.TrimSpace(input.CounterpartyName),
		CounterpartyEmail: trimOrNil(input.CounterpartyEmail),
		CounterpartyPhone: trimOrNil(input.CounterpartyPhone),
		EffectiveDate:     input.EffectiveDate,
		ExpiryDate:        input.ExpiryDate,
		RenewalDate:       input.RenewalDate,
		AutoRenew:         input.AutoRenew,
		RenewalFrequency:  input.RenewalFrequency,
		RenewalNoticeDays: defaultRenewalNoticeDays,
		ContractValue:     normalizeValue(input.ContractValue),
		Currency:          defaultCurrency,
		Department:        trimOrNil(input.Department),
		Project:           trimOrNil(input.Project),
		CostCenter:        trimOrNil(input.CostCenter),
		DocumentURL:       trimOrNil(input.DocumentURL),
		DocumentType:      trimOrNil(input.DocumentType),
		Tags:              input.Tags,
		CustomFields:      input.CustomFields,
		Notes:             trimOrNil(input.Notes),
		OwnerID:           actor.ID,
		StakeholderID:     input.StakeholderID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if input.RenewalNoticeDays != nil {
		c.RenewalNoticeDays = *input.RenewalNoticeDays
	}
	if input.Currency != nil {
		c.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}

	var created *domain.Contract
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.contracts.Create(txCtx, c)
		if createErr != nil {
			return fmt.Errorf("create contract: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:      &actor.ID,
			EntityType:  domain.EntityTypeContract,
			EntityID:    &created.ID,
			Action:      domain.AuditActionCreate,
			Description: "Contract created: " + created.Title,
			NewValues: map[string]any{
				"title":  created.Title,
				"type":   string(created.Type),
				"status": string(created.Status),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.notify.NotifyApprovalRequired(ctx, *created); err != nil {
		return nil, fmt.Errorf("notify approval required: %w", err)
	}

	s.log.InfoContext(ctx, "contract created",
		slog.String("user_id", actor.ID.String()),
		slog.String("contract_id", created.ID.String()),
		slog.String("type", string(created.Type)),
	)

	return created, nil
}
