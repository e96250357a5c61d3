package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// GetValueAnalytics sums the value of active contracts visible to the
// caller, in total and per type. Missing or non-numeric values count as zero.
func (s *Service) GetValueAnalytics(ctx context.Context) (*domain.ValueAnalytics, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.contracts.ListActiveValues(ctx, domain.ScopeFor(actor))
	if err != nil {
		return nil, fmt.Errorf("list active values: %w", err)
	}

	out := &domain.ValueAnalytics{
		TotalValue:    decimal.Zero,
		ValueByType:   make(map[domain.ContractType]decimal.Decimal),
		ContractCount: len(rows),
	}
	for _, row := range rows {
		v := s.parseValue(ctx, row.Value)
		out.TotalValue = out.TotalValue.Add(v)
		out.ValueByType[row.Type] = out.ValueByType[row.Type].Add(v)
	}

	return out, nil
}

func (s *Service) parseValue(ctx context.Context, raw *string) decimal.Decimal {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		s.log.WarnContext(ctx, "non-numeric contract value", slog.String("value", *raw))
		return decimal.Zero
	}
	return v
}
