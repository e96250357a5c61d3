package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// Run performs one sweep. Failures on individual contracts or tasks are
// logged, counted and skipped. An error is returned only when a pass could
// not load its items; the other pass still runs.
func (s *Service) Run(ctx context.Context) (Result, error) {
	now := s.clock.Now()
	res := Result{StartedAt: now}

	var errs []error
	contracts, err := s.contractPass(ctx, now)
	res.Contracts = contracts
	if err != nil {
		errs = append(errs, err)
	}

	tasks, err := s.taskPass(ctx, now)
	res.Tasks = tasks
	if err != nil {
		errs = append(errs, err)
	}

	res.Duration = s.clock.Since(now)
	err = errors.Join(errs...)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	runsTotal.WithLabelValues(outcome).Inc()
	runDuration.Observe(res.Duration.Seconds())

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("contracts_scanned", res.Contracts.Scanned),
		slog.Int("contracts_notified", res.Contracts.Notified),
		slog.Int("contracts_failed", res.Contracts.Failed),
		slog.Int("tasks_scanned", res.Tasks.Scanned),
		slog.Int("tasks_notified", res.Tasks.Notified),
		slog.Int("tasks_failed", res.Tasks.Failed),
		slog.Duration("duration", res.Duration),
	)

	return res, err
}

func (s *Service) contractPass(ctx context.Context, now time.Time) (PassResult, error) {
	var res PassResult

	contracts, err := s.contracts.ListByStatus(ctx, domain.ContractStatusActive)
	if err != nil {
		s.log.ErrorContext(ctx, "list active contracts", slog.String("error", err.Error()))
		return res, fmt.Errorf("list active contracts: %w", err)
	}

	for _, c := range contracts {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Scanned++

		days := domain.DaysUntil(c.ExpiryDate, now)
		var notifyErr error
		switch {
		case days < 0:
			notifyErr = s.notify.NotifyContractExpired(ctx, c)
		case slices.Contains(expiringThresholds, days):
			notifyErr = s.notify.NotifyContractExpiring(ctx, c, days)
		default:
			continue
		}

		if notifyErr != nil {
			res.Failed++
			itemsTotal.WithLabelValues("contract", "failed").Inc()
			s.log.ErrorContext(ctx, "contract sweep item failed",
				slog.String("contract_id", c.ID.String()),
				slog.Int("days", days),
				slog.String("error", notifyErr.Error()),
			)
			continue
		}
		res.Notified++
		itemsTotal.WithLabelValues("contract", "notified").Inc()
	}

	return res, nil
}

func (s *Service) taskPass(ctx context.Context, now time.Time) (PassResult, error) {
	var res PassResult

	tasks, err := s.tasks.ListPendingAssignedWithDue(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "list pending tasks", slog.String("error", err.Error()))
		return res, fmt.Errorf("list pending tasks: %w", err)
	}

	for _, t := range tasks {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if t.DueDate == nil || t.AssignedTo == nil {
			continue
		}
		res.Scanned++

		days := domain.DaysUntil(*t.DueDate, now)
		var notifyErr error
		switch {
		case days < 0:
			notifyErr = s.notify.NotifyTaskOverdue(ctx, t)
		case slices.Contains(dueSoonThresholds, days):
			notifyErr = s.notify.NotifyTaskDueSoon(ctx, t, days)
		default:
			continue
		}

		if notifyErr != nil {
			res.Failed++
			itemsTotal.WithLabelValues("task", "failed").Inc()
			s.log.ErrorContext(ctx, "task sweep item failed",
				slog.String("task_id", t.ID.String()),
				slog.Int("days", days),
				slog.String("error", notifyErr.Error()),
			)
			continue
		}
		res.Notified++
		itemsTotal.WithLabelValues("task", "notified").Inc()
	}

	return res, nil
}
