package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// GetStats returns the dashboard rollup for the caller. Roles that see every
// contract get global counts; others see their own contracts and the tasks
// on them or assigned to them. Notification counts are always the caller's.
func (s *Service) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	actor, ok := domain.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	scope := domain.ScopeFor(actor)
	now := s.clock.Now().UTC()
	month := monthStart(now)

	stats := &domain.DashboardStats{GeneratedAt: now}
	var (
		contractsByStatus map[domain.ContractStatus]int
		contractsByType   map[domain.ContractType]int
		tasksByStatus     map[domain.TaskStatus]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		contractsByStatus, err = s.contracts.CountByStatus(gctx, scope)
		if err != nil {
			return fmt.Errorf("count contracts by status: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		contractsByType, err = s.contracts.CountByType(gctx, scope)
		if err != nil {
			return fmt.Errorf("count contracts by type: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.Contracts.ThisMonth, err = s.contracts.CountCreatedSince(gctx, scope, month)
		if err != nil {
			return fmt.Errorf("count contracts this month: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		tasksByStatus, err = s.tasks.CountByStatus(gctx, scope)
		if err != nil {
			return fmt.Errorf("count tasks by status: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.Tasks.Overdue, err = s.tasks.CountOverdue(gctx, scope, now)
		if err != nil {
			return fmt.Errorf("count overdue tasks: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.Tasks.ThisMonth, err = s.tasks.CountCreatedSince(gctx, scope, month)
		if err != nil {
			return fmt.Errorf("count tasks this month: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.Notifications, err = s.notifications.Stats(gctx, actor.ID, now.Add(-notificationWindow))
		if err != nil {
			return fmt.Errorf("notification stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.RecentContracts, err = s.contracts.ListRecent(gctx, scope, recentLimit)
		if err != nil {
			return fmt.Errorf("recent contracts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.RecentTasks, err = s.tasks.ListRecent(gctx, scope, recentLimit)
		if err != nil {
			return fmt.Errorf("recent tasks: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.ExpiringContracts, err = s.contracts.ListExpiring(gctx, scope, now, now.AddDate(0, 0, expiringWindowDays), highlightLimit)
		if err != nil {
			return fmt.Errorf("expiring contracts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stats.OverdueTasks, err = s.tasks.ListOverdue(gctx, scope, now, highlightLimit)
		if err != nil {
			return fmt.Errorf("overdue tasks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Contracts.ByStatus = contractsByStatus
	stats.Contracts.ByType = contractsByType
	for _, n := range contractsByStatus {
		stats.Contracts.Total += n
	}
	stats.Contracts.Active = contractsByStatus[domain.ContractStatusActive]
	stats.Contracts.Draft = contractsByStatus[domain.ContractStatusDraft]
	stats.Contracts.Expired = contractsByStatus[domain.ContractStatusExpired]
	stats.Contracts.Terminated = contractsByStatus[domain.ContractStatusTerminated]

	for _, n := range tasksByStatus {
		stats.Tasks.Total += n
	}
	stats.Tasks.Pending = tasksByStatus[domain.TaskStatusPending]
	stats.Tasks.Completed = tasksByStatus[domain.TaskStatusCompleted]

	return stats, nil
}
