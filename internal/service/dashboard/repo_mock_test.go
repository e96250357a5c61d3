package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	CountByStatusFunc     func(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractStatus]int, error)
	CountByTypeFunc       func(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractType]int, error)
	CountCreatedSinceFunc func(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error)
	ListRecentFunc        func(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Contract, error)
	ListExpiringFunc      func(ctx context.Context, scope domain.DashboardScope, from time.Time, to time.Time, limit int) ([]domain.Contract, error)
	ListActiveValuesFunc  func(ctx context.Context, scope domain.DashboardScope) ([]domain.ContractValueRow, error)

	calls struct {
		CountByStatus []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
		}
		CountByType []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
		}
		CountCreatedSince []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			Since time.Time
		}
		ListRecent []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			Limit int
		}
		ListExpiring []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			From  time.Time
			To    time.Time
			Limit int
		}
		ListActiveValues []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
		}
	}
	lockCountByStatus     sync.RWMutex
	lockCountByType       sync.RWMutex
	lockCountCreatedSince sync.RWMutex
	lockListRecent        sync.RWMutex
	lockListExpiring      sync.RWMutex
	lockListActiveValues  sync.RWMutex
}

func (mock *contractRepoMock) CountByStatus(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractStatus]int, error) {
	if mock.CountByStatusFunc == nil {
		panic("contractRepoMock.CountByStatusFunc: method is nil but contractRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
	}{
		Ctx:   ctx,
		Scope: scope,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, scope)
}

func (mock *contractRepoMock) CountByStatusCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *contractRepoMock) CountByType(ctx context.Context, scope domain.DashboardScope) (map[domain.ContractType]int, error) {
	if mock.CountByTypeFunc == nil {
		panic("contractRepoMock.CountByTypeFunc: method is nil but contractRepo.CountByType was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
	}{
		Ctx:   ctx,
		Scope: scope,
	}
	mock.lockCountByType.Lock()
	mock.calls.CountByType = append(mock.calls.CountByType, callInfo)
	mock.lockCountByType.Unlock()
	return mock.CountByTypeFunc(ctx, scope)
}

func (mock *contractRepoMock) CountByTypeCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
} {
	mock.lockCountByType.RLock()
	calls := mock.calls.CountByType
	mock.lockCountByType.RUnlock()
	return calls
}

func (mock *contractRepoMock) CountCreatedSince(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error) {
	if mock.CountCreatedSinceFunc == nil {
		panic("contractRepoMock.CountCreatedSinceFunc: method is nil but contractRepo.CountCreatedSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		Since time.Time
	}{
		Ctx:   ctx,
		Scope: scope,
		Since: since,
	}
	mock.lockCountCreatedSince.Lock()
	mock.calls.CountCreatedSince = append(mock.calls.CountCreatedSince, callInfo)
	mock.lockCountCreatedSince.Unlock()
	return mock.CountCreatedSinceFunc(ctx, scope, since)
}

func (mock *contractRepoMock) CountCreatedSinceCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	Since time.Time
} {
	mock.lockCountCreatedSince.RLock()
	calls := mock.calls.CountCreatedSince
	mock.lockCountCreatedSince.RUnlock()
	return calls
}

func (mock *contractRepoMock) ListRecent(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Contract, error) {
	if mock.ListRecentFunc == nil {
		panic("contractRepoMock.ListRecentFunc: method is nil but contractRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		Limit int
	}{
		Ctx:   ctx,
		Scope: scope,
		Limit: limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, scope, limit)
}

func (mock *contractRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *contractRepoMock) ListExpiring(ctx context.Context, scope domain.DashboardScope, from time.Time, to time.Time, limit int) ([]domain.Contract, error) {
	if mock.ListExpiringFunc == nil {
		panic("contractRepoMock.ListExpiringFunc: method is nil but contractRepo.ListExpiring was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		From  time.Time
		To    time.Time
		Limit int
	}{
		Ctx:   ctx,
		Scope: scope,
		From:  from,
		To:    to,
		Limit: limit,
	}
	mock.lockListExpiring.Lock()
	mock.calls.ListExpiring = append(mock.calls.ListExpiring, callInfo)
	mock.lockListExpiring.Unlock()
	return mock.ListExpiringFunc(ctx, scope, from, to, limit)
}

func (mock *contractRepoMock) ListExpiringCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	From  time.Time
	To    time.Time
	Limit int
} {
	mock.lockListExpiring.RLock()
	calls := mock.calls.ListExpiring
	mock.lockListExpiring.RUnlock()
	return calls
}

func (mock *contractRepoMock) ListActiveValues(ctx context.Context, scope domain.DashboardScope) ([]domain.ContractValueRow, error) {
	if mock.ListActiveValuesFunc == nil {
		panic("contractRepoMock.ListActiveValuesFunc: method is nil but contractRepo.ListActiveValues was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
	}{
		Ctx:   ctx,
		Scope: scope,
	}
	mock.lockListActiveValues.Lock()
	mock.calls.ListActiveValues = append(mock.calls.ListActiveValues, callInfo)
	mock.lockListActiveValues.Unlock()
	return mock.ListActiveValuesFunc(ctx, scope)
}

func (mock *contractRepoMock) ListActiveValuesCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
} {
	mock.lockListActiveValues.RLock()
	calls := mock.calls.ListActiveValues
	mock.lockListActiveValues.RUnlock()
	return calls
}

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CountByStatusFunc     func(ctx context.Context, scope domain.DashboardScope) (map[domain.TaskStatus]int, error)
	CountOverdueFunc      func(ctx context.Context, scope domain.DashboardScope, now time.Time) (int, error)
	CountCreatedSinceFunc func(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error)
	ListRecentFunc        func(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Task, error)
	ListOverdueFunc       func(ctx context.Context, scope domain.DashboardScope, now time.Time, limit int) ([]domain.Task, error)

	calls struct {
		CountByStatus []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
		}
		CountOverdue []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			Now   time.Time
		}
		CountCreatedSince []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			Since time.Time
		}
		ListRecent []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			Limit int
		}
		ListOverdue []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			Now   time.Time
			Limit int
		}
	}
	lockCountByStatus     sync.RWMutex
	lockCountOverdue      sync.RWMutex
	lockCountCreatedSince sync.RWMutex
	lockListRecent        sync.RWMutex
	lockListOverdue       sync.RWMutex
}

func (mock *taskRepoMock) CountByStatus(ctx context.Context, scope domain.DashboardScope) (map[domain.TaskStatus]int, error) {
	if mock.CountByStatusFunc == nil {
		panic("taskRepoMock.CountByStatusFunc: method is nil but taskRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
	}{
		Ctx:   ctx,
		Scope: scope,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, scope)
}

func (mock *taskRepoMock) CountByStatusCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *taskRepoMock) CountOverdue(ctx context.Context, scope domain.DashboardScope, now time.Time) (int, error) {
	if mock.CountOverdueFunc == nil {
		panic("taskRepoMock.CountOverdueFunc: method is nil but taskRepo.CountOverdue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		Now   time.Time
	}{
		Ctx:   ctx,
		Scope: scope,
		Now:   now,
	}
	mock.lockCountOverdue.Lock()
	mock.calls.CountOverdue = append(mock.calls.CountOverdue, callInfo)
	mock.lockCountOverdue.Unlock()
	return mock.CountOverdueFunc(ctx, scope, now)
}

func (mock *taskRepoMock) CountOverdueCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	Now   time.Time
} {
	mock.lockCountOverdue.RLock()
	calls := mock.calls.CountOverdue
	mock.lockCountOverdue.RUnlock()
	return calls
}

func (mock *taskRepoMock) CountCreatedSince(ctx context.Context, scope domain.DashboardScope, since time.Time) (int, error) {
	if mock.CountCreatedSinceFunc == nil {
		panic("taskRepoMock.CountCreatedSinceFunc: method is nil but taskRepo.CountCreatedSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		Since time.Time
	}{
		Ctx:   ctx,
		Scope: scope,
		Since: since,
	}
	mock.lockCountCreatedSince.Lock()
	mock.calls.CountCreatedSince = append(mock.calls.CountCreatedSince, callInfo)
	mock.lockCountCreatedSince.Unlock()
	return mock.CountCreatedSinceFunc(ctx, scope, since)
}

func (mock *taskRepoMock) CountCreatedSinceCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	Since time.Time
} {
	mock.lockCountCreatedSince.RLock()
	calls := mock.calls.CountCreatedSince
	mock.lockCountCreatedSince.RUnlock()
	return calls
}

func (mock *taskRepoMock) ListRecent(ctx context.Context, scope domain.DashboardScope, limit int) ([]domain.Task, error) {
	if mock.ListRecentFunc == nil {
		panic("taskRepoMock.ListRecentFunc: method is nil but taskRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		Limit int
	}{
		Ctx:   ctx,
		Scope: scope,
		Limit: limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, scope, limit)
}

func (mock *taskRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *taskRepoMock) ListOverdue(ctx context.Context, scope domain.DashboardScope, now time.Time, limit int) ([]domain.Task, error) {
	if mock.ListOverdueFunc == nil {
		panic("taskRepoMock.ListOverdueFunc: method is nil but taskRepo.ListOverdue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.DashboardScope
		Now   time.Time
		Limit int
	}{
		Ctx:   ctx,
		Scope: scope,
		Now:   now,
		Limit: limit,
	}
	mock.lockListOverdue.Lock()
	mock.calls.ListOverdue = append(mock.calls.ListOverdue, callInfo)
	mock.lockListOverdue.Unlock()
	return mock.ListOverdueFunc(ctx, scope, now, limit)
}

func (mock *taskRepoMock) ListOverdueCalls() []struct {
	Ctx   context.Context
	Scope domain.DashboardScope
	Now   time.Time
	Limit int
} {
	mock.lockListOverdue.RLock()
	calls := mock.calls.ListOverdue
	mock.lockListOverdue.RUnlock()
	return calls
}

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	StatsFunc func(ctx context.Context, recipientID uuid.UUID, since time.Time) (domain.NotificationStats, error)

	calls struct {
		Stats []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			Since       time.Time
		}
	}
	lockStats sync.RWMutex
}

func (mock *notificationRepoMock) Stats(ctx context.Context, recipientID uuid.UUID, since time.Time) (domain.NotificationStats, error) {
	if mock.StatsFunc == nil {
		panic("notificationRepoMock.StatsFunc: method is nil but notificationRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		Since       time.Time
	}{
		Ctx:         ctx,
		RecipientID: recipientID,
		Since:       since,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, recipientID, since)
}

func (mock *notificationRepoMock) StatsCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	Since       time.Time
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
