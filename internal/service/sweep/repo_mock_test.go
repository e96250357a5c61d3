package sweep

import (
	"context"
	"sync"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	ListByStatusFunc func(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error)

	calls struct {
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.ContractStatus
		}
	}
	lockListByStatus sync.RWMutex
}

func (mock *contractRepoMock) ListByStatus(ctx context.Context, status domain.ContractStatus) ([]domain.Contract, error) {
	if mock.ListByStatusFunc == nil {
		panic("contractRepoMock.ListByStatusFunc: method is nil but contractRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.ContractStatus
	}{
		Ctx:    ctx,
		Status: status,
	}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status)
}

func (mock *contractRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.ContractStatus
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListPendingAssignedWithDueFunc func(ctx context.Context) ([]domain.Task, error)

	calls struct {
		ListPendingAssignedWithDue []struct {
			Ctx context.Context
		}
	}
	lockListPendingAssignedWithDue sync.RWMutex
}

func (mock *taskRepoMock) ListPendingAssignedWithDue(ctx context.Context) ([]domain.Task, error) {
	if mock.ListPendingAssignedWithDueFunc == nil {
		panic("taskRepoMock.ListPendingAssignedWithDueFunc: method is nil but taskRepo.ListPendingAssignedWithDue was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPendingAssignedWithDue.Lock()
	mock.calls.ListPendingAssignedWithDue = append(mock.calls.ListPendingAssignedWithDue, callInfo)
	mock.lockListPendingAssignedWithDue.Unlock()
	return mock.ListPendingAssignedWithDueFunc(ctx)
}

func (mock *taskRepoMock) ListPendingAssignedWithDueCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPendingAssignedWithDue.RLock()
	calls := mock.calls.ListPendingAssignedWithDue
	mock.lockListPendingAssignedWithDue.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyContractExpiringFunc func(ctx context.Context, c domain.Contract, days int) error
	NotifyContractExpiredFunc  func(ctx context.Context, c domain.Contract) error
	NotifyTaskDueSoonFunc      func(ctx context.Context, t domain.Task, days int) error
	NotifyTaskOverdueFunc      func(ctx context.Context, t domain.Task) error

	calls struct {
		NotifyContractExpiring []struct {
			Ctx  context.Context
			C    domain.Contract
			Days int
		}
		NotifyContractExpired []struct {
			Ctx context.Context
			C   domain.Contract
		}
		NotifyTaskDueSoon []struct {
			Ctx  context.Context
			T    domain.Task
			Days int
		}
		NotifyTaskOverdue []struct {
			Ctx context.Context
			T   domain.Task
		}
	}
	lockNotifyContractExpiring sync.RWMutex
	lockNotifyContractExpired  sync.RWMutex
	lockNotifyTaskDueSoon      sync.RWMutex
	lockNotifyTaskOverdue      sync.RWMutex
}

func (mock *notifierMock) NotifyContractExpiring(ctx context.Context, c domain.Contract, days int) error {
	if mock.NotifyContractExpiringFunc == nil {
		panic("notifierMock.NotifyContractExpiringFunc: method is nil but notifier.NotifyContractExpiring was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		C    domain.Contract
		Days int
	}{
		Ctx:  ctx,
		C:    c,
		Days: days,
	}
	mock.lockNotifyContractExpiring.Lock()
	mock.calls.NotifyContractExpiring = append(mock.calls.NotifyContractExpiring, callInfo)
	mock.lockNotifyContractExpiring.Unlock()
	return mock.NotifyContractExpiringFunc(ctx, c, days)
}

func (mock *notifierMock) NotifyContractExpiringCalls() []struct {
	Ctx  context.Context
	C    domain.Contract
	Days int
} {
	mock.lockNotifyContractExpiring.RLock()
	calls := mock.calls.NotifyContractExpiring
	mock.lockNotifyContractExpiring.RUnlock()
	return calls
}

func (mock *notifierMock) NotifyContractExpired(ctx context.Context, c domain.Contract) error {
	if mock.NotifyContractExpiredFunc == nil {
		panic("notifierMock.NotifyContractExpiredFunc: method is nil but notifier.NotifyContractExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Contract
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockNotifyContractExpired.Lock()
	mock.calls.NotifyContractExpired = append(mock.calls.NotifyContractExpired, callInfo)
	mock.lockNotifyContractExpired.Unlock()
	return mock.NotifyContractExpiredFunc(ctx, c)
}

func (mock *notifierMock) NotifyContractExpiredCalls() []struct {
	Ctx context.Context
	C   domain.Contract
} {
	mock.lockNotifyContractExpired.RLock()
	calls := mock.calls.NotifyContractExpired
	mock.lockNotifyContractExpired.RUnlock()
	return calls
}

func (mock *notifierMock) NotifyTaskDueSoon(ctx context.Context, t domain.Task, days int) error {
	if mock.NotifyTaskDueSoonFunc == nil {
		panic("notifierMock.NotifyTaskDueSoonFunc: method is nil but notifier.NotifyTaskDueSoon was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		T    domain.Task
		Days int
	}{
		Ctx:  ctx,
		T:    t,
		Days: days,
	}
	mock.lockNotifyTaskDueSoon.Lock()
	mock.calls.NotifyTaskDueSoon = append(mock.calls.NotifyTaskDueSoon, callInfo)
	mock.lockNotifyTaskDueSoon.Unlock()
	return mock.NotifyTaskDueSoonFunc(ctx, t, days)
}

func (mock *notifierMock) NotifyTaskDueSoonCalls() []struct {
	Ctx  context.Context
	T    domain.Task
	Days int
} {
	mock.lockNotifyTaskDueSoon.RLock()
	calls := mock.calls.NotifyTaskDueSoon
	mock.lockNotifyTaskDueSoon.RUnlock()
	return calls
}

func (mock *notifierMock) NotifyTaskOverdue(ctx context.Context, t domain.Task) error {
	if mock.NotifyTaskOverdueFunc == nil {
		panic("notifierMock.NotifyTaskOverdueFunc: method is nil but notifier.NotifyTaskOverdue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Task
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockNotifyTaskOverdue.Lock()
	mock.calls.NotifyTaskOverdue = append(mock.calls.NotifyTaskOverdue, callInfo)
	mock.lockNotifyTaskOverdue.Unlock()
	return mock.NotifyTaskOverdueFunc(ctx, t)
}

func (mock *notifierMock) NotifyTaskOverdueCalls() []struct {
	Ctx context.Context
	T   domain.Task
} {
	mock.lockNotifyTaskOverdue.RLock()
	calls := mock.calls.NotifyTaskOverdue
	mock.lockNotifyTaskOverdue.RUnlock()
	return calls
}
