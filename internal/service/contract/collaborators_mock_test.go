package contract

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyApprovalRequiredFunc func(ctx context.Context, c domain.Contract) error
	NotifyStatusChangedFunc    func(ctx context.Context, c domain.Contract, oldStatus domain.ContractStatus, actor domain.Actor) error

	calls struct {
		NotifyApprovalRequired []struct {
			Ctx context.Context
			C   domain.Contract
		}
		NotifyStatusChanged []struct {
			Ctx       context.Context
			C         domain.Contract
			OldStatus domain.ContractStatus
			Actor     domain.Actor
		}
	}
	lockNotifyApprovalRequired sync.RWMutex
	lockNotifyStatusChanged    sync.RWMutex
}

func (mock *notifierMock) NotifyApprovalRequired(ctx context.Context, c domain.Contract) error {
	if mock.NotifyApprovalRequiredFunc == nil {
		panic("notifierMock.NotifyApprovalRequiredFunc: method is nil but notifier.NotifyApprovalRequired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Contract
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockNotifyApprovalRequired.Lock()
	mock.calls.NotifyApprovalRequired = append(mock.calls.NotifyApprovalRequired, callInfo)
	mock.lockNotifyApprovalRequired.Unlock()
	return mock.NotifyApprovalRequiredFunc(ctx, c)
}

func (mock *notifierMock) NotifyApprovalRequiredCalls() []struct {
	Ctx context.Context
	C   domain.Contract
} {
	mock.lockNotifyApprovalRequired.RLock()
	calls := mock.calls.NotifyApprovalRequired
	mock.lockNotifyApprovalRequired.RUnlock()
	return calls
}

func (mock *notifierMock) NotifyStatusChanged(ctx context.Context, c domain.Contract, oldStatus domain.ContractStatus, actor domain.Actor) error {
	if mock.NotifyStatusChangedFunc == nil {
		panic("notifierMock.NotifyStatusChangedFunc: method is nil but notifier.NotifyStatusChanged was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		C         domain.Contract
		OldStatus domain.ContractStatus
		Actor     domain.Actor
	}{
		Ctx:       ctx,
		C:         c,
		OldStatus: oldStatus,
		Actor:     actor,
	}
	mock.lockNotifyStatusChanged.Lock()
	mock.calls.NotifyStatusChanged = append(mock.calls.NotifyStatusChanged, callInfo)
	mock.lockNotifyStatusChanged.Unlock()
	return mock.NotifyStatusChangedFunc(ctx, c, oldStatus, actor)
}

func (mock *notifierMock) NotifyStatusChangedCalls() []struct {
	Ctx       context.Context
	C         domain.Contract
	OldStatus domain.ContractStatus
	Actor     domain.Actor
} {
	mock.lockNotifyStatusChanged.RLock()
	calls := mock.calls.NotifyStatusChanged
	mock.lockNotifyStatusChanged.RUnlock()
	return calls
}
