package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Contract, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *contractRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	if mock.GetByIDFunc == nil {
		panic("contractRepoMock.GetByIDFunc: method is nil but contractRepo.GetByID was just called")
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

func (mock *contractRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

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
	NotifyTaskAssignedFunc  func(ctx context.Context, t domain.Task, c domain.Contract, actor domain.Actor) error
	NotifyTaskCompletedFunc func(ctx context.Context, t domain.Task, c domain.Contract, completer domain.Actor) error

	calls struct {
		NotifyTaskAssigned []struct {
			Ctx   context.Context
			T     domain.Task
			C     domain.Contract
			Actor domain.Actor
		}
		NotifyTaskCompleted []struct {
			Ctx       context.Context
			T         domain.Task
			C         domain.Contract
			Completer domain.Actor
		}
	}
	lockNotifyTaskAssigned  sync.RWMutex
	lockNotifyTaskCompleted sync.RWMutex
}

func (mock *notifierMock) NotifyTaskAssigned(ctx context.Context, t domain.Task, c domain.Contract, actor domain.Actor) error {
	if mock.NotifyTaskAssignedFunc == nil {
		panic("notifierMock.NotifyTaskAssignedFunc: method is nil but notifier.NotifyTaskAssigned was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		T     domain.Task
		C     domain.Contract
		Actor domain.Actor
	}{
		Ctx:   ctx,
		T:     t,
		C:     c,
		Actor: actor,
	}
	mock.lockNotifyTaskAssigned.Lock()
	mock.calls.NotifyTaskAssigned = append(mock.calls.NotifyTaskAssigned, callInfo)
	mock.lockNotifyTaskAssigned.Unlock()
	return mock.NotifyTaskAssignedFunc(ctx, t, c, actor)
}

func (mock *notifierMock) NotifyTaskAssignedCalls() []struct {
	Ctx   context.Context
	T     domain.Task
	C     domain.Contract
	Actor domain.Actor
} {
	mock.lockNotifyTaskAssigned.RLock()
	calls := mock.calls.NotifyTaskAssigned
	mock.lockNotifyTaskAssigned.RUnlock()
	return calls
}

func (mock *notifierMock) NotifyTaskCompleted(ctx context.Context, t domain.Task, c domain.Contract, completer domain.Actor) error {
	if mock.NotifyTaskCompletedFunc == nil {
		panic("notifierMock.NotifyTaskCompletedFunc: method is nil but notifier.NotifyTaskCompleted was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		T         domain.Task
		C         domain.Contract
		Completer domain.Actor
	}{
		Ctx:       ctx,
		T:         t,
		C:         c,
		Completer: completer,
	}
	mock.lockNotifyTaskCompleted.Lock()
	mock.calls.NotifyTaskCompleted = append(mock.calls.NotifyTaskCompleted, callInfo)
	mock.lockNotifyTaskCompleted.Unlock()
	return mock.NotifyTaskCompletedFunc(ctx, t, c, completer)
}

func (mock *notifierMock) NotifyTaskCompletedCalls() []struct {
	Ctx       context.Context
	T         domain.Task
	C         domain.Contract
	Completer domain.Actor
} {
	mock.lockNotifyTaskCompleted.RLock()
	calls := mock.calls.NotifyTaskCompleted
	mock.lockNotifyTaskCompleted.RUnlock()
	return calls
}
