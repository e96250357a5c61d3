package contract

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	CreateFunc       func(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	UpdateFunc       func(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Contract, error)
	ListFunc         func(ctx context.Context, filter domain.ContractFilter) (domain.ContractPage, error)
	ListExpiringFunc func(ctx context.Context, scope domain.DashboardScope, from time.Time, to time.Time, limit int) ([]domain.Contract, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Contract
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Contract
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ContractFilter
		}
		ListExpiring []struct {
			Ctx   context.Context
			Scope domain.DashboardScope
			From  time.Time
			To    time.Time
			Limit int
		}
	}
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockListExpiring sync.RWMutex
}

func (mock *contractRepoMock) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	if mock.CreateFunc == nil {
		panic("contractRepoMock.CreateFunc: method is nil but contractRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Contract
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contractRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Contract
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contractRepoMock) Update(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	if mock.UpdateFunc == nil {
		panic("contractRepoMock.UpdateFunc: method is nil but contractRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Contract
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *contractRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Contract
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contractRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contractRepoMock.DeleteFunc: method is nil but contractRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *contractRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *contractRepoMock) List(ctx context.Context, filter domain.ContractFilter) (domain.ContractPage, error) {
	if mock.ListFunc == nil {
		panic("contractRepoMock.ListFunc: method is nil but contractRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ContractFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *contractRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ContractFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
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
