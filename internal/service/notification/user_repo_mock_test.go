package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListActiveByRoleFunc func(ctx context.Context, role domain.Role) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListActiveByRole []struct {
			Ctx  context.Context
			Role domain.Role
		}
	}
	lockGetByID          sync.RWMutex
	lockListActiveByRole sync.RWMutex
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

func (mock *userRepoMock) ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if mock.ListActiveByRoleFunc == nil {
		panic("userRepoMock.ListActiveByRoleFunc: method is nil but userRepo.ListActiveByRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role domain.Role
	}{
		Ctx:  ctx,
		Role: role,
	}
	mock.lockListActiveByRole.Lock()
	mock.calls.ListActiveByRole = append(mock.calls.ListActiveByRole, callInfo)
	mock.lockListActiveByRole.Unlock()
	return mock.ListActiveByRoleFunc(ctx, role)
}

func (mock *userRepoMock) ListActiveByRoleCalls() []struct {
	Ctx  context.Context
	Role domain.Role
} {
	mock.lockListActiveByRole.RLock()
	calls := mock.calls.ListActiveByRole
	mock.lockListActiveByRole.RUnlock()
	return calls
}
