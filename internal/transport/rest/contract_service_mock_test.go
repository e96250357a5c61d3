package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
	"github.com/heartmarshall/contracts-backend/internal/service/contract"
)

var _ contractService = &contractServiceMock{}

type contractServiceMock struct {
	CreateContractFunc       func(ctx context.Context, input contract.CreateContractInput) (*domain.Contract, error)
	UpdateContractFunc       func(ctx context.Context, input contract.UpdateContractInput) (*domain.Contract, error)
	UpdateStatusFunc         func(ctx context.Context, input contract.UpdateStatusInput) (*domain.Contract, error)
	ApproveFunc              func(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error)
	RejectFunc               func(ctx context.Context, input contract.RejectInput) (*domain.Contract, error)
	DeleteContractFunc       func(ctx context.Context, contractID uuid.UUID) error
	GetContractFunc          func(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error)
	ListContractsFunc        func(ctx context.Context, input contract.ListContractsInput) (domain.ContractPage, error)
	ListByTypeFunc           func(ctx context.Context, typ domain.ContractType, page int, limit int) (domain.ContractPage, error)
	ListByStatusFunc         func(ctx context.Context, status domain.ContractStatus, page int, limit int) (domain.ContractPage, error)
	GetExpiringContractsFunc func(ctx context.Context, days int) ([]domain.Contract, error)

	calls struct {
		CreateContract []struct {
			Ctx   context.Context
			Input contract.CreateContractInput
		}
		UpdateContract []struct {
			Ctx   context.Context
			Input contract.UpdateContractInput
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Input contract.UpdateStatusInput
		}
		Approve []struct {
			Ctx        context.Context
			ContractID uuid.UUID
		}
		Reject []struct {
			Ctx   context.Context
			Input contract.RejectInput
		}
		DeleteContract []struct {
			Ctx        context.Context
			ContractID uuid.UUID
		}
		GetContract []struct {
			Ctx        context.Context
			ContractID uuid.UUID
		}
		ListContracts []struct {
			Ctx   context.Context
			Input contract.ListContractsInput
		}
		ListByType []struct {
			Ctx   context.Context
			Typ   domain.ContractType
			Page  int
			Limit int
		}
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.ContractStatus
			Page   int
			Limit  int
		}
		GetExpiringContracts []struct {
			Ctx  context.Context
			Days int
		}
	}
	lockCreateContract       sync.RWMutex
	lockUpdateContract       sync.RWMutex
	lockUpdateStatus         sync.RWMutex
	lockApprove              sync.RWMutex
	lockReject               sync.RWMutex
	lockDeleteContract       sync.RWMutex
	lockGetContract          sync.RWMutex
	lockListContracts        sync.RWMutex
	lockListByType           sync.RWMutex
	lockListByStatus         sync.RWMutex
	lockGetExpiringContracts sync.RWMutex
}

func (mock *contractServiceMock) CreateContract(ctx context.Context, input contract.CreateContractInput) (*domain.Contract, error) {
	if mock.CreateContractFunc == nil {
		panic("contractServiceMock.CreateContractFunc: method is nil but contractService.CreateContract was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contract.CreateContractInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateContract.Lock()
	mock.calls.CreateContract = append(mock.calls.CreateContract, callInfo)
	mock.lockCreateContract.Unlock()
	return mock.CreateContractFunc(ctx, input)
}

func (mock *contractServiceMock) CreateContractCalls() []struct {
	Ctx   context.Context
	Input contract.CreateContractInput
} {
	mock.lockCreateContract.RLock()
	calls := mock.calls.CreateContract
	mock.lockCreateContract.RUnlock()
	return calls
}

func (mock *contractServiceMock) UpdateContract(ctx context.Context, input contract.UpdateContractInput) (*domain.Contract, error) {
	if mock.UpdateContractFunc == nil {
		panic("contractServiceMock.UpdateContractFunc: method is nil but contractService.UpdateContract was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contract.UpdateContractInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateContract.Lock()
	mock.calls.UpdateContract = append(mock.calls.UpdateContract, callInfo)
	mock.lockUpdateContract.Unlock()
	return mock.UpdateContractFunc(ctx, input)
}

func (mock *contractServiceMock) UpdateContractCalls() []struct {
	Ctx   context.Context
	Input contract.UpdateContractInput
} {
	mock.lockUpdateContract.RLock()
	calls := mock.calls.UpdateContract
	mock.lockUpdateContract.RUnlock()
	return calls
}

func (mock *contractServiceMock) UpdateStatus(ctx context.Context, input contract.UpdateStatusInput) (*domain.Contract, error) {
	if mock.UpdateStatusFunc == nil {
		panic("contractServiceMock.UpdateStatusFunc: method is nil but contractService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contract.UpdateStatusInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, input)
}

func (mock *contractServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Input contract.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *contractServiceMock) Approve(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	if mock.ApproveFunc == nil {
		panic("contractServiceMock.ApproveFunc: method is nil but contractService.Approve was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ContractID uuid.UUID
	}{
		Ctx:        ctx,
		ContractID: contractID,
	}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, contractID)
}

func (mock *contractServiceMock) ApproveCalls() []struct {
	Ctx        context.Context
	ContractID uuid.UUID
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *contractServiceMock) Reject(ctx context.Context, input contract.RejectInput) (*domain.Contract, error) {
	if mock.RejectFunc == nil {
		panic("contractServiceMock.RejectFunc: method is nil but contractService.Reject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contract.RejectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, input)
}

func (mock *contractServiceMock) RejectCalls() []struct {
	Ctx   context.Context
	Input contract.RejectInput
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}

func (mock *contractServiceMock) DeleteContract(ctx context.Context, contractID uuid.UUID) error {
	if mock.DeleteContractFunc == nil {
		panic("contractServiceMock.DeleteContractFunc: method is nil but contractService.DeleteContract was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ContractID uuid.UUID
	}{
		Ctx:        ctx,
		ContractID: contractID,
	}
	mock.lockDeleteContract.Lock()
	mock.calls.DeleteContract = append(mock.calls.DeleteContract, callInfo)
	mock.lockDeleteContract.Unlock()
	return mock.DeleteContractFunc(ctx, contractID)
}

func (mock *contractServiceMock) DeleteContractCalls() []struct {
	Ctx        context.Context
	ContractID uuid.UUID
} {
	mock.lockDeleteContract.RLock()
	calls := mock.calls.DeleteContract
	mock.lockDeleteContract.RUnlock()
	return calls
}

func (mock *contractServiceMock) GetContract(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	if mock.GetContractFunc == nil {
		panic("contractServiceMock.GetContractFunc: method is nil but contractService.GetContract was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ContractID uuid.UUID
	}{
		Ctx:        ctx,
		ContractID: contractID,
	}
	mock.lockGetContract.Lock()
	mock.calls.GetContract = append(mock.calls.GetContract, callInfo)
	mock.lockGetContract.Unlock()
	return mock.GetContractFunc(ctx, contractID)
}

func (mock *contractServiceMock) GetContractCalls() []struct {
	Ctx        context.Context
	ContractID uuid.UUID
} {
	mock.lockGetContract.RLock()
	calls := mock.calls.GetContract
	mock.lockGetContract.RUnlock()
	return calls
}

func (mock *contractServiceMock) ListContracts(ctx context.Context, input contract.ListContractsInput) (domain.ContractPage, error) {
	if mock.ListContractsFunc == nil {
		panic("contractServiceMock.ListContractsFunc: method is nil but contractService.ListContracts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contract.ListContractsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListContracts.Lock()
	mock.calls.ListContracts = append(mock.calls.ListContracts, callInfo)
	mock.lockListContracts.Unlock()
	return mock.ListContractsFunc(ctx, input)
}

func (mock *contractServiceMock) ListContractsCalls() []struct {
	Ctx   context.Context
	Input contract.ListContractsInput
} {
	mock.lockListContracts.RLock()
	calls := mock.calls.ListContracts
	mock.lockListContracts.RUnlock()
	return calls
}

func (mock *contractServiceMock) ListByType(ctx context.Context, typ domain.ContractType, page int, limit int) (domain.ContractPage, error) {
	if mock.ListByTypeFunc == nil {
		panic("contractServiceMock.ListByTypeFunc: method is nil but contractService.ListByType was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Typ   domain.ContractType
		Page  int
		Limit int
	}{
		Ctx:   ctx,
		Typ:   typ,
		Page:  page,
		Limit: limit,
	}
	mock.lockListByType.Lock()
	mock.calls.ListByType = append(mock.calls.ListByType, callInfo)
	mock.lockListByType.Unlock()
	return mock.ListByTypeFunc(ctx, typ, page, limit)
}

func (mock *contractServiceMock) ListByTypeCalls() []struct {
	Ctx   context.Context
	Typ   domain.ContractType
	Page  int
	Limit int
} {
	mock.lockListByType.RLock()
	calls := mock.calls.ListByType
	mock.lockListByType.RUnlock()
	return calls
}

func (mock *contractServiceMock) ListByStatus(ctx context.Context, status domain.ContractStatus, page int, limit int) (domain.ContractPage, error) {
	if mock.ListByStatusFunc == nil {
		panic("contractServiceMock.ListByStatusFunc: method is nil but contractService.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.ContractStatus
		Page   int
		Limit  int
	}{
		Ctx:    ctx,
		Status: status,
		Page:   page,
		Limit:  limit,
	}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status, page, limit)
}

func (mock *contractServiceMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.ContractStatus
	Page   int
	Limit  int
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *contractServiceMock) GetExpiringContracts(ctx context.Context, days int) ([]domain.Contract, error) {
	if mock.GetExpiringContractsFunc == nil {
		panic("contractServiceMock.GetExpiringContractsFunc: method is nil but contractService.GetExpiringContracts was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{
		Ctx:  ctx,
		Days: days,
	}
	mock.lockGetExpiringContracts.Lock()
	mock.calls.GetExpiringContracts = append(mock.calls.GetExpiringContracts, callInfo)
	mock.lockGetExpiringContracts.Unlock()
	return mock.GetExpiringContractsFunc(ctx, days)
}

func (mock *contractServiceMock) GetExpiringContractsCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockGetExpiringContracts.RLock()
	calls := mock.calls.GetExpiringContracts
	mock.lockGetExpiringContracts.RUnlock()
	return calls
}
