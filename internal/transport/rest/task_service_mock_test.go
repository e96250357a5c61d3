package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/contracts-backend/internal/domain"
	"github.com/heartmarshall/contracts-backend/internal/service/task"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	CreateTaskFunc       func(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	UpdateTaskFunc       func(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTaskFunc       func(ctx context.Context, taskID uuid.UUID) error
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)
	ListByContractFunc   func(ctx context.Context, contractID uuid.UUID) ([]domain.Task, error)
	AddDependencyFunc    func(ctx context.Context, input task.DependencyInput) (*domain.TaskDependency, error)
	RemoveDependencyFunc func(ctx context.Context, input task.DependencyInput) error
	ListDependenciesFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.TaskDependency, error)

	calls struct {
		CreateTask []struct {
			Ctx   context.Context
			Input task.CreateTaskInput
		}
		UpdateTask []struct {
			Ctx   context.Context
			Input task.UpdateTaskInput
		}
		DeleteTask []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Status *domain.TaskStatus
		}
		ListByContract []struct {
			Ctx        context.Context
			ContractID uuid.UUID
		}
		AddDependency []struct {
			Ctx   context.Context
			Input task.DependencyInput
		}
		RemoveDependency []struct {
			Ctx   context.Context
			Input task.DependencyInput
		}
		ListDependencies []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
	}
	lockCreateTask       sync.RWMutex
	lockUpdateTask       sync.RWMutex
	lockDeleteTask       sync.RWMutex
	lockListByUser       sync.RWMutex
	lockListByContract   sync.RWMutex
	lockAddDependency    sync.RWMutex
	lockRemoveDependency sync.RWMutex
	lockListDependencies sync.RWMutex
}

func (mock *taskServiceMock) CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskServiceMock.CreateTaskFunc: method is nil but taskService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Input task.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskServiceMock.UpdateTaskFunc: method is nil but taskService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.UpdateTaskInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) UpdateTaskCalls() []struct {
	Ctx   context.Context
	Input task.UpdateTaskInput
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("taskServiceMock.DeleteTaskFunc: method is nil but taskService.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, taskID)
}

func (mock *taskServiceMock) DeleteTaskCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error) {
	if mock.ListByUserFunc == nil {
		panic("taskServiceMock.ListByUserFunc: method is nil but taskService.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Status *domain.TaskStatus
	}{
		Ctx:    ctx,
		UserID: userID,
		Status: status,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, status)
}

func (mock *taskServiceMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Status *domain.TaskStatus
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Task, error) {
	if mock.ListByContractFunc == nil {
		panic("taskServiceMock.ListByContractFunc: method is nil but taskService.ListByContract was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ContractID uuid.UUID
	}{
		Ctx:        ctx,
		ContractID: contractID,
	}
	mock.lockListByContract.Lock()
	mock.calls.ListByContract = append(mock.calls.ListByContract, callInfo)
	mock.lockListByContract.Unlock()
	return mock.ListByContractFunc(ctx, contractID)
}

func (mock *taskServiceMock) ListByContractCalls() []struct {
	Ctx        context.Context
	ContractID uuid.UUID
} {
	mock.lockListByContract.RLock()
	calls := mock.calls.ListByContract
	mock.lockListByContract.RUnlock()
	return calls
}

func (mock *taskServiceMock) AddDependency(ctx context.Context, input task.DependencyInput) (*domain.TaskDependency, error) {
	if mock.AddDependencyFunc == nil {
		panic("taskServiceMock.AddDependencyFunc: method is nil but taskService.AddDependency was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.DependencyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddDependency.Lock()
	mock.calls.AddDependency = append(mock.calls.AddDependency, callInfo)
	mock.lockAddDependency.Unlock()
	return mock.AddDependencyFunc(ctx, input)
}

func (mock *taskServiceMock) AddDependencyCalls() []struct {
	Ctx   context.Context
	Input task.DependencyInput
} {
	mock.lockAddDependency.RLock()
	calls := mock.calls.AddDependency
	mock.lockAddDependency.RUnlock()
	return calls
}

func (mock *taskServiceMock) RemoveDependency(ctx context.Context, input task.DependencyInput) error {
	if mock.RemoveDependencyFunc == nil {
		panic("taskServiceMock.RemoveDependencyFunc: method is nil but taskService.RemoveDependency was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.DependencyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRemoveDependency.Lock()
	mock.calls.RemoveDependency = append(mock.calls.RemoveDependency, callInfo)
	mock.lockRemoveDependency.Unlock()
	return mock.RemoveDependencyFunc(ctx, input)
}

func (mock *taskServiceMock) RemoveDependencyCalls() []struct {
	Ctx   context.Context
	Input task.DependencyInput
} {
	mock.lockRemoveDependency.RLock()
	calls := mock.calls.RemoveDependency
	mock.lockRemoveDependency.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListDependencies(ctx context.Context, taskID uuid.UUID) ([]domain.TaskDependency, error) {
	if mock.ListDependenciesFunc == nil {
		panic("taskServiceMock.ListDependenciesFunc: method is nil but taskService.ListDependencies was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockListDependencies.Lock()
	mock.calls.ListDependencies = append(mock.calls.ListDependencies, callInfo)
	mock.lockListDependencies.Unlock()
	return mock.ListDependenciesFunc(ctx, taskID)
}

func (mock *taskServiceMock) ListDependenciesCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockListDependencies.RLock()
	calls := mock.calls.ListDependencies
	mock.lockListDependencies.RUnlock()
	return calls
}
