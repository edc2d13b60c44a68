package account

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc             func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.User, error)
	UpdateFunc             func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateNameFunc         func(ctx context.Context, id int64, name string) (*domain.User, error)
	UpdatePasswordHashFunc func(ctx context.Context, id int64, hash string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Update []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdateName []struct {
			Ctx  context.Context
			ID   int64
			Name string
		}
		UpdatePasswordHash []struct {
			Ctx  context.Context
			ID   int64
			Hash string
		}
	}
	lockCreate             sync.RWMutex
	lockGetByEmail         sync.RWMutex
	lockGetByID            sync.RWMutex
	lockUpdate             sync.RWMutex
	lockUpdateName         sync.RWMutex
	lockUpdatePasswordHash sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, u)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateName(ctx context.Context, id int64, name string) (*domain.User, error) {
	if mock.UpdateNameFunc == nil {
		panic("userRepoMock.UpdateNameFunc: method is nil but userRepo.UpdateName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		Name string
	}{Ctx: ctx, ID: id, Name: name}
	mock.lockUpdateName.Lock()
	mock.calls.UpdateName = append(mock.calls.UpdateName, callInfo)
	mock.lockUpdateName.Unlock()
	return mock.UpdateNameFunc(ctx, id, name)
}

func (mock *userRepoMock) UpdateNameCalls() []struct {
	Ctx  context.Context
	ID   int64
	Name string
} {
	mock.lockUpdateName.RLock()
	calls := mock.calls.UpdateName
	mock.lockUpdateName.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	if mock.UpdatePasswordHashFunc == nil {
		panic("userRepoMock.UpdatePasswordHashFunc: method is nil but userRepo.UpdatePasswordHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		Hash string
	}{Ctx: ctx, ID: id, Hash: hash}
	mock.lockUpdatePasswordHash.Lock()
	mock.calls.UpdatePasswordHash = append(mock.calls.UpdatePasswordHash, callInfo)
	mock.lockUpdatePasswordHash.Unlock()
	return mock.UpdatePasswordHashFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordHashCalls() []struct {
	Ctx  context.Context
	ID   int64
	Hash string
} {
	mock.lockUpdatePasswordHash.RLock()
	calls := mock.calls.UpdatePasswordHash
	mock.lockUpdatePasswordHash.RUnlock()
	return calls
}
