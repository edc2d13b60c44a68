package rest

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"github.com/heartmarshall/booklocker-backend/internal/service/account"
	"sync"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	GetProfileFunc     func(ctx context.Context, userID int64) (*domain.User, error)
	LoginFunc          func(ctx context.Context, input account.LoginInput) (*domain.User, error)
	RegisterFunc       func(ctx context.Context, input account.RegisterInput) (*domain.User, error)
	UpdateAccountFunc  func(ctx context.Context, input account.UpdateAccountInput) (*domain.User, error)
	UpdateNameFunc     func(ctx context.Context, userID int64, name string) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, input account.UpdatePasswordInput) error

	calls struct {
		GetProfile []struct {
			Ctx    context.Context
			UserID int64
		}
		Login []struct {
			Ctx   context.Context
			Input account.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input account.RegisterInput
		}
		UpdateAccount []struct {
			Ctx   context.Context
			Input account.UpdateAccountInput
		}
		UpdateName []struct {
			Ctx    context.Context
			UserID int64
			Name   string
		}
		UpdatePassword []struct {
			Ctx   context.Context
			Input account.UpdatePasswordInput
		}
	}
	lockGetProfile     sync.RWMutex
	lockLogin          sync.RWMutex
	lockRegister       sync.RWMutex
	lockUpdateAccount  sync.RWMutex
	lockUpdateName     sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *accountServiceMock) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("accountServiceMock.GetProfileFunc: method is nil but accountService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, userID)
}

func (mock *accountServiceMock) GetProfileCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (*domain.User, error) {
	if mock.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *accountServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input account.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *accountServiceMock) Register(ctx context.Context, input account.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input account.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateAccount(ctx context.Context, input account.UpdateAccountInput) (*domain.User, error) {
	if mock.UpdateAccountFunc == nil {
		panic("accountServiceMock.UpdateAccountFunc: method is nil but accountService.UpdateAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.UpdateAccountInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateAccount.Lock()
	mock.calls.UpdateAccount = append(mock.calls.UpdateAccount, callInfo)
	mock.lockUpdateAccount.Unlock()
	return mock.UpdateAccountFunc(ctx, input)
}

func (mock *accountServiceMock) UpdateAccountCalls() []struct {
	Ctx   context.Context
	Input account.UpdateAccountInput
} {
	mock.lockUpdateAccount.RLock()
	calls := mock.calls.UpdateAccount
	mock.lockUpdateAccount.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error) {
	if mock.UpdateNameFunc == nil {
		panic("accountServiceMock.UpdateNameFunc: method is nil but accountService.UpdateName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		Name   string
	}{Ctx: ctx, UserID: userID, Name: name}
	mock.lockUpdateName.Lock()
	mock.calls.UpdateName = append(mock.calls.UpdateName, callInfo)
	mock.lockUpdateName.Unlock()
	return mock.UpdateNameFunc(ctx, userID, name)
}

func (mock *accountServiceMock) UpdateNameCalls() []struct {
	Ctx    context.Context
	UserID int64
	Name   string
} {
	mock.lockUpdateName.RLock()
	calls := mock.calls.UpdateName
	mock.lockUpdateName.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdatePassword(ctx context.Context, input account.UpdatePasswordInput) error {
	if mock.UpdatePasswordFunc == nil {
		panic("accountServiceMock.UpdatePasswordFunc: method is nil but accountService.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.UpdatePasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, input)
}

func (mock *accountServiceMock) UpdatePasswordCalls() []struct {
	Ctx   context.Context
	Input account.UpdatePasswordInput
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
