package reservation

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	LockByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		LockByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockLockByID sync.RWMutex
}

func (mock *userRepoMock) LockByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.LockByIDFunc == nil {
		panic("userRepoMock.LockByIDFunc: method is nil but userRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

func (mock *userRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockLockByID.RLock()
	calls := mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}
