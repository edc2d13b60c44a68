package catalog

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"sync"
)

var _ machineRepo = &machineRepoMock{}

type machineRepoMock struct {
	ListFunc            func(ctx context.Context) ([]domain.Machine, error)
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Machine, error)
	ListHoldingBookFunc func(ctx context.Context, bookID int64) ([]domain.Machine, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListHoldingBook []struct {
			Ctx    context.Context
			BookID int64
		}
	}
	lockList            sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListHoldingBook sync.RWMutex
}

func (mock *machineRepoMock) List(ctx context.Context) ([]domain.Machine, error) {
	if mock.ListFunc == nil {
		panic("machineRepoMock.ListFunc: method is nil but machineRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *machineRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *machineRepoMock) GetByID(ctx context.Context, id int64) (*domain.Machine, error) {
	if mock.GetByIDFunc == nil {
		panic("machineRepoMock.GetByIDFunc: method is nil but machineRepo.GetByID was just called")
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

func (mock *machineRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *machineRepoMock) ListHoldingBook(ctx context.Context, bookID int64) ([]domain.Machine, error) {
	if mock.ListHoldingBookFunc == nil {
		panic("machineRepoMock.ListHoldingBookFunc: method is nil but machineRepo.ListHoldingBook was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID int64
	}{Ctx: ctx, BookID: bookID}
	mock.lockListHoldingBook.Lock()
	mock.calls.ListHoldingBook = append(mock.calls.ListHoldingBook, callInfo)
	mock.lockListHoldingBook.Unlock()
	return mock.ListHoldingBookFunc(ctx, bookID)
}

func (mock *machineRepoMock) ListHoldingBookCalls() []struct {
	Ctx    context.Context
	BookID int64
} {
	mock.lockListHoldingBook.RLock()
	calls := mock.calls.ListHoldingBook
	mock.lockListHoldingBook.RUnlock()
	return calls
}
