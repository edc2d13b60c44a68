package favorite

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"sync"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	AddFunc       func(ctx context.Context, userID int64, bookID int64) (*domain.Favorite, error)
	ListViewsFunc func(ctx context.Context, userID int64) ([]domain.FavoriteView, error)
	RemoveFunc    func(ctx context.Context, userID int64, bookID int64) error

	calls struct {
		Add []struct {
			Ctx    context.Context
			UserID int64
			BookID int64
		}
		ListViews []struct {
			Ctx    context.Context
			UserID int64
		}
		Remove []struct {
			Ctx    context.Context
			UserID int64
			BookID int64
		}
	}
	lockAdd       sync.RWMutex
	lockListViews sync.RWMutex
	lockRemove    sync.RWMutex
}

func (mock *favoriteRepoMock) Add(ctx context.Context, userID int64, bookID int64) (*domain.Favorite, error) {
	if mock.AddFunc == nil {
		panic("favoriteRepoMock.AddFunc: method is nil but favoriteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		BookID int64
	}{Ctx: ctx, UserID: userID, BookID: bookID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, bookID)
}

func (mock *favoriteRepoMock) AddCalls() []struct {
	Ctx    context.Context
	UserID int64
	BookID int64
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) ListViews(ctx context.Context, userID int64) ([]domain.FavoriteView, error) {
	if mock.ListViewsFunc == nil {
		panic("favoriteRepoMock.ListViewsFunc: method is nil but favoriteRepo.ListViews was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockListViews.Lock()
	mock.calls.ListViews = append(mock.calls.ListViews, callInfo)
	mock.lockListViews.Unlock()
	return mock.ListViewsFunc(ctx, userID)
}

func (mock *favoriteRepoMock) ListViewsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListViews.RLock()
	calls := mock.calls.ListViews
	mock.lockListViews.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Remove(ctx context.Context, userID int64, bookID int64) error {
	if mock.RemoveFunc == nil {
		panic("favoriteRepoMock.RemoveFunc: method is nil but favoriteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		BookID int64
	}{Ctx: ctx, UserID: userID, BookID: bookID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, bookID)
}

func (mock *favoriteRepoMock) RemoveCalls() []struct {
	Ctx    context.Context
	UserID int64
	BookID int64
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
