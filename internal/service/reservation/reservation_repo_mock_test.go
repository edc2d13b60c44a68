package reservation

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"sync"
)

var _ reservationRepo = &reservationRepoMock{}

type reservationRepoMock struct {
	CreateFunc                  func(ctx context.Context, userID int64, bookID int64) (*domain.Reservation, error)
	GetActiveByUserFunc         func(ctx context.Context, userID int64) (*domain.Reservation, error)
	ListActiveViewsFunc         func(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error)
	LockActiveByIDFunc          func(ctx context.Context, id int64) (*domain.Reservation, error)
	LockActiveByUserAndBookFunc func(ctx context.Context, userID int64, bookID int64) (*domain.Reservation, error)
	LockByIDFunc                func(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatusFunc            func(ctx context.Context, id int64, status domain.ReservationStatus) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID int64
			BookID int64
		}
		GetActiveByUser []struct {
			Ctx    context.Context
			UserID int64
		}
		ListActiveViews []struct {
			Ctx    context.Context
			UserID int64
		}
		LockActiveByID []struct {
			Ctx context.Context
			ID  int64
		}
		LockActiveByUserAndBook []struct {
			Ctx    context.Context
			UserID int64
			BookID int64
		}
		LockByID []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     int64
			Status domain.ReservationStatus
		}
	}
	lockCreate                  sync.RWMutex
	lockGetActiveByUser         sync.RWMutex
	lockListActiveViews         sync.RWMutex
	lockLockActiveByID          sync.RWMutex
	lockLockActiveByUserAndBook sync.RWMutex
	lockLockByID                sync.RWMutex
	lockUpdateStatus            sync.RWMutex
}

func (mock *reservationRepoMock) Create(ctx context.Context, userID int64, bookID int64) (*domain.Reservation, error) {
	if mock.CreateFunc == nil {
		panic("reservationRepoMock.CreateFunc: method is nil but reservationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		BookID int64
	}{Ctx: ctx, UserID: userID, BookID: bookID}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, bookID)
}

func (mock *reservationRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID int64
	BookID int64
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reservationRepoMock) GetActiveByUser(ctx context.Context, userID int64) (*domain.Reservation, error) {
	if mock.GetActiveByUserFunc == nil {
		panic("reservationRepoMock.GetActiveByUserFunc: method is nil but reservationRepo.GetActiveByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockGetActiveByUser.Lock()
	mock.calls.GetActiveByUser = append(mock.calls.GetActiveByUser, callInfo)
	mock.lockGetActiveByUser.Unlock()
	return mock.GetActiveByUserFunc(ctx, userID)
}

func (mock *reservationRepoMock) GetActiveByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGetActiveByUser.RLock()
	calls := mock.calls.GetActiveByUser
	mock.lockGetActiveByUser.RUnlock()
	return calls
}

func (mock *reservationRepoMock) ListActiveViews(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error) {
	if mock.ListActiveViewsFunc == nil {
		panic("reservationRepoMock.ListActiveViewsFunc: method is nil but reservationRepo.ListActiveViews was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockListActiveViews.Lock()
	mock.calls.ListActiveViews = append(mock.calls.ListActiveViews, callInfo)
	mock.lockListActiveViews.Unlock()
	return mock.ListActiveViewsFunc(ctx, userID)
}

func (mock *reservationRepoMock) ListActiveViewsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListActiveViews.RLock()
	calls := mock.calls.ListActiveViews
	mock.lockListActiveViews.RUnlock()
	return calls
}

func (mock *reservationRepoMock) LockActiveByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if mock.LockActiveByIDFunc == nil {
		panic("reservationRepoMock.LockActiveByIDFunc: method is nil but reservationRepo.LockActiveByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockLockActiveByID.Lock()
	mock.calls.LockActiveByID = append(mock.calls.LockActiveByID, callInfo)
	mock.lockLockActiveByID.Unlock()
	return mock.LockActiveByIDFunc(ctx, id)
}

func (mock *reservationRepoMock) LockActiveByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockLockActiveByID.RLock()
	calls := mock.calls.LockActiveByID
	mock.lockLockActiveByID.RUnlock()
	return calls
}

func (mock *reservationRepoMock) LockActiveByUserAndBook(ctx context.Context, userID int64, bookID int64) (*domain.Reservation, error) {
	if mock.LockActiveByUserAndBookFunc == nil {
		panic("reservationRepoMock.LockActiveByUserAndBookFunc: method is nil but reservationRepo.LockActiveByUserAndBook was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		BookID int64
	}{Ctx: ctx, UserID: userID, BookID: bookID}
	mock.lockLockActiveByUserAndBook.Lock()
	mock.calls.LockActiveByUserAndBook = append(mock.calls.LockActiveByUserAndBook, callInfo)
	mock.lockLockActiveByUserAndBook.Unlock()
	return mock.LockActiveByUserAndBookFunc(ctx, userID, bookID)
}

func (mock *reservationRepoMock) LockActiveByUserAndBookCalls() []struct {
	Ctx    context.Context
	UserID int64
	BookID int64
} {
	mock.lockLockActiveByUserAndBook.RLock()
	calls := mock.calls.LockActiveByUserAndBook
	mock.lockLockActiveByUserAndBook.RUnlock()
	return calls
}

func (mock *reservationRepoMock) LockByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if mock.LockByIDFunc == nil {
		panic("reservationRepoMock.LockByIDFunc: method is nil but reservationRepo.LockByID was just called")
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

func (mock *reservationRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockLockByID.RLock()
	calls := mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}

func (mock *reservationRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("reservationRepoMock.UpdateStatusFunc: method is nil but reservationRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Status domain.ReservationStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *reservationRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Status domain.ReservationStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
