package rest

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"github.com/heartmarshall/booklocker-backend/internal/service/reservation"
	"sync"
)

var _ reservationService = &reservationServiceMock{}

type reservationServiceMock struct {
	CancelFunc         func(ctx context.Context, input reservation.ActInput) (*domain.Reservation, error)
	CreateFunc         func(ctx context.Context, input reservation.CreateInput) (*domain.Reservation, error)
	ListActiveFunc     func(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error)
	ListHistoryFunc    func(ctx context.Context, userID int64) ([]domain.HistoryView, error)
	PickUpFunc         func(ctx context.Context, input reservation.ActInput) (*domain.HistoryEntry, error)
	RegisterPickupFunc func(ctx context.Context, input reservation.RegisterPickupInput) (*domain.HistoryEntry, error)

	calls struct {
		Cancel []struct {
			Ctx   context.Context
			Input reservation.ActInput
		}
		Create []struct {
			Ctx   context.Context
			Input reservation.CreateInput
		}
		ListActive []struct {
			Ctx    context.Context
			UserID int64
		}
		ListHistory []struct {
			Ctx    context.Context
			UserID int64
		}
		PickUp []struct {
			Ctx   context.Context
			Input reservation.ActInput
		}
		RegisterPickup []struct {
			Ctx   context.Context
			Input reservation.RegisterPickupInput
		}
	}
	lockCancel         sync.RWMutex
	lockCreate         sync.RWMutex
	lockListActive     sync.RWMutex
	lockListHistory    sync.RWMutex
	lockPickUp         sync.RWMutex
	lockRegisterPickup sync.RWMutex
}

func (mock *reservationServiceMock) Cancel(ctx context.Context, input reservation.ActInput) (*domain.Reservation, error) {
	if mock.CancelFunc == nil {
		panic("reservationServiceMock.CancelFunc: method is nil but reservationService.Cancel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.ActInput
	}{Ctx: ctx, Input: input}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, input)
}

func (mock *reservationServiceMock) CancelCalls() []struct {
	Ctx   context.Context
	Input reservation.ActInput
} {
	mock.lockCancel.RLock()
	calls := mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

func (mock *reservationServiceMock) Create(ctx context.Context, input reservation.CreateInput) (*domain.Reservation, error) {
	if mock.CreateFunc == nil {
		panic("reservationServiceMock.CreateFunc: method is nil but reservationService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *reservationServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input reservation.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reservationServiceMock) ListActive(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error) {
	if mock.ListActiveFunc == nil {
		panic("reservationServiceMock.ListActiveFunc: method is nil but reservationService.ListActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, userID)
}

func (mock *reservationServiceMock) ListActiveCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *reservationServiceMock) ListHistory(ctx context.Context, userID int64) ([]domain.HistoryView, error) {
	if mock.ListHistoryFunc == nil {
		panic("reservationServiceMock.ListHistoryFunc: method is nil but reservationService.ListHistory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, userID)
}

func (mock *reservationServiceMock) ListHistoryCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *reservationServiceMock) PickUp(ctx context.Context, input reservation.ActInput) (*domain.HistoryEntry, error) {
	if mock.PickUpFunc == nil {
		panic("reservationServiceMock.PickUpFunc: method is nil but reservationService.PickUp was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.ActInput
	}{Ctx: ctx, Input: input}
	mock.lockPickUp.Lock()
	mock.calls.PickUp = append(mock.calls.PickUp, callInfo)
	mock.lockPickUp.Unlock()
	return mock.PickUpFunc(ctx, input)
}

func (mock *reservationServiceMock) PickUpCalls() []struct {
	Ctx   context.Context
	Input reservation.ActInput
} {
	mock.lockPickUp.RLock()
	calls := mock.calls.PickUp
	mock.lockPickUp.RUnlock()
	return calls
}

func (mock *reservationServiceMock) RegisterPickup(ctx context.Context, input reservation.RegisterPickupInput) (*domain.HistoryEntry, error) {
	if mock.RegisterPickupFunc == nil {
		panic("reservationServiceMock.RegisterPickupFunc: method is nil but reservationService.RegisterPickup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.RegisterPickupInput
	}{Ctx: ctx, Input: input}
	mock.lockRegisterPickup.Lock()
	mock.calls.RegisterPickup = append(mock.calls.RegisterPickup, callInfo)
	mock.lockRegisterPickup.Unlock()
	return mock.RegisterPickupFunc(ctx, input)
}

func (mock *reservationServiceMock) RegisterPickupCalls() []struct {
	Ctx   context.Context
	Input reservation.RegisterPickupInput
} {
	mock.lockRegisterPickup.RLock()
	calls := mock.calls.RegisterPickup
	mock.lockRegisterPickup.RUnlock()
	return calls
}
