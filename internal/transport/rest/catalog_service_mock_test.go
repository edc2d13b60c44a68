package rest

import (
	"context"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	AvailableBooksAtMachineFunc func(ctx context.Context, machineID int64) ([]domain.BookView, error)
	FilterByCategoryFunc        func(ctx context.Context, category string) ([]domain.BookView, error)
	FilterByMachineFunc         func(ctx context.Context, machineID int64) ([]domain.BookView, error)
	GetBookFunc                 func(ctx context.Context, id int64) (*domain.BookView, error)
	ListBooksFunc               func(ctx context.Context) ([]domain.BookView, error)
	ListMachinesFunc            func(ctx context.Context) ([]domain.Machine, error)
	MachinesHoldingBookFunc     func(ctx context.Context, bookID int64) ([]domain.Machine, error)
	SearchBooksFunc             func(ctx context.Context, title string) ([]domain.BookView, error)

	calls struct {
		AvailableBooksAtMachine []struct {
			Ctx       context.Context
			MachineID int64
		}
		FilterByCategory []struct {
			Ctx      context.Context
			Category string
		}
		FilterByMachine []struct {
			Ctx       context.Context
			MachineID int64
		}
		GetBook []struct {
			Ctx context.Context
			ID  int64
		}
		ListBooks []struct {
			Ctx context.Context
		}
		ListMachines []struct {
			Ctx context.Context
		}
		MachinesHoldingBook []struct {
			Ctx    context.Context
			BookID int64
		}
		SearchBooks []struct {
			Ctx   context.Context
			Title string
		}
	}
	lockAvailableBooksAtMachine sync.RWMutex
	lockFilterByCategory        sync.RWMutex
	lockFilterByMachine         sync.RWMutex
	lockGetBook                 sync.RWMutex
	lockListBooks               sync.RWMutex
	lockListMachines            sync.RWMutex
	lockMachinesHoldingBook     sync.RWMutex
	lockSearchBooks             sync.RWMutex
}

func (mock *catalogServiceMock) AvailableBooksAtMachine(ctx context.Context, machineID int64) ([]domain.BookView, error) {
	if mock.AvailableBooksAtMachineFunc == nil {
		panic("catalogServiceMock.AvailableBooksAtMachineFunc: method is nil but catalogService.AvailableBooksAtMachine was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MachineID int64
	}{Ctx: ctx, MachineID: machineID}
	mock.lockAvailableBooksAtMachine.Lock()
	mock.calls.AvailableBooksAtMachine = append(mock.calls.AvailableBooksAtMachine, callInfo)
	mock.lockAvailableBooksAtMachine.Unlock()
	return mock.AvailableBooksAtMachineFunc(ctx, machineID)
}

func (mock *catalogServiceMock) AvailableBooksAtMachineCalls() []struct {
	Ctx       context.Context
	MachineID int64
} {
	mock.lockAvailableBooksAtMachine.RLock()
	calls := mock.calls.AvailableBooksAtMachine
	mock.lockAvailableBooksAtMachine.RUnlock()
	return calls
}

func (mock *catalogServiceMock) FilterByCategory(ctx context.Context, category string) ([]domain.BookView, error) {
	if mock.FilterByCategoryFunc == nil {
		panic("catalogServiceMock.FilterByCategoryFunc: method is nil but catalogService.FilterByCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category string
	}{Ctx: ctx, Category: category}
	mock.lockFilterByCategory.Lock()
	mock.calls.FilterByCategory = append(mock.calls.FilterByCategory, callInfo)
	mock.lockFilterByCategory.Unlock()
	return mock.FilterByCategoryFunc(ctx, category)
}

func (mock *catalogServiceMock) FilterByCategoryCalls() []struct {
	Ctx      context.Context
	Category string
} {
	mock.lockFilterByCategory.RLock()
	calls := mock.calls.FilterByCategory
	mock.lockFilterByCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) FilterByMachine(ctx context.Context, machineID int64) ([]domain.BookView, error) {
	if mock.FilterByMachineFunc == nil {
		panic("catalogServiceMock.FilterByMachineFunc: method is nil but catalogService.FilterByMachine was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MachineID int64
	}{Ctx: ctx, MachineID: machineID}
	mock.lockFilterByMachine.Lock()
	mock.calls.FilterByMachine = append(mock.calls.FilterByMachine, callInfo)
	mock.lockFilterByMachine.Unlock()
	return mock.FilterByMachineFunc(ctx, machineID)
}

func (mock *catalogServiceMock) FilterByMachineCalls() []struct {
	Ctx       context.Context
	MachineID int64
} {
	mock.lockFilterByMachine.RLock()
	calls := mock.calls.FilterByMachine
	mock.lockFilterByMachine.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetBook(ctx context.Context, id int64) (*domain.BookView, error) {
	if mock.GetBookFunc == nil {
		panic("catalogServiceMock.GetBookFunc: method is nil but catalogService.GetBook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetBook.Lock()
	mock.calls.GetBook = append(mock.calls.GetBook, callInfo)
	mock.lockGetBook.Unlock()
	return mock.GetBookFunc(ctx, id)
}

func (mock *catalogServiceMock) GetBookCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetBook.RLock()
	calls := mock.calls.GetBook
	mock.lockGetBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListBooks(ctx context.Context) ([]domain.BookView, error) {
	if mock.ListBooksFunc == nil {
		panic("catalogServiceMock.ListBooksFunc: method is nil but catalogService.ListBooks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListBooks.Lock()
	mock.calls.ListBooks = append(mock.calls.ListBooks, callInfo)
	mock.lockListBooks.Unlock()
	return mock.ListBooksFunc(ctx)
}

func (mock *catalogServiceMock) ListBooksCalls() []struct {
	Ctx context.Context
} {
	mock.lockListBooks.RLock()
	calls := mock.calls.ListBooks
	mock.lockListBooks.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	if mock.ListMachinesFunc == nil {
		panic("catalogServiceMock.ListMachinesFunc: method is nil but catalogService.ListMachines was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListMachines.Lock()
	mock.calls.ListMachines = append(mock.calls.ListMachines, callInfo)
	mock.lockListMachines.Unlock()
	return mock.ListMachinesFunc(ctx)
}

func (mock *catalogServiceMock) ListMachinesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMachines.RLock()
	calls := mock.calls.ListMachines
	mock.lockListMachines.RUnlock()
	return calls
}

func (mock *catalogServiceMock) MachinesHoldingBook(ctx context.Context, bookID int64) ([]domain.Machine, error) {
	if mock.MachinesHoldingBookFunc == nil {
		panic("catalogServiceMock.MachinesHoldingBookFunc: method is nil but catalogService.MachinesHoldingBook was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		BookID int64
	}{Ctx: ctx, BookID: bookID}
	mock.lockMachinesHoldingBook.Lock()
	mock.calls.MachinesHoldingBook = append(mock.calls.MachinesHoldingBook, callInfo)
	mock.lockMachinesHoldingBook.Unlock()
	return mock.MachinesHoldingBookFunc(ctx, bookID)
}

func (mock *catalogServiceMock) MachinesHoldingBookCalls() []struct {
	Ctx    context.Context
	BookID int64
} {
	mock.lockMachinesHoldingBook.RLock()
	calls := mock.calls.MachinesHoldingBook
	mock.lockMachinesHoldingBook.RUnlock()
	return calls
}

func (mock *catalogServiceMock) SearchBooks(ctx context.Context, title string) ([]domain.BookView, error) {
	if mock.SearchBooksFunc == nil {
		panic("catalogServiceMock.SearchBooksFunc: method is nil but catalogService.SearchBooks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
	}{Ctx: ctx, Title: title}
	mock.lockSearchBooks.Lock()
	mock.calls.SearchBooks = append(mock.calls.SearchBooks, callInfo)
	mock.lockSearchBooks.Unlock()
	return mock.SearchBooksFunc(ctx, title)
}

func (mock *catalogServiceMock) SearchBooksCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockSearchBooks.RLock()
	calls := mock.calls.SearchBooks
	mock.lockSearchBooks.RUnlock()
	return calls
}
