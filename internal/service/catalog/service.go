// Package catalog serves read-only queries over books and machines.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

type bookRepo interface {
	List(ctx context.Context, f domain.BookFilter) ([]domain.BookView, error)
	GetByID(ctx context.Context, id int64) (*domain.BookView, error)
}

type machineRepo interface {
	List(ctx context.Context) ([]domain.Machine, error)
	GetByID(ctx context.Context, id int64) (*domain.Machine, error)
	ListHoldingBook(ctx context.Context, bookID int64) ([]domain.Machine, error)
}

var (
	errTitleRequired    = domain.NewValidationError("titulo", "Parâmetro \"titulo\" é obrigatório.")
	errInvalidCategory  = domain.NewValidationError("tipo", "Tipo deve ser \"pessoal\" ou \"profissional\".")
	errInvalidID        = domain.NewValidationError("id", "ID inválido.")
	errBookNotFound     = domain.NewError(domain.ErrNotFound, "Livro não encontrado.")
	errMachineEmpty     = domain.NewError(domain.ErrNotFound, "Nenhum livro disponível nesta máquina.")
	errMachineNotFound  = domain.NewError(domain.ErrNotFound, "Máquina não encontrada.")
	errNoMachineHolding = domain.NewError(domain.ErrNotFound, "Nenhuma máquina encontrada com este livro.")
)

// Service answers catalog queries. It never writes.
type Service struct {
	log      *slog.Logger
	books    bookRepo
	machines machineRepo
}

// NewService creates a new catalog service.
func NewService(logger *slog.Logger, books bookRepo, machines machineRepo) *Service {
	return &Service{
		log:      logger.With("service", "catalog"),
		books:    books,
		machines: machines,
	}
}

// ListBooks returns every book with the name of the machine holding it.
func (s *Service) ListBooks(ctx context.Context) ([]domain.BookView, error) {
	books, err := s.books.List(ctx, domain.BookFilter{})
	if err != nil {
		return nil, fmt.Errorf("catalog.ListBooks: %w", err)
	}
	return books, nil
}

// SearchBooks matches title as a case-insensitive substring.
func (s *Service) SearchBooks(ctx context.Context, title string) ([]domain.BookView, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errTitleRequired
	}

	books, err := s.books.List(ctx, domain.BookFilter{Title: &title})
	if err != nil {
		return nil, fmt.Errorf("catalog.SearchBooks: %w", err)
	}
	return books, nil
}

// GetBook returns one book by id.
func (s *Service) GetBook(ctx context.Context, id int64) (*domain.BookView, error) {
	if id <= 0 {
		return nil, errInvalidID
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBookNotFound
		}
		return nil, fmt.Errorf("catalog.GetBook: %w", err)
	}
	return book, nil
}

// FilterByCategory lists books of one category. The category may be given
// in its canonical or Portuguese spelling.
func (s *Service) FilterByCategory(ctx context.Context, category string) ([]domain.BookView, error) {
	cat, ok := domain.ParseBookCategory(category)
	if !ok {
		return nil, errInvalidCategory
	}

	books, err := s.books.List(ctx, domain.BookFilter{Category: &cat})
	if err != nil {
		return nil, fmt.Errorf("catalog.FilterByCategory: %w", err)
	}
	return books, nil
}

// FilterByMachine lists the available books stocked at a machine.
// An empty result is not an error.
func (s *Service) FilterByMachine(ctx context.Context, machineID int64) ([]domain.BookView, error) {
	if machineID <= 0 {
		return nil, errInvalidID
	}

	books, err := s.availableAt(ctx, machineID)
	if err != nil {
		return nil, fmt.Errorf("catalog.FilterByMachine: %w", err)
	}
	return books, nil
}

// ListMachines returns every machine.
func (s *Service) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListMachines: %w", err)
	}
	return machines, nil
}

// AvailableBooksAtMachine is FilterByMachine for the machine screen:
// an empty machine is reported as NotFound, and so is an unknown one,
// with its own message.
func (s *Service) AvailableBooksAtMachine(ctx context.Context, machineID int64) ([]domain.BookView, error) {
	if machineID <= 0 {
		return nil, errInvalidID
	}

	books, err := s.availableAt(ctx, machineID)
	if err != nil {
		return nil, fmt.Errorf("catalog.AvailableBooksAtMachine: %w", err)
	}
	if len(books) > 0 {
		return books, nil
	}

	if _, err := s.machines.GetByID(ctx, machineID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "unknown machine requested", slog.Int64("machine_id", machineID))
			return nil, errMachineNotFound
		}
		return nil, fmt.Errorf("catalog.AvailableBooksAtMachine: %w", err)
	}
	return nil, errMachineEmpty
}

// MachinesHoldingBook lists the machines stocking a book.
func (s *Service) MachinesHoldingBook(ctx context.Context, bookID int64) ([]domain.Machine, error) {
	if bookID <= 0 {
		return nil, errInvalidID
	}

	machines, err := s.machines.ListHoldingBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("catalog.MachinesHoldingBook: %w", err)
	}
	if len(machines) == 0 {
		return nil, errNoMachineHolding
	}
	return machines, nil
}

func (s *Service) availableAt(ctx context.Context, machineID int64) ([]domain.BookView, error) {
	status := domain.BookStatusAvailable
	return s.books.List(ctx, domain.BookFilter{MachineID: &machineID, Status: &status})
}
