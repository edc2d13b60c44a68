// Package favorite manages users' saved books.
package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

type favoriteRepo interface {
	Add(ctx context.Context, userID, bookID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, bookID int64) error
	ListViews(ctx context.Context, userID int64) ([]domain.FavoriteView, error)
}

var (
	errAlreadyFavorite = domain.NewError(domain.ErrConflict, "Livro já está nos favoritos.")
	errUnknownRef      = domain.NewError(domain.ErrNotFound, "Usuário ou livro não encontrado.")
	errNotFavorite     = domain.NewError(domain.ErrNotFound, "Favorito não encontrado.")
)

// Service adds, removes and lists favorites.
type Service struct {
	log       *slog.Logger
	favorites favoriteRepo
}

// NewService creates a new favorite service.
func NewService(logger *slog.Logger, favorites favoriteRepo) *Service {
	return &Service{
		log:       logger.With("service", "favorite"),
		favorites: favorites,
	}
}

// Input identifies a (user, book) pair.
type Input struct {
	UserID int64
	BookID int64
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "usuario_id", Message: "Campo \"usuario_id\" inválido."})
	}
	if i.BookID <= 0 {
		errs = append(errs, domain.FieldError{Field: "livro_id", Message: "Campo \"livro_id\" inválido."})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Add saves a book for a user.
func (s *Service) Add(ctx context.Context, input Input) (*domain.Favorite, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fav, err := s.favorites.Add(ctx, input.UserID, input.BookID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, errAlreadyFavorite
		case errors.Is(err, domain.ErrNotFound):
			return nil, errUnknownRef
		}
		return nil, fmt.Errorf("favorite.Add: %w", err)
	}

	s.log.InfoContext(ctx, "favorite added",
		slog.Int64("user_id", input.UserID),
		slog.Int64("book_id", input.BookID),
	)

	return fav, nil
}

// Remove deletes a saved book.
func (s *Service) Remove(ctx context.Context, input Input) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.favorites.Remove(ctx, input.UserID, input.BookID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFavorite
		}
		return fmt.Errorf("favorite.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "favorite removed",
		slog.Int64("user_id", input.UserID),
		slog.Int64("book_id", input.BookID),
	)

	return nil
}

// List returns the user's favorites, most recent first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.FavoriteView, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("usuario_id", "Campo \"usuario_id\" inválido.")
	}

	views, err := s.favorites.ListViews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("favorite.List: %w", err)
	}
	return views, nil
}
