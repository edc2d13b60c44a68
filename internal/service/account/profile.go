package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// GetProfile returns the user's public fields.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("id", "ID inválido.")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr("account.GetProfile", err)
	}
	return withoutHash(user), nil
}

// UpdateName renames a user.
func (s *Service) UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)

	var errs []domain.FieldError
	if userID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "ID inválido."})
	}
	errs = validateName(errs, name)
	if err := toError(errs); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateName(ctx, userID, name)
	if err != nil {
		return nil, notFoundOr("account.UpdateName", err)
	}

	s.log.InfoContext(ctx, "user renamed", slog.Int64("user_id", userID))

	return withoutHash(user), nil
}

// UpdatePassword replaces the password once the current one verifies.
func (s *Service) UpdatePassword(ctx context.Context, input UpdatePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return notFoundOr("account.UpdatePassword", err)
	}

	if !s.hasher.Verify(user.PasswordHash, input.CurrentPassword) {
		return errWrongPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("account.UpdatePassword hash password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return notFoundOr("account.UpdatePassword", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", user.ID))

	return nil
}

// UpdateAccount replaces name, email and password in one write.
func (s *Service) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateAccount hash password: %w", err)
	}

	user, err := s.users.Update(ctx, &domain.User{
		ID:           input.UserID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, errEmailTaken
		}
		return nil, notFoundOr("account.UpdateAccount", err)
	}

	s.log.InfoContext(ctx, "account updated", slog.Int64("user_id", user.ID))

	return withoutHash(user), nil
}

func notFoundOr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return errUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
