package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Register creates a user. Email uniqueness is case-insensitive and is
// enforced by the database.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	return withoutHash(user), nil
}
