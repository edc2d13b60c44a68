package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Login checks email and password. An unknown email and a wrong password
// produce the same error and take comparable time.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.VerifyDummy(input.Password)
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("account.Login get user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		return nil, errInvalidCredentials
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return withoutHash(user), nil
}
