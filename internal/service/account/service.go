// Package account manages user registration, credentials and profile data.
package account

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
}

// hasher is satisfied by auth.BcryptHasher.
type hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
	VerifyDummy(password string)
}

var (
	errEmailTaken         = domain.NewError(domain.ErrConflict, "E-mail já cadastrado.")
	errInvalidCredentials = domain.NewError(domain.ErrUnauthorized, "Credenciais inválidas")
	errUserNotFound       = domain.NewError(domain.ErrNotFound, "Usuário não encontrado.")
	errWrongPassword      = domain.NewError(domain.ErrForbidden, "Senha atual incorreta.")
)

// Service owns the users table. Password hashes never leave it.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher hasher
}

// NewService creates a new account service.
func NewService(logger *slog.Logger, users userRepo, h hasher) *Service {
	return &Service{
		log:    logger.With("service", "account"),
		users:  users,
		hasher: h,
	}
}

// withoutHash returns a copy of u safe to hand to callers.
func withoutHash(u *domain.User) *domain.User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}
