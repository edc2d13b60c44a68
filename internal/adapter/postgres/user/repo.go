// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectUsers() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, selectUsers().Where(squirrel.Eq{"id": id}), id)
}

// LockByID returns a user by primary key and holds a row lock until the
// surrounding transaction ends.
func (r *Repo) LockByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, selectUsers().Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, selectUsers().Where("lower(email) = lower(?)", email), 0)
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("name", "email", "password_hash").
		Values(u.Name, u.Email, u.PasswordHash).
		Suffix(returning)

	return r.getOne(ctx, q, 0)
}

// UpdateName sets a new display name.
func (r *Repo) UpdateName(ctx context.Context, id int64, name string) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	return r.getOne(ctx, q, id)
}

// UpdatePasswordHash replaces the stored password hash.
func (r *Repo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	q := postgres.Builder().
		Update(table).
		Set("password_hash", hash).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// Update replaces name, email and password hash in one statement.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("name", u.Name).
		Set("email", u.Email).
		Set("password_hash", u.PasswordHash).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix(returning)

	return r.getOne(ctx, q, u.ID)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id int64) (*domain.User, error) {
	var row userRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := row.toDomain()
	return &u, nil
}

type userRow struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
