// Package reservation implements the Reservation repository using PostgreSQL.
package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Partial unique indexes guarding one active reservation per user and per book.
const (
	ActiveUserIndex = "ux_reservations_active_user"
	ActiveBookIndex = "ux_reservations_active_book"
)

var columns = []string{"r.id", "r.user_id", "r.book_id", "r.status", "r.created_at", "r.updated_at"}

// Repo provides reservation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new reservation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectReservations() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From("reservations r")
}

// Create inserts an active reservation. A concurrent active reservation for
// the same user surfaces as domain.ErrUserHasActiveReservation, for the same
// book as domain.ErrBookHasActiveReservation.
func (r *Repo) Create(ctx context.Context, userID, bookID int64) (*domain.Reservation, error) {
	q := postgres.Builder().
		Insert("reservations").
		Columns("user_id", "book_id", "status").
		Values(userID, bookID, string(domain.ReservationStatusActive)).
		Suffix("RETURNING id, user_id, book_id, status, created_at, updated_at")

	res, err := r.getOne(ctx, q, 0)
	if err != nil {
		switch postgres.ConstraintName(err) {
		case ActiveUserIndex:
			return nil, fmt.Errorf("%w: %w", domain.ErrUserHasActiveReservation, err)
		case ActiveBookIndex:
			return nil, fmt.Errorf("%w: %w", domain.ErrBookHasActiveReservation, err)
		}
		return nil, err
	}
	return res, nil
}

// LockByID returns a reservation and holds a row lock until the surrounding
// transaction ends.
func (r *Repo) LockByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	q := selectReservations().Where(squirrel.Eq{"r.id": id}).Suffix("FOR UPDATE")
	return r.getOne(ctx, q, id)
}

// LockActiveByID locks a reservation only if it is still active.
func (r *Repo) LockActiveByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	q := selectReservations().
		Where(squirrel.Eq{"r.id": id, "r.status": string(domain.ReservationStatusActive)}).
		Suffix("FOR UPDATE")
	return r.getOne(ctx, q, id)
}

// GetActiveByUser returns the user's active reservation, if any.
func (r *Repo) GetActiveByUser(ctx context.Context, userID int64) (*domain.Reservation, error) {
	q := selectReservations().
		Where(squirrel.Eq{"r.user_id": userID, "r.status": string(domain.ReservationStatusActive)})
	return r.getOne(ctx, q, 0)
}

// LockActiveByUserAndBook locks the user's active reservation for bookID.
func (r *Repo) LockActiveByUserAndBook(ctx context.Context, userID, bookID int64) (*domain.Reservation, error) {
	q := selectReservations().
		Where(squirrel.Eq{
			"r.user_id": userID,
			"r.book_id": bookID,
			"r.status":  string(domain.ReservationStatusActive),
		}).
		Suffix("FOR UPDATE")
	return r.getOne(ctx, q, 0)
}

// UpdateStatus moves a reservation to status.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("reservation %d: status %q: %w", id, status, domain.ErrValidation)
	}

	q := postgres.Builder().
		Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "reservation", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "reservation", id)
	}
	return nil
}

// ListActiveViews returns the user's active reservations joined with book
// and machine details, newest first.
func (r *Repo) ListActiveViews(ctx context.Context, userID int64) ([]domain.ActiveReservationView, error) {
	q := selectReservations().
		Columns("b.title AS book_title", "b.image_url AS book_image_url", "m.name AS machine_name").
		Join("books b ON b.id = r.book_id").
		LeftJoin("machines m ON m.id = b.machine_id").
		Where(squirrel.Eq{"r.user_id": userID, "r.status": string(domain.ReservationStatusActive)}).
		OrderBy("r.created_at DESC", "r.id DESC")

	var rows []activeViewRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, postgres.MapError(err, "reservation", 0)
	}

	out := make([]domain.ActiveReservationView, len(rows))
	for i, row := range rows {
		out[i] = domain.ActiveReservationView{
			Reservation:  row.reservationRow.toDomain(),
			BookTitle:    row.BookTitle,
			BookImageURL: row.BookImageURL,
			MachineName:  row.MachineName,
		}
	}
	return out, nil
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id int64) (*domain.Reservation, error) {
	var row reservationRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "reservation", id)
	}
	res := row.toDomain()
	return &res, nil
}

type reservationRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	BookID    int64     `db:"book_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r reservationRow) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Status:    domain.ReservationStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type activeViewRow struct {
	reservationRow
	BookTitle    string  `db:"book_title"`
	BookImageURL string  `db:"book_image_url"`
	MachineName  *string `db:"machine_name"`
}
