// Package favorite implements the Favorite repository using PostgreSQL.
package favorite

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new favorite repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Add stores the (user, book) pair. A duplicate pair yields
// domain.ErrAlreadyExists; an unknown user or book yields domain.ErrNotFound.
func (r *Repo) Add(ctx context.Context, userID, bookID int64) (*domain.Favorite, error) {
	q := postgres.Builder().
		Insert("favorites").
		Columns("user_id", "book_id").
		Values(userID, bookID).
		Suffix("RETURNING user_id, book_id, created_at")

	var row favoriteRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "favorite", bookID)
	}
	return &domain.Favorite{UserID: row.UserID, BookID: row.BookID, CreatedAt: row.CreatedAt}, nil
}

// Remove deletes the pair, returning domain.ErrNotFound when it did not exist.
func (r *Repo) Remove(ctx context.Context, userID, bookID int64) error {
	q := postgres.Builder().
		Delete("favorites").
		Where(squirrel.Eq{"user_id": userID, "book_id": bookID})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "favorite", bookID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "favorite", bookID)
	}
	return nil
}

// ListViews returns the user's favorite books with machine names,
// most recently favorited first.
func (r *Repo) ListViews(ctx context.Context, userID int64) ([]domain.FavoriteView, error) {
	q := postgres.Builder().
		Select(
			"b.id", "b.title", "b.author", "b.year", "b.description", "b.image_url",
			"b.category", "b.status", "b.machine_id", "b.created_at",
			"m.name AS machine_name", "f.created_at AS favorited_at",
		).
		From("favorites f").
		Join("books b ON b.id = f.book_id").
		LeftJoin("machines m ON m.id = b.machine_id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC", "b.id")

	var rows []viewRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, postgres.MapError(err, "favorite", 0)
	}

	out := make([]domain.FavoriteView, len(rows))
	for i, row := range rows {
		out[i] = domain.FavoriteView{
			BookView: domain.BookView{
				Book: domain.Book{
					ID:          row.ID,
					Title:       row.Title,
					Author:      row.Author,
					Year:        row.Year,
					Description: row.Description,
					ImageURL:    row.ImageURL,
					Category:    domain.BookCategory(row.Category),
					Status:      domain.BookStatus(row.Status),
					MachineID:   row.MachineID,
					CreatedAt:   row.CreatedAt,
				},
				MachineName: row.MachineName,
			},
			FavoritedAt: row.FavoritedAt,
		}
	}
	return out, nil
}

type favoriteRow struct {
	UserID    int64     `db:"user_id"`
	BookID    int64     `db:"book_id"`
	CreatedAt time.Time `db:"created_at"`
}

type viewRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Author      string    `db:"author"`
	Year        *int      `db:"year"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Category    string    `db:"category"`
	Status      string    `db:"status"`
	MachineID   *int64    `db:"machine_id"`
	CreatedAt   time.Time `db:"created_at"`
	MachineName *string   `db:"machine_name"`
	FavoritedAt time.Time `db:"favorited_at"`
}
