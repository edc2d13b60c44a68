// Package book implements the Book repository using PostgreSQL.
package book

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

var bookColumns = []string{
	"b.id", "b.title", "b.author", "b.year", "b.description", "b.image_url",
	"b.category", "b.status", "b.machine_id", "b.created_at",
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new book repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// selectViews is the shared projection: books with the holding machine name.
func selectViews() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(bookColumns...).
		Column("m.name AS machine_name").
		From("books b").
		LeftJoin("machines m ON m.id = b.machine_id")
}

// List returns books matching f ordered by id.
func (r *Repo) List(ctx context.Context, f domain.BookFilter) ([]domain.BookView, error) {
	var rows []bookViewRow
	if err := postgres.Select(ctx, r.db, &rows, applyFilter(selectViews(), f).OrderBy("b.id")); err != nil {
		return nil, postgres.MapError(err, "book", 0)
	}

	out := make([]domain.BookView, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetByID returns one book with its machine name.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.BookView, error) {
	var row bookViewRow
	if err := postgres.Get(ctx, r.db, &row, selectViews().Where(squirrel.Eq{"b.id": id})); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	v := row.toDomain()
	return &v, nil
}

// LockByID returns a book and holds a row lock until the surrounding
// transaction ends.
func (r *Repo) LockByID(ctx context.Context, id int64) (*domain.Book, error) {
	q := postgres.Builder().
		Select(bookColumns...).
		From("books b").
		Where(squirrel.Eq{"b.id": id}).
		Suffix("FOR UPDATE")

	var row bookRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	b := row.toDomain()
	return &b, nil
}

// UpdateStatus sets the availability status of a book.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.BookStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("book %d: status %q: %w", id, status, domain.ErrValidation)
	}

	q := postgres.Builder().
		Update("books").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "book", id)
	}
	return nil
}

// Create inserts a catalog book.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if !b.Category.IsValid() || !b.Status.IsValid() {
		return nil, fmt.Errorf("book: category %q status %q: %w", b.Category, b.Status, domain.ErrValidation)
	}

	q := postgres.Builder().
		Insert("books").
		Columns("title", "author", "year", "description", "image_url", "category", "status", "machine_id").
		Values(b.Title, b.Author, b.Year, b.Description, b.ImageURL, string(b.Category), string(b.Status), b.MachineID).
		Suffix("RETURNING id, title, author, year, description, image_url, category, status, machine_id, created_at")

	var row bookRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "book", 0)
	}
	created := row.toDomain()
	return &created, nil
}

type bookRow struct {
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
}

func (r bookRow) toDomain() domain.Book {
	return domain.Book{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		Year:        r.Year,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    domain.BookCategory(r.Category),
		Status:      domain.BookStatus(r.Status),
		MachineID:   r.MachineID,
		CreatedAt:   r.CreatedAt,
	}
}

type bookViewRow struct {
	bookRow
	MachineName *string `db:"machine_name"`
}

func (r bookViewRow) toDomain() domain.BookView {
	return domain.BookView{Book: r.bookRow.toDomain(), MachineName: r.MachineName}
}
