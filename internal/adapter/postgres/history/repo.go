// Package history implements the pickup history repository using PostgreSQL.
package history

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Repo provides append-only pickup history backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new history repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create appends a pickup record stamped with the database clock.
func (r *Repo) Create(ctx context.Context, userID, bookID int64, machineID *int64) (*domain.HistoryEntry, error) {
	q := postgres.Builder().
		Insert("history").
		Columns("user_id", "book_id", "machine_id").
		Values(userID, bookID, machineID).
		Suffix("RETURNING id, user_id, book_id, machine_id, picked_up_at")

	var row entryRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "history", 0)
	}
	return &domain.HistoryEntry{
		ID:         row.ID,
		UserID:     row.UserID,
		BookID:     row.BookID,
		MachineID:  row.MachineID,
		PickedUpAt: row.PickedUpAt,
	}, nil
}

// ListViews returns the user's pickups, newest first.
func (r *Repo) ListViews(ctx context.Context, userID int64) ([]domain.HistoryView, error) {
	q := postgres.Builder().
		Select("h.id", "b.title", "b.author", "m.name AS machine_name", "h.picked_up_at").
		From("history h").
		Join("books b ON b.id = h.book_id").
		LeftJoin("machines m ON m.id = h.machine_id").
		Where(squirrel.Eq{"h.user_id": userID}).
		OrderBy("h.picked_up_at DESC", "h.id DESC")

	var rows []viewRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, postgres.MapError(err, "history", 0)
	}

	out := make([]domain.HistoryView, len(rows))
	for i, row := range rows {
		out[i] = domain.HistoryView{
			ID:          row.ID,
			BookTitle:   row.Title,
			BookAuthor:  row.Author,
			MachineName: row.MachineName,
			PickedUpAt:  row.PickedUpAt,
		}
	}
	return out, nil
}

type entryRow struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	BookID     int64     `db:"book_id"`
	MachineID  *int64    `db:"machine_id"`
	PickedUpAt time.Time `db:"picked_up_at"`
}

type viewRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Author      string    `db:"author"`
	MachineName *string   `db:"machine_name"`
	PickedUpAt  time.Time `db:"picked_up_at"`
}
