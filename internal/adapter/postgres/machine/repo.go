// Package machine implements the Machine repository using PostgreSQL.
package machine

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Repo provides machine persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new machine repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectMachines() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("m.id", "m.name", "m.location", "m.created_at").
		From("machines m")
}

// List returns every machine ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Machine, error) {
	return r.list(ctx, selectMachines().OrderBy("m.id"))
}

// GetByID returns a machine by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Machine, error) {
	var row machineRow
	if err := postgres.Get(ctx, r.db, &row, selectMachines().Where(squirrel.Eq{"m.id": id})); err != nil {
		return nil, postgres.MapError(err, "machine", id)
	}
	m := row.toDomain()
	return &m, nil
}

// ListHoldingBook returns the machines where the given book is stocked.
func (r *Repo) ListHoldingBook(ctx context.Context, bookID int64) ([]domain.Machine, error) {
	q := selectMachines().
		Join("books b ON b.machine_id = m.id").
		Where(squirrel.Eq{"b.id": bookID}).
		OrderBy("m.id")
	return r.list(ctx, q)
}

// UpsertByName inserts a machine or updates the location of the machine
// with the same name.
func (r *Repo) UpsertByName(ctx context.Context, name, location string) (*domain.Machine, error) {
	q := postgres.Builder().
		Insert("machines").
		Columns("name", "location").
		Values(name, location).
		Suffix("ON CONFLICT (name) DO UPDATE SET location = EXCLUDED.location RETURNING id, name, location, created_at")

	var row machineRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "machine", 0)
	}
	m := row.toDomain()
	return &m, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.Sqlizer) ([]domain.Machine, error) {
	var rows []machineRow
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, postgres.MapError(err, "machine", 0)
	}

	out := make([]domain.Machine, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type machineRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Location  string    `db:"location"`
	CreatedAt time.Time `db:"created_at"`
}

func (r machineRow) toDomain() domain.Machine {
	return domain.Machine{ID: r.ID, Name: r.Name, Location: r.Location, CreatedAt: r.CreatedAt}
}
