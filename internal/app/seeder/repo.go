// Package seeder loads a YAML catalog of machines and books into the database.
package seeder

import (
	"context"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// MachineWriter is implemented by machine.Repo.
type MachineWriter interface {
	UpsertByName(ctx context.Context, name, location string) (*domain.Machine, error)
}

// BookWriter is implemented by book.Repo.
type BookWriter interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
}

// TxRunner is implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
