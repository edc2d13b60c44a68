package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Result summarizes one seeding run.
type Result struct {
	MachinesUpserted int
	BooksInserted    int
	UnplacedInserted int
	DryRun           bool
	Duration         time.Duration
}

// Pipeline writes a catalog in a single transaction: machines are upserted
// by name, then their books are inserted as available.
type Pipeline struct {
	log      *slog.Logger
	machines MachineWriter
	books    BookWriter
	tx       TxRunner
	dryRun   bool
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, machines MachineWriter, books BookWriter, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log.With("component", "seeder"),
		machines: machines,
		books:    books,
		tx:       tx,
		dryRun:   cfg.DryRun,
	}
}

// Run seeds c. On any error the transaction is rolled back and nothing is
// written. In dry-run mode the catalog is only validated and counted.
func (p *Pipeline) Run(ctx context.Context, c *Catalog) (Result, error) {
	start := time.Now()

	if err := c.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid catalog: %w", err)
	}

	if p.dryRun {
		res := Result{
			MachinesUpserted: len(c.Machines),
			BooksInserted:    c.BookCount() - len(c.Unplaced),
			UnplacedInserted: len(c.Unplaced),
			DryRun:           true,
			Duration:         time.Since(start),
		}
		p.log.Info("dry run, nothing written",
			slog.Int("machines", res.MachinesUpserted),
			slog.Int("books", res.BooksInserted+res.UnplacedInserted),
		)
		return res, nil
	}

	var res Result
	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = Result{}
		for _, m := range c.Machines {
			n, err := p.seedMachine(ctx, m)
			if err != nil {
				return err
			}
			res.MachinesUpserted++
			res.BooksInserted += n
		}
		for i, b := range c.Unplaced {
			if _, err := p.books.Create(ctx, b.toBook(nil)); err != nil {
				return fmt.Errorf("unplaced_books[%d] %q: %w", i, b.Title, err)
			}
			res.UnplacedInserted++
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed catalog: %w", err)
	}

	res.Duration = time.Since(start)
	p.log.Info("catalog seeded",
		slog.Int("machines", res.MachinesUpserted),
		slog.Int("books", res.BooksInserted),
		slog.Int("unplaced", res.UnplacedInserted),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (p *Pipeline) seedMachine(ctx context.Context, m MachineSeed) (int, error) {
	machine, err := p.machines.UpsertByName(ctx, strings.TrimSpace(m.Name), strings.TrimSpace(m.Location))
	if err != nil {
		return 0, fmt.Errorf("machine %q: %w", m.Name, err)
	}

	for _, b := range m.Books {
		if _, err := p.books.Create(ctx, b.toBook(&machine.ID)); err != nil {
			return 0, fmt.Errorf("machine %q book %q: %w", m.Name, b.Title, err)
		}
	}
	p.log.Debug("machine seeded",
		slog.Int64("machine_id", machine.ID),
		slog.String("name", machine.Name),
		slog.Int("books", len(m.Books)),
	)
	return len(m.Books), nil
}
