package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Get builds q and scans exactly one row into dst, using the transaction
// from ctx when present.
func Get(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, QuerierFromCtx(ctx, db), dst, sql, args...)
}

// Select builds q and scans all rows into dst, which must be a pointer to a slice.
func Select(ctx context.Context, db Querier, dst any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, QuerierFromCtx(ctx, db), dst, sql, args...)
}

// Exec builds and executes q.
func Exec(ctx context.Context, db Querier, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return QuerierFromCtx(ctx, db).Exec(ctx, sql, args...)
}
