package main

import (
	"context"
	"database/sql"
	"fmt"
)

// ensureReferenceData seeds the genre and MPA rating catalogs when they are
// empty. Existing rows are left untouched so operators can rename entries.
func ensureReferenceData(ctx context.Context, db *sql.DB) error {
	genres := []string{"Comedy", "Drama", "Cartoon", "Thriller", "Documentary", "Action"}
	ratings := []string{"G", "PG", "PG-13", "R", "NC-17"}

	if err := seedCatalog(ctx, db, "genres", genres); err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}
	if err := seedCatalog(ctx, db, "ratings", ratings); err != nil {
		return fmt.Errorf("seed ratings: %w", err)
	}
	return nil
}

func seedCatalog(ctx context.Context, db *sql.DB, table string, names []string) error {
	exists, err := tableExists(ctx, db, table)
	if err != nil {
		return fmt.Errorf("check %s table: %w", table, err)
	}
	if !exists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count); err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	for _, name := range names {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1)`, table), name); err != nil {
			return fmt.Errorf("insert %s row %q: %w", table, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func tableExists(ctx context.Context, q queryRower, table string) (bool, error) {
	var name sql.NullString
	if err := q.QueryRowContext(ctx, `SELECT to_regclass($1)`, table).Scan(&name); err != nil {
		return false, err
	}
	return name.Valid, nil
}
