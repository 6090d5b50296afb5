package seeder

import (
	"context"

	"talent-match/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// insertAll runs stmt once per args row inside a single transaction.
func insertAll(ctx context.Context, db database.DB, stmt string, rows [][]any) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, args := range rows {
		if _, err := tx.Exec(ctx, stmt, args...); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
