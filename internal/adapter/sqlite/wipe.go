package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Wipe removes every row from the relational tables, in FK-safe order, inside
// one transaction. Intended for development resets; the schema itself and the
// key-value side store are untouched.
func Wipe(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin wipe: %w", err)
	}

	for _, table := range []string{"sets", "workout_logs", "exercises", "workouts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			tx.Rollback()
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit wipe: %w", err)
	}
	return nil
}
