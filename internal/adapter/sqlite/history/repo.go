// Package history implements the append-only workout history log: one
// immutable row per completed workout, carrying a JSON snapshot of the
// exercise graph as performed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// Repo provides history log persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new history repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Append writes one immutable log row for a completed workout. The exercise
// graph is deep-snapshotted: later edits to the live workout never alter the
// row. The display name is frozen at append time. duration is nil when the
// caller has no measured duration (e.g. retroactive calendar logging).
func (r *Repo) Append(ctx context.Context, workout *domain.Workout, completedAt time.Time, duration *int) error {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	details, err := encodeSnapshot(domain.CloneExercises(workout.Exercises))
	if err != nil {
		return fmt.Errorf("encode workout snapshot: %w", err)
	}

	query, args, err := sq.Insert("workout_logs").
		Columns("workout_id", "name", "completed_at", "workout_details", "duration").
		Values(workout.ID, workout.Name, completedAt.UTC().Format(time.RFC3339), string(details), duration).
		ToSql()
	if err != nil {
		return fmt.Errorf("build log insert: %w", err)
	}

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "workout_log", workout.ID)
	}
	return nil
}

// GetAll returns every log entry sorted by completion time, newest first.
// Names use the frozen per-row value; rows written before name freezing fall
// back to a live join against the current workout name. A corrupt
// workout_details payload yields that row with an empty exercise list.
func (r *Repo) GetAll(ctx context.Context) ([]domain.WorkoutLog, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select(
		"l.id",
		"l.workout_id",
		"COALESCE(l.name, w.name, '') AS name",
		"l.completed_at",
		"l.workout_details",
		"l.duration",
	).
		From("workout_logs l").
		LeftJoin("workouts w ON l.workout_id = w.id").
		OrderBy("l.completed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build log query: %w", err)
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.WorkoutLog{}
	for rows.Next() {
		var (
			log         domain.WorkoutLog
			completedAt sql.NullString
			details     sql.NullString
			duration    sql.NullInt64
		)
		if err := rows.Scan(&log.ID, &log.WorkoutID, &log.Name, &completedAt, &details, &duration); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}

		if t, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
			log.CompletedAt = t
		}
		log.Exercises = decodeSnapshot(details.String)
		if duration.Valid {
			d := int(duration.Int64)
			log.Duration = &d
		}

		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}

	return logs, nil
}

// Delete removes one log entry. Deleting a missing id is a no-op.
func (r *Repo) Delete(ctx context.Context, logID int64) error {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Delete("workout_logs").Where(sq.Eq{"id": logID}).ToSql()
	if err != nil {
		return fmt.Errorf("build log delete: %w", err)
	}
	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "workout_log", logID)
	}
	return nil
}
