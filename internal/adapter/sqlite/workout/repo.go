// Package workout implements the workout aggregate repository: workouts and
// sets rows, and the fold that reconstructs the nested workout → exercise →
// set graph from the flat join.
package workout

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// Repo provides workout persistence backed by SQLite. Multi-row mutations
// are orchestrated by the workout service inside TxManager.RunInTx; every
// method here joins the caller's transaction via QuerierFromCtx.
type Repo struct {
	db *sql.DB
}

// New creates a new workout repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert creates one workouts row and returns its generated id.
// The legacy date column is written alongside created_at for rows that may
// still be read by older installs.
func (r *Repo) Insert(ctx context.Context, name string, category domain.WorkoutCategory, now time.Time) (int64, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	ts := now.UTC().Format(time.RFC3339)
	query, args, err := sq.Insert("workouts").
		Columns("name", "date", "category", "created_at", "updated_at").
		Values(name, ts, category.String(), ts, ts).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build workout insert: %w", err)
	}

	res, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "workout", name)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout insert id: %w", err)
	}
	return id, nil
}

// UpdateMeta overwrites a workout's name, category and updated_at.
// A missing id is a silent no-op, consistent with idempotent deletes.
func (r *Repo) UpdateMeta(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Update("workouts").
		Set("name", name).
		Set("category", category.String()).
		Set("updated_at", now.UTC().Format(time.RFC3339)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build workout update: %w", err)
	}

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "workout", id)
	}
	return nil
}

// InsertSets inserts one sets row per set, referencing (workoutID, exerciseID),
// in slice order. Row insertion order is what GetAll's fold relies on for
// workout-local set numbering.
func (r *Repo) InsertSets(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	for _, s := range sets {
		query, args, err := sq.Insert("sets").
			Columns("workout_id", "exercise_id", "reps", "weight", "weight_unit", "notes").
			Values(workoutID, exerciseID, s.Reps, s.Weight, s.Unit.String(), s.Notes).
			ToSql()
		if err != nil {
			return fmt.Errorf("build set insert: %w", err)
		}
		if _, err := querier.ExecContext(ctx, query, args...); err != nil {
			return sqlite.MapError(err, "set", workoutID)
		}
	}
	return nil
}

// DeleteSets removes all sets rows belonging to a workout.
func (r *Repo) DeleteSets(ctx context.Context, workoutID int64) error {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Delete("sets").Where(sq.Eq{"workout_id": workoutID}).ToSql()
	if err != nil {
		return fmt.Errorf("build sets delete: %w", err)
	}
	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "sets", workoutID)
	}
	return nil
}

// Delete removes a workout row and its sets. Canonical exercise rows are
// never cascaded: other workouts and history snapshots may reference them.
// Deleting a missing id is a no-op, so delete is idempotent.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	if err := r.DeleteSets(ctx, id); err != nil {
		return err
	}

	query, args, err := sq.Delete("workouts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build workout delete: %w", err)
	}
	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "workout", id)
	}
	return nil
}

// Count returns the number of workouts rows.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(id) FROM workouts").Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// category falls back to the legacy type column; created_at to the legacy
// date column. Both were renamed additively (old column left orphaned).
func graphQuery() sq.SelectBuilder {
	return sq.Select(
		"w.id",
		"w.name",
		"COALESCE(w.category, w.type, '') AS category",
		"COALESCE(w.created_at, w.date, '') AS created_at",
		"COALESCE(w.updated_at, w.date, '') AS updated_at",
		"e.id AS exercise_id",
		"e.name AS exercise_name",
		"e.category AS exercise_category",
		"e.image_uri",
		"s.id AS set_id",
		"s.reps",
		"s.weight",
		"s.weight_unit",
		"s.notes",
	).
		From("workouts w").
		LeftJoin("sets s ON w.id = s.workout_id").
		LeftJoin("exercises e ON s.exercise_id = e.id").
		OrderBy("w.id", "e.id", "s.id")
}

// GetAll returns every workout with its full exercise/set graph and the
// derived lastTrained timestamp, in a single join query plus one aggregate
// over the history log. Full scans are fine at this data scale.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := r.queryGraph(ctx, graphQuery())
	if err != nil {
		return nil, err
	}

	lastTrained, err := r.lastTrainedByWorkout(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if t, ok := lastTrained[workouts[i].ID]; ok {
			workouts[i].LastTrained = &t
		}
	}

	return workouts, nil
}

// GetByID returns one workout with its full graph, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	workouts, err := r.queryGraph(ctx, graphQuery().Where(sq.Eq{"w.id": id}))
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, fmt.Errorf("workout %d: %w", id, domain.ErrNotFound)
	}

	w := workouts[0]
	lastTrained, err := r.lastTrainedByWorkout(ctx)
	if err != nil {
		return nil, err
	}
	if t, ok := lastTrained[w.ID]; ok {
		w.LastTrained = &t
	}

	return &w, nil
}

func (r *Repo) queryGraph(ctx context.Context, builder sq.SelectBuilder) ([]domain.Workout, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build workout graph query: %w", err)
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout graph: %w", err)
	}
	defer rows.Close()

	return foldGraph(rows)
}

// foldGraph folds the flat row stream into the nested graph. Workouts keep
// row order; exercises keep first-seen order inside their workout; set
// numbers are recomputed as 1 + sets already folded for that exercise, so the
// same canonical exercise gets independent, workout-local numbering in every
// workout that references it.
func foldGraph(rows *sql.Rows) ([]domain.Workout, error) {
	var (
		workouts []domain.Workout
		byID     = map[int64]int{}
		exIdx    = map[int64]map[int64]int{} // workout id -> exercise id -> index
	)

	for rows.Next() {
		var (
			wID                  int64
			wName                sql.NullString
			wCategory            string
			createdAt, updatedAt string
			eID                  sql.NullInt64
			eName, eCategory     sql.NullString
			eImageURI            sql.NullString
			sID                  sql.NullInt64
			reps                 sql.NullInt64
			weight               sql.NullFloat64
			unit                 sql.NullString
			notes                sql.NullString
		)

		if err := rows.Scan(
			&wID, &wName, &wCategory, &createdAt, &updatedAt,
			&eID, &eName, &eCategory, &eImageURI,
			&sID, &reps, &weight, &unit, &notes,
		); err != nil {
			return nil, fmt.Errorf("scan workout graph row: %w", err)
		}

		idx, seen := byID[wID]
		if !seen {
			workouts = append(workouts, domain.Workout{
				ID:        wID,
				Name:      wName.String,
				Category:  domain.WorkoutCategory(wCategory),
				Exercises: []domain.Exercise{},
				CreatedAt: parseTime(createdAt),
				UpdatedAt: parseTime(updatedAt),
			})
			idx = len(workouts) - 1
			byID[wID] = idx
			exIdx[wID] = map[int64]int{}
		}
		w := &workouts[idx]

		if !eID.Valid {
			continue // workout without sets: left-join padding
		}

		ei, ok := exIdx[wID][eID.Int64]
		if !ok {
			w.Exercises = append(w.Exercises, domain.Exercise{
				ID:       eID.Int64,
				Name:     eName.String,
				Category: eCategory.String,
				ImageURI: eImageURI.String,
			})
			ei = len(w.Exercises) - 1
			exIdx[wID][eID.Int64] = ei
		}
		ex := &w.Exercises[ei]

		if sID.Valid {
			ex.Sets = append(ex.Sets, domain.Set{
				ID:     strconv.FormatInt(sID.Int64, 10),
				Number: len(ex.Sets) + 1,
				Reps:   int(reps.Int64),
				Weight: weight.Float64,
				Unit:   domain.WeightUnit(unit.String),
				Notes:  notes.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fold workout graph: %w", err)
	}

	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

// lastTrainedByWorkout maps workout id to its most recent history completion.
func (r *Repo) lastTrainedByWorkout(ctx context.Context) (map[int64]time.Time, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	rows, err := querier.QueryContext(ctx,
		"SELECT workout_id, MAX(completed_at) FROM workout_logs GROUP BY workout_id")
	if err != nil {
		return nil, fmt.Errorf("query last trained: %w", err)
	}
	defer rows.Close()

	out := map[int64]time.Time{}
	for rows.Next() {
		var (
			workoutID   int64
			completedAt sql.NullString
		)
		if err := rows.Scan(&workoutID, &completedAt); err != nil {
			return nil, fmt.Errorf("scan last trained: %w", err)
		}
		if t := parseTime(completedAt.String); !t.IsZero() {
			out[workoutID] = t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query last trained: %w", err)
	}

	return out, nil
}

// parseTime reads an RFC3339 timestamp, tolerating legacy rows with empty or
// malformed values (zero time).
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
