// Package exercise implements the exercise resolver: the canonical,
// name-deduplicated exercises table shared by every workout.
package exercise

import (
	"database/sql"
	"errors"
	"fmt"

	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// Repo provides canonical exercise persistence backed by SQLite.
//
// The find-or-create in Resolve is check-then-insert, not atomic against
// concurrent writers. The store runs under a single-writer contract (one
// foreground session); porting to a concurrent context requires an upsert
// or real isolation instead.
type Repo struct {
	db *sql.DB
}

// New creates a new exercise repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Resolve finds or creates the canonical exercise row for a name (exact,
// case-sensitive match) and returns its id. When the row already exists,
// supplied category/imageURI overwrite the stored values — last-writer-wins,
// no merge, no history. Participates in the caller's transaction when run
// inside TxManager.RunInTx.
func (r *Repo) Resolve(ctx context.Context, name string, category, imageURI *string) (int64, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select("id").From("exercises").Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build exercise lookup: %w", err)
	}

	var id int64
	err = querier.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		if err := r.overwriteMeta(ctx, querier, id, category, imageURI); err != nil {
			return 0, err
		}
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		return r.insert(ctx, querier, name, category, imageURI)
	default:
		return 0, sqlite.MapError(err, "exercise", name)
	}
}

func (r *Repo) overwriteMeta(ctx context.Context, querier sqlite.Querier, id int64, category, imageURI *string) error {
	update := sq.Update("exercises").Where(sq.Eq{"id": id})
	changed := false
	if category != nil {
		update = update.Set("category", *category)
		changed = true
	}
	if imageURI != nil {
		update = update.Set("image_uri", *imageURI)
		changed = true
	}
	if !changed {
		return nil
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build exercise update: %w", err)
	}
	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "exercise", id)
	}
	return nil
}

func (r *Repo) insert(ctx context.Context, querier sqlite.Querier, name string, category, imageURI *string) (int64, error) {
	query, args, err := sq.Insert("exercises").
		Columns("name", "category", "image_uri").
		Values(name, category, imageURI).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build exercise insert: %w", err)
	}

	res, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "exercise", name)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("exercise insert id: %w", err)
	}
	return id, nil
}

// GetByID returns the canonical exercise row (no sets).
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select("id", "name", "category", "image_uri").
		From("exercises").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise get: %w", err)
	}

	e, err := scanExercise(querier.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, "exercise", id)
	}
	return e, nil
}

// GetByName returns the canonical exercise row by exact name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select("id", "name", "category", "image_uri").
		From("exercises").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise get: %w", err)
	}

	e, err := scanExercise(querier.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, "exercise", name)
	}
	return e, nil
}

// List returns all canonical exercise rows ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Exercise, error) {
	querier := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select("id", "name", "category", "image_uri").
		From("exercises").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise list: %w", err)
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var (
			e        domain.Exercise
			category sql.NullString
			imageURI sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &category, &imageURI); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.Category = category.String
		e.ImageURI = imageURI.String
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return exercises, nil
}

func scanExercise(row *sql.Row) (*domain.Exercise, error) {
	var (
		e        domain.Exercise
		category sql.NullString
		imageURI sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Name, &category, &imageURI); err != nil {
		return nil, err
	}
	e.Category = category.String
	e.ImageURI = imageURI.String
	return &e, nil
}
