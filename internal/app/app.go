// Package app is the composition root: it owns the store lifecycles and
// wires repositories and services together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/kv"
	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite/exercise"
	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite/history"
	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite/workout"
	"github.com/heartmarshall/mytreino-backend/internal/config"
	"github.com/heartmarshall/mytreino-backend/internal/service/catalog"
	"github.com/heartmarshall/mytreino-backend/internal/service/session"
	workoutsvc "github.com/heartmarshall/mytreino-backend/internal/service/workout"
)

// App holds every constructed component behind an explicit open/close
// lifecycle. Construction failure is fatal: no component is usable before
// New returns.
type App struct {
	log   *slog.Logger
	cfg   *config.Config
	clock clockwork.Clock

	db *sql.DB
	kv *kv.Store

	workoutRepo *workout.Repo

	Catalog  *catalog.Service
	Workouts *workoutsvc.Service
	History  *history.Repo
	Prefs    *kv.Store
}

// New opens both stores, applies pending migrations and wires the services.
// A schema failure aborts construction; nothing is left half-open.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*App, error) {
	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	kvStore, err := kv.Open(cfg.KV)
	if err != nil {
		db.Close()
		return nil, err
	}

	txm := sqlite.NewTxManager(db)
	exerciseRepo := exercise.New(db)
	workoutRepo := workout.New(db)
	historyRepo := history.New(db)

	a := &App{
		log:         logger,
		cfg:         cfg,
		clock:       clock,
		db:          db,
		kv:          kvStore,
		workoutRepo: workoutRepo,
		Catalog:     catalog.NewService(logger, kvStore),
		Workouts:    workoutsvc.NewService(logger, exerciseRepo, workoutRepo, txm, clock),
		History:     historyRepo,
		Prefs:       kvStore,
	}

	if cfg.Seed.DefaultsEnabled {
		if err := a.Workouts.SeedDefaults(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// StartSession begins a live session over the stored workout. The rest
// countdown comes from the stored preference, falling back to the configured
// default. notify fires when the rest timer elapses and may be nil.
func (a *App) StartSession(ctx context.Context, workoutID int64, notify func()) (*session.Session, error) {
	w, err := a.Workouts.GetByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	restSeconds, err := a.kv.RestSeconds(a.cfg.Session.RestSeconds)
	if err != nil {
		return nil, err
	}

	return session.New(
		a.log,
		a.clock,
		a.workoutRepo,
		a.History,
		sqlite.NewTxManager(a.db),
		a.cfg.Session,
		restSeconds,
		w,
		notify,
	), nil
}

// Close releases both stores. Safe to call once, after which no component of
// the App may be used.
func (a *App) Close() error {
	var firstErr error
	if err := a.kv.Close(); err != nil {
		firstErr = fmt.Errorf("close kv store: %w", err)
	}
	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close database: %w", err)
	}
	return firstErr
}
