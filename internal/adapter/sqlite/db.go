// Package sqlite owns the embedded relational store: the database handle,
// schema migrations, transaction management, and driver error mapping.
//
// The store is a single-user, single-foreground-process SQLite file. All
// repositories assume a single-writer execution model; the handle is capped
// at one open connection so concurrent use from tests cannot interleave
// writes either.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/heartmarshall/mytreino-backend/internal/config"
)

// Open opens the SQLite database file configured in DatabaseConfig, applies
// connection pragmas (busy timeout, foreign keys, WAL), pings for fail-fast
// validation, and returns the ready handle. An error here is fatal to the
// application: there is no degraded mode without the store.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		url.PathEscape(cfg.Path),
		cfg.BusyTimeout.Milliseconds(),
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single-writer contract: one connection, no pool-level interleaving.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
