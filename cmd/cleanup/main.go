// Command cleanup wipes every row from the relational store: sets, history
// logs, exercises and workouts. Intended for development resets; it refuses
// to run without the --yes flag.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mytreino-backend/internal/app"
	"github.com/heartmarshall/mytreino-backend/internal/config"
)

func main() {
	yesFlag := flag.Bool("yes", false, "confirm wiping all workout data")
	flag.Parse()

	if !*yesFlag {
		log.Fatal("refusing to wipe without --yes")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := sqlite.Wipe(ctx, db); err != nil {
		logger.Error("wipe failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("database cleared", slog.String("path", cfg.Database.Path))
}
