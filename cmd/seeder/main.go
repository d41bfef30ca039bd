// Command seeder populates an empty database with the starter workouts.
// Seeding is skipped when any workout already exists, so running it against a
// live database is safe.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/mytreino-backend/internal/app"
	"github.com/heartmarshall/mytreino-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// app.New seeds when enabled; force it on so the command always tries
	cfg.Seed.DefaultsEnabled = true

	a, err := app.New(ctx, cfg, logger, clockwork.NewRealClock())
	if err != nil {
		logger.Error("initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	logger.Info("seeding complete")
}
