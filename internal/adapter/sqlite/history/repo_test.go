package history_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite/history"
	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite/testhelper"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

func newRepo(t *testing.T) (*history.Repo, *sql.DB) {
	t.Helper()
	db := testhelper.SetupTestDB(t)
	return history.New(db), db
}

func sampleWorkout(id int64, name string) *domain.Workout {
	return &domain.Workout{
		ID:   id,
		Name: name,
		Exercises: []domain.Exercise{
			{
				ID:   1,
				Name: "Supino Reto",
				Sets: []domain.Set{
					{ID: "10", Number: 1, Reps: 10, Weight: 42.5, Unit: domain.UnitKilograms, Completed: true},
					{ID: "11", Number: 2, Reps: 8, Weight: 45, Unit: domain.UnitKilograms, Notes: "até a falha"},
				},
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Append / GetAll
// ---------------------------------------------------------------------------

func TestRepo_AppendAndGetAll_RoundTrip(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	w := sampleWorkout(workoutID, "Treino A")
	completedAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	duration := 2700

	if err := repo.Append(ctx, w, completedAt, &duration); err != nil {
		t.Fatalf("Append: %v", err)
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}

	log := logs[0]
	if log.WorkoutID != workoutID || log.Name != "Treino A" {
		t.Fatalf("unexpected log header: %+v", log)
	}
	if !log.CompletedAt.Equal(completedAt) {
		t.Fatalf("expected completedAt %v, got %v", completedAt, log.CompletedAt)
	}
	if log.Duration == nil || *log.Duration != 2700 {
		t.Fatalf("expected duration 2700, got %v", log.Duration)
	}

	if len(log.Exercises) != 1 || len(log.Exercises[0].Sets) != 2 {
		t.Fatalf("unexpected snapshot shape: %+v", log.Exercises)
	}
	s := log.Exercises[0].Sets
	if s[0].Reps != 10 || s[0].Weight != 42.5 || !s[0].Completed {
		t.Fatalf("snapshot set 1 mismatch: %+v", s[0])
	}
	if s[1].Notes != "até a falha" || s[1].Completed {
		t.Fatalf("snapshot set 2 mismatch: %+v", s[1])
	}
}

func TestRepo_GetAll_SortedNewestFirst(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	w := sampleWorkout(workoutID, "Treino A")

	times := []time.Time{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		if err := repo.Append(ctx, w, ts, nil); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].CompletedAt.After(logs[i-1].CompletedAt) {
			t.Fatalf("expected newest-first order, got %v before %v", logs[i-1].CompletedAt, logs[i].CompletedAt)
		}
	}
	if logs[0].Duration != nil {
		t.Fatalf("expected nil duration, got %v", *logs[0].Duration)
	}
}

// ---------------------------------------------------------------------------
// Immutability & name freezing
// ---------------------------------------------------------------------------

func TestRepo_Snapshot_SurvivesLiveWorkoutEdits(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	w := sampleWorkout(workoutID, "Treino A")

	if err := repo.Append(ctx, w, time.Now().UTC(), nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// mutate the live graph after the append
	w.Exercises[0].Sets[0].Weight = 999

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if got := logs[0].Exercises[0].Sets[0].Weight; got != 42.5 {
		t.Fatalf("snapshot must be immutable: expected 42.5, got %v", got)
	}
}

func TestRepo_Name_FrozenAtAppendTime(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	if err := repo.Append(ctx, sampleWorkout(workoutID, "Treino A"), time.Now().UTC(), nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, err := db.Exec("UPDATE workouts SET name = ? WHERE id = ?", "Renomeado", workoutID); err != nil {
		t.Fatalf("rename workout: %v", err)
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if logs[0].Name != "Treino A" {
		t.Fatalf("expected frozen name, got %q", logs[0].Name)
	}
}

func TestRepo_Name_LegacyRowFallsBackToLiveJoin(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")

	// a row written before the name column existed
	if _, err := db.Exec(
		"INSERT INTO workout_logs (workout_id, completed_at, workout_details) VALUES (?, ?, '[]')",
		workoutID, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		t.Fatalf("insert legacy log row: %v", err)
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if logs[0].Name != "Treino A" {
		t.Fatalf("expected live-join fallback name, got %q", logs[0].Name)
	}
}

func TestRepo_Log_SurvivesWorkoutDeletion(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	if err := repo.Append(ctx, sampleWorkout(workoutID, "Treino A"), time.Now().UTC(), nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, err := db.Exec("DELETE FROM workouts WHERE id = ?", workoutID); err != nil {
		t.Fatalf("delete workout: %v", err)
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(logs) != 1 || logs[0].Name != "Treino A" {
		t.Fatalf("expected log to survive with frozen name, got %+v", logs)
	}
}

// ---------------------------------------------------------------------------
// Corrupt payload recovery
// ---------------------------------------------------------------------------

func TestRepo_GetAll_CorruptSnapshotYieldsEmptyExercises(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	if err := repo.Append(ctx, sampleWorkout(workoutID, "Treino A"), time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, err := db.Exec(
		"INSERT INTO workout_logs (workout_id, name, completed_at, workout_details) VALUES (?, ?, ?, ?)",
		workoutID, "Corrompido", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC).Format(time.RFC3339), "{not json",
	); err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("one corrupt row must not hide the rest: got %d logs", len(logs))
	}
	if len(logs[0].Exercises) != 0 {
		t.Fatalf("corrupt row must decode to empty exercises, got %+v", logs[0].Exercises)
	}
	if len(logs[1].Exercises) != 1 {
		t.Fatalf("intact row must decode normally, got %+v", logs[1].Exercises)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestRepo_Delete_IsIdempotent(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	workoutID := testhelper.SeedWorkoutRow(t, db, "Treino A")
	if err := repo.Append(ctx, sampleWorkout(workoutID, "Treino A"), time.Now().UTC(), nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	logs, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	logID := logs[0].ID

	if err := repo.Delete(ctx, logID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := repo.Delete(ctx, logID); err != nil {
		t.Fatalf("second Delete must be a no-op: %v", err)
	}

	logs, err = repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll after delete: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected empty history, got %d logs", len(logs))
	}
}
