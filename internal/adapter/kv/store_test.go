package kv_test

import (
	"errors"
	"testing"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/kv"
	"github.com/heartmarshall/mytreino-backend/internal/config"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

func newStore(t *testing.T) *kv.Store {
	t.Helper()

	store, err := kv.Open(config.KVConfig{InMemory: true})
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func customExercise(id string) domain.CatalogExercise {
	return domain.CatalogExercise{
		ID:           domain.CustomExercisePrefix + id,
		Name:         "Rosca Martelo",
		Description:  "Variação de rosca com pegada neutra",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleBiceps},
		DefaultSets:  3,
		DefaultReps:  12,
	}
}

// ---------------------------------------------------------------------------
// Custom exercises
// ---------------------------------------------------------------------------

func TestStore_CustomExercise_RoundTrip(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	ex := customExercise("abc")
	if err := store.SaveCustomExercise(ex); err != nil {
		t.Fatalf("SaveCustomExercise: %v", err)
	}

	got, err := store.GetCustomExercise(ex.ID)
	if err != nil {
		t.Fatalf("GetCustomExercise: %v", err)
	}
	if got.Name != ex.Name || got.DefaultReps != 12 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.MuscleGroups) != 1 || got.MuscleGroups[0] != domain.MuscleBiceps {
		t.Fatalf("muscle groups lost: %+v", got.MuscleGroups)
	}
}

func TestStore_GetCustomExercise_NotFound(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	_, err := store.GetCustomExercise("custom_missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListCustomExercises(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	got, err := store.ListCustomExercises()
	if err != nil {
		t.Fatalf("ListCustomExercises on empty store: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}

	for _, id := range []string{"a", "b", "c"} {
		if err := store.SaveCustomExercise(customExercise(id)); err != nil {
			t.Fatalf("SaveCustomExercise %s: %v", id, err)
		}
	}

	got, err = store.ListCustomExercises()
	if err != nil {
		t.Fatalf("ListCustomExercises: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
}

func TestStore_DeleteCustomExercise_IsIdempotent(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	ex := customExercise("del")
	if err := store.SaveCustomExercise(ex); err != nil {
		t.Fatalf("SaveCustomExercise: %v", err)
	}

	if err := store.DeleteCustomExercise(ex.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := store.DeleteCustomExercise(ex.ID); err != nil {
		t.Fatalf("second Delete must be a no-op: %v", err)
	}

	if _, err := store.GetCustomExercise(ex.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Preferences
// ---------------------------------------------------------------------------

func TestStore_Theme(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	theme, err := store.Theme()
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if theme != kv.DefaultTheme {
		t.Fatalf("expected default theme %q, got %q", kv.DefaultTheme, theme)
	}

	if err := store.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	theme, err = store.Theme()
	if err != nil {
		t.Fatalf("Theme after set: %v", err)
	}
	if theme != "dark" {
		t.Fatalf("expected dark, got %q", theme)
	}
}

func TestStore_RestSeconds(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	got, err := store.RestSeconds(60)
	if err != nil {
		t.Fatalf("RestSeconds: %v", err)
	}
	if got != 60 {
		t.Fatalf("expected fallback 60, got %d", got)
	}

	if err := store.SetRestSeconds(90); err != nil {
		t.Fatalf("SetRestSeconds: %v", err)
	}
	got, err = store.RestSeconds(60)
	if err != nil {
		t.Fatalf("RestSeconds after set: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}

	if err := store.SetRestSeconds(0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for non-positive value, got %v", err)
	}
}
