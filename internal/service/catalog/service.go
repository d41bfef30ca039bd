// Package catalog implements the exercise catalog: the builtin reference
// list plus user-created custom entries from the key-value side store.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// fallback template values for names that appear in no catalog, matching
// what workout drafts get when typed free-form.
const (
	fallbackSets = 3
	fallbackReps = 10
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type customStore interface {
	SaveCustomExercise(ex domain.CatalogExercise) error
	GetCustomExercise(id string) (*domain.CatalogExercise, error)
	ListCustomExercises() ([]domain.CatalogExercise, error)
	DeleteCustomExercise(id string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service merges the builtin catalog with custom entries.
type Service struct {
	log   *slog.Logger
	store customStore
}

// NewService creates a new catalog service.
func NewService(logger *slog.Logger, store customStore) *Service {
	return &Service{
		log:   logger.With("service", "catalog"),
		store: store,
	}
}

// List returns builtin entries followed by custom entries.
func (s *Service) List(ctx context.Context) ([]domain.CatalogExercise, error) {
	custom, err := s.store.ListCustomExercises()
	if err != nil {
		return nil, fmt.Errorf("list custom exercises: %w", err)
	}
	return append(Builtin(), custom...), nil
}

// Find looks a template up by name (case-insensitive) across builtin and
// custom entries. Unknown names return a fallback template rather than an
// error, so free-form exercise names always yield usable defaults.
func (s *Service) Find(ctx context.Context, name string) (domain.CatalogExercise, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return domain.CatalogExercise{}, err
	}

	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}

	s.log.Debug("exercise not in catalog, using fallback template", slog.String("name", name))
	return domain.CatalogExercise{
		Name:        name,
		DefaultSets: fallbackSets,
		DefaultReps: fallbackReps,
	}, nil
}

// CreateCustomInput carries the user-supplied fields of a custom entry.
type CreateCustomInput struct {
	Name         string
	Description  string
	MuscleGroups []domain.MuscleGroup
	ImageURI     string
	DefaultSets  int
	DefaultReps  int
	Instructions []string
}

// Validate checks the input before any write is attempted.
func (in CreateCustomInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if in.DefaultSets < 0 {
		errs = append(errs, domain.FieldError{Field: "defaultSets", Message: "must not be negative"})
	}
	if in.DefaultReps < 0 {
		errs = append(errs, domain.FieldError{Field: "defaultReps", Message: "must not be negative"})
	}
	for _, m := range in.MuscleGroups {
		if !m.IsValid() {
			errs = append(errs, domain.FieldError{Field: "muscleGroups", Message: fmt.Sprintf("unknown muscle group %q", m)})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCustom stores a new user-created catalog entry under the custom_
// id namespace.
func (s *Service) CreateCustom(ctx context.Context, in CreateCustomInput) (*domain.CatalogExercise, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ex := domain.CatalogExercise{
		ID:           domain.CustomExercisePrefix + uuid.NewString(),
		Name:         in.Name,
		Description:  in.Description,
		MuscleGroups: in.MuscleGroups,
		ImageURI:     in.ImageURI,
		DefaultSets:  in.DefaultSets,
		DefaultReps:  in.DefaultReps,
		Instructions: in.Instructions,
	}
	if ex.DefaultSets == 0 {
		ex.DefaultSets = fallbackSets
	}
	if ex.DefaultReps == 0 {
		ex.DefaultReps = fallbackReps
	}

	if err := s.store.SaveCustomExercise(ex); err != nil {
		return nil, fmt.Errorf("create custom exercise: %w", err)
	}

	s.log.Info("custom exercise created", slog.String("id", ex.ID), slog.String("name", ex.Name))
	return &ex, nil
}

// UpdateCustom replaces an existing custom entry. Builtin entries are
// immutable.
func (s *Service) UpdateCustom(ctx context.Context, ex domain.CatalogExercise) error {
	if !ex.IsCustom() {
		return domain.NewValidationError("id", "builtin catalog entries cannot be modified")
	}

	if _, err := s.store.GetCustomExercise(ex.ID); err != nil {
		return err
	}

	if err := s.store.SaveCustomExercise(ex); err != nil {
		return fmt.Errorf("update custom exercise: %w", err)
	}
	return nil
}

// DeleteCustom removes a custom entry. Builtin entries are not deletable.
func (s *Service) DeleteCustom(ctx context.Context, id string) error {
	if !strings.HasPrefix(id, domain.CustomExercisePrefix) {
		return domain.NewValidationError("id", "builtin catalog entries cannot be deleted")
	}

	if err := s.store.DeleteCustomExercise(id); err != nil {
		return fmt.Errorf("delete custom exercise: %w", err)
	}
	return nil
}
