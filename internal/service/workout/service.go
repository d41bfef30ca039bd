// Package workout implements the workout lifecycle: validating drafts,
// resolving exercise names to canonical rows and persisting the workout
// graph atomically.
package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exerciseResolver interface {
	Resolve(ctx context.Context, name string, category, imageURI *string) (int64, error)
}

type workoutRepo interface {
	Insert(ctx context.Context, name string, category domain.WorkoutCategory, now time.Time) (int64, error)
	UpdateMeta(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error
	InsertSets(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error
	DeleteSets(ctx context.Context, workoutID int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]domain.Workout, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service orchestrates workout persistence. Every multi-row mutation runs
// inside one transaction, so a failed write never leaves a workout with half
// its sets.
type Service struct {
	log       *slog.Logger
	exercises exerciseResolver
	workouts  workoutRepo
	tx        txManager
	clock     clockwork.Clock
}

// NewService creates a new workout service.
func NewService(logger *slog.Logger, exercises exerciseResolver, workouts workoutRepo, tx txManager, clock clockwork.Clock) *Service {
	return &Service{
		log:       logger.With("service", "workout"),
		exercises: exercises,
		workouts:  workouts,
		tx:        tx,
		clock:     clock,
	}
}

// Save validates a draft and persists it as a new workout: one workouts row,
// a resolved canonical exercise per distinct name, and one sets row per set.
// Returns the stored workout with generated row ids.
func (s *Service) Save(ctx context.Context, in SaveWorkoutInput) (*domain.Workout, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var id int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.workouts.Insert(ctx, in.Name, in.Category, s.clock.Now())
		if err != nil {
			return err
		}
		return s.insertExercises(ctx, id, in.Exercises)
	})
	if err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}

	s.log.Info("workout saved",
		slog.Int64("id", id),
		slog.String("name", in.Name),
		slog.Int("exercises", len(in.Exercises)))

	return s.workouts.GetByID(ctx, id)
}

// Update replaces a workout wholesale: metadata is overwritten and the whole
// set graph is deleted and re-inserted from the draft. Partial patching is
// not supported. Updating a missing id is a no-op and returns nil.
func (s *Service) Update(ctx context.Context, id int64, in SaveWorkoutInput) (*domain.Workout, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.workouts.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn("update of missing workout ignored", slog.Int64("id", id))
			return nil, nil
		}
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.workouts.UpdateMeta(ctx, id, in.Name, in.Category, s.clock.Now()); err != nil {
			return err
		}
		if err := s.workouts.DeleteSets(ctx, id); err != nil {
			return err
		}
		return s.insertExercises(ctx, id, in.Exercises)
	})
	if err != nil {
		return nil, fmt.Errorf("update workout %d: %w", id, err)
	}

	s.log.Info("workout updated", slog.Int64("id", id), slog.String("name", in.Name))
	return s.workouts.GetByID(ctx, id)
}

// insertExercises resolves each draft exercise to its canonical row and
// inserts its sets, preserving draft order.
func (s *Service) insertExercises(ctx context.Context, workoutID int64, exercises []ExerciseInput) error {
	for _, ex := range exercises {
		exerciseID, err := s.exercises.Resolve(ctx, ex.Name, optional(ex.Category), optional(ex.ImageURI))
		if err != nil {
			return err
		}
		if err := s.workouts.InsertSets(ctx, workoutID, exerciseID, ex.toSets()); err != nil {
			return err
		}
	}
	return nil
}

// GetAll returns every workout with its full exercise/set graph.
func (s *Service) GetAll(ctx context.Context) ([]domain.Workout, error) {
	return s.workouts.GetAll(ctx)
}

// GetByID returns one workout with its full graph, or domain.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	return s.workouts.GetByID(ctx, id)
}

// Delete removes a workout and its sets. History log entries survive: their
// snapshots are self-contained. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.workouts.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}

	s.log.Info("workout deleted", slog.Int64("id", id))
	return nil
}
