// Package session owns the lifecycle of one workout-in-progress: a working
// copy of the workout graph, the advisory rest timer and the finish-time
// reconciliation back into the store.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/mytreino-backend/internal/config"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

// State is the session's coarse lifecycle state. Resting is advisory: it
// never blocks set manipulation.
type State string

const (
	StateActive   State = "active"
	StateResting  State = "resting"
	StateFinished State = "finished"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type historyAppender interface {
	Append(ctx context.Context, workout *domain.Workout, completedAt time.Time, duration *int) error
}

type workoutWriter interface {
	UpdateMeta(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error
	DeleteSets(ctx context.Context, workoutID int64) error
	InsertSets(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// Session holds the live working copy of a workout being performed. Mutations
// apply only to the copy; nothing is persisted until Finish. The execution
// model is single foreground session, so Session itself is not safe for
// concurrent use.
type Session struct {
	log      *slog.Logger
	clock    clockwork.Clock
	workouts workoutWriter
	history  historyAppender
	tx       txManager

	working   *domain.Workout
	rest      time.Duration
	timer     *RestTimer
	startedAt time.Time
	finished  bool
}

// New starts a session over a deep copy of workout. restSeconds is the
// effective rest countdown (config default or the stored preference); notify
// fires when the rest timer elapses and may be nil.
func New(
	logger *slog.Logger,
	clock clockwork.Clock,
	workouts workoutWriter,
	history historyAppender,
	tx txManager,
	cfg config.SessionConfig,
	restSeconds int,
	workout *domain.Workout,
	notify func(),
) *Session {
	if restSeconds <= 0 {
		restSeconds = cfg.RestSeconds
	}

	return &Session{
		log:       logger.With("service", "session", slog.Int64("workout_id", workout.ID)),
		clock:     clock,
		workouts:  workouts,
		history:   history,
		tx:        tx,
		working:   workout.Clone(),
		rest:      time.Duration(restSeconds) * time.Second,
		timer:     NewRestTimer(clock, cfg.RestGrace, notify),
		startedAt: clock.Now(),
	}
}

// Workout returns the working copy. Callers render from it; they mutate it
// only through UpdateSet.
func (s *Session) Workout() *domain.Workout {
	return s.working
}

// Timer exposes the rest timer for overlay collaborators (skip button,
// remaining-time display).
func (s *Session) Timer() *RestTimer {
	return s.timer
}

// State reports the coarse lifecycle state.
func (s *Session) State() State {
	switch {
	case s.finished:
		return StateFinished
	case s.timer.Running():
		return StateResting
	default:
		return StateActive
	}
}

// UpdateSet replaces one set, matched by id, within the working copy. When
// the replacement transitions Completed false→true and the workout is not
// thereby complete, the rest timer starts. Completing the final set of the
// final exercise starts no timer: the session is about to finish.
func (s *Session) UpdateSet(exerciseID int64, updated domain.Set) error {
	if s.finished {
		return domain.ErrSessionDone
	}

	ex := s.findExercise(exerciseID)
	if ex == nil {
		return fmt.Errorf("exercise %d: %w", exerciseID, domain.ErrNotFound)
	}

	idx := -1
	for i, set := range ex.Sets {
		if set.ID == updated.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("set %s: %w", updated.ID, domain.ErrNotFound)
	}

	wasCompleted := ex.Sets[idx].Completed
	updated.Number = ex.Sets[idx].Number // position is not editable mid-session
	ex.Sets[idx] = updated

	if !wasCompleted && updated.Completed && !s.IsWorkoutComplete() {
		s.timer.Start(s.rest)
		s.log.Debug("rest timer started",
			slog.Int64("exercise_id", exerciseID),
			slog.Duration("rest", s.rest))
	}
	return nil
}

func (s *Session) findExercise(exerciseID int64) *domain.Exercise {
	for i := range s.working.Exercises {
		if s.working.Exercises[i].ID == exerciseID {
			return &s.working.Exercises[i]
		}
	}
	return nil
}

// IsExerciseComplete reports whether every set of one exercise is completed.
func (s *Session) IsExerciseComplete(exerciseID int64) bool {
	ex := s.findExercise(exerciseID)
	return ex != nil && ex.Completed()
}

// IsWorkoutComplete reports whether every exercise is complete.
func (s *Session) IsWorkoutComplete() bool {
	return s.working.Completed()
}

// Finish ends the session: the working copy is appended to the history log
// and written back over the stored workout, in one transaction, so the
// workout template absorbs the session's final reps and weights while history
// independently keeps the snapshot. Finishing an incomplete workout is
// allowed; confirming that with the user is the caller's concern. Finish is
// terminal and tears the rest timer down.
func (s *Session) Finish(ctx context.Context) error {
	if s.finished {
		return domain.ErrSessionDone
	}

	completedAt := s.clock.Now()
	duration := int(completedAt.Sub(s.startedAt).Seconds())

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.history.Append(ctx, s.working, completedAt, &duration); err != nil {
			return err
		}
		if err := s.workouts.UpdateMeta(ctx, s.working.ID, s.working.Name, s.working.Category, completedAt); err != nil {
			return err
		}
		if err := s.workouts.DeleteSets(ctx, s.working.ID); err != nil {
			return err
		}
		for _, ex := range s.working.Exercises {
			if err := s.workouts.InsertSets(ctx, s.working.ID, ex.ID, ex.Sets); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}

	s.finished = true
	s.timer.Stop()

	s.log.Info("session finished",
		slog.Int("duration_seconds", duration),
		slog.Bool("complete", s.IsWorkoutComplete()))
	return nil
}
