package domain

import (
	"time"
)

// Set is one unit of reps×weight inside an exercise-instance.
//
// ID is a client-generated uuid for drafts and working copies; after a
// round-trip through the store it carries the generated row id. Set ids are
// regenerated by a full-replace update, so callers must not hold on to them
// across updates.
type Set struct {
	ID        string
	Number    int // 1-based position within the exercise, recomputed on read
	Reps      int
	Weight    float64
	Unit      WeightUnit
	Completed bool // significant only inside a live session, never persisted in sets rows
	Notes     string
}

// Exercise is an exercise-instance: a canonical exercise as it appears inside
// one particular workout, with its own set list. ID is the canonical
// exercises-table row id shared by every workout referencing the same name;
// it is 0 until the name has been resolved.
type Exercise struct {
	ID       int64
	Name     string
	Category string
	ImageURI string
	Sets     []Set
}

// Completed reports whether every set of the exercise is completed.
func (e *Exercise) Completed() bool {
	if len(e.Sets) == 0 {
		return false
	}
	for _, s := range e.Sets {
		if !s.Completed {
			return false
		}
	}
	return true
}

// AddSet appends a set and assigns it the next contiguous number.
func (e *Exercise) AddSet(s Set) {
	s.Number = len(e.Sets) + 1
	e.Sets = append(e.Sets, s)
}

// RemoveSet removes the set with the given id and renumbers the remainder
// contiguously from 1. Removing the last remaining set is rejected: every
// exercise-instance must keep at least one set.
func (e *Exercise) RemoveSet(setID string) error {
	idx := -1
	for i, s := range e.Sets {
		if s.ID == setID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	if len(e.Sets) == 1 {
		return NewValidationError("sets", "an exercise must keep at least one set")
	}

	e.Sets = append(e.Sets[:idx], e.Sets[idx+1:]...)
	for i := range e.Sets {
		e.Sets[i].Number = i + 1
	}
	return nil
}

// Workout is the aggregate root: a named, user-authored template of
// exercise-instances and their target sets.
type Workout struct {
	ID        int64
	Name      string
	Category  WorkoutCategory
	Exercises []Exercise
	CreatedAt time.Time
	UpdatedAt time.Time

	// LastTrained is derived from the most recent history log entry for this
	// workout; nil when the workout has never been completed.
	LastTrained *time.Time
}

// Completed reports whether every exercise of the workout is completed.
func (w *Workout) Completed() bool {
	if len(w.Exercises) == 0 {
		return false
	}
	for i := range w.Exercises {
		if !w.Exercises[i].Completed() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the workout. Sessions mutate clones so the
// caller's graph stays untouched until Finish, and history snapshots are
// decoupled from later edits.
func (w *Workout) Clone() *Workout {
	c := *w
	c.Exercises = CloneExercises(w.Exercises)
	if w.LastTrained != nil {
		t := *w.LastTrained
		c.LastTrained = &t
	}
	return &c
}

// CloneExercises deep-copies a slice of exercise-instances.
func CloneExercises(exercises []Exercise) []Exercise {
	if exercises == nil {
		return nil
	}
	out := make([]Exercise, len(exercises))
	for i, e := range exercises {
		out[i] = e
		out[i].Sets = make([]Set, len(e.Sets))
		copy(out[i].Sets, e.Sets)
	}
	return out
}
