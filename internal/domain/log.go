package domain

import "time"

// WorkoutLog is an immutable record of one completed performance of a workout.
// The exercise graph is a point-in-time snapshot taken at completion: later
// edits to the live workout never alter it. A log stays readable even after
// its source workout has been deleted.
type WorkoutLog struct {
	ID          int64
	WorkoutID   int64
	Name        string // display name frozen at completion time
	CompletedAt time.Time
	Exercises   []Exercise
	Duration    *int // seconds; nil for rows written before duration tracking
}
