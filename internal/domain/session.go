package domain

import "time"

// WorkoutSession is one recorded workout. Immutable after creation.
type WorkoutSession struct {
	ID              string
	Timestamp       time.Time
	DurationMinutes int
}

// SessionExercise is one exercise performed within a session.
type SessionExercise struct {
	SessionID    string
	ExerciseName string
	Reps         int
}
