package service

import "errors"

// ErrNoExercises means no category has an exercise performable with the
// configured equipment. The CLI points the user at `snacks setup`.
var ErrNoExercises = errors.New("no exercises match the available equipment")

// ErrInvalidReps rejects negative rep counts. Input layers re-prompt instead
// of coercing; this is the service-level backstop.
var ErrInvalidReps = errors.New("rep count must be non-negative")
