package testutil

import (
	"time"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/google/uuid"
)

// Exercise options
type ExerciseOption func(*domain.Exercise)

func WithEquipment(items ...domain.Equipment) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Equipment = domain.NewEquipmentSet(items...)
	}
}

func WithDescription(desc string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Description = desc
	}
}

func NewTestExercise(c domain.Category, name string, level int, opts ...ExerciseOption) domain.Exercise {
	e := domain.Exercise{
		Category: c,
		Name:     name,
		Level:    level,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Session options
type SessionOption func(*domain.WorkoutSession)

func WithTimestamp(ts time.Time) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.Timestamp = ts
	}
}

func WithDuration(minutes int) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.DurationMinutes = minutes
	}
}

func NewTestSession(opts ...SessionOption) *domain.WorkoutSession {
	s := &domain.WorkoutSession{
		ID:              uuid.New().String(),
		Timestamp:       time.Now().UTC(),
		DurationMinutes: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
