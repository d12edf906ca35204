package repository

import (
	"context"

	"github.com/alexanderramin/snacks/internal/domain"
)

type ExerciseRepo interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	ListByCategory(ctx context.Context, c domain.Category) ([]domain.Exercise, error)
	MaxLevel(ctx context.Context, c domain.Category) (int, error)
}

type ProgressRepo interface {
	Get(ctx context.Context, c domain.Category) (*domain.CategoryProgress, error)
	List(ctx context.Context) ([]domain.CategoryProgress, error)
	Upsert(ctx context.Context, p *domain.CategoryProgress) error
}

// DailyCount is the number of sessions recorded on one calendar day.
type DailyCount struct {
	Day   string // YYYY-MM-DD
	Count int
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkoutSession) error
	AddExercise(ctx context.Context, e *domain.SessionExercise) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error)
	ListExercises(ctx context.Context, sessionID string) ([]domain.SessionExercise, error)
	Latest(ctx context.Context) (*domain.WorkoutSession, error)
	CountByDay(ctx context.Context, days int) ([]DailyCount, error)
	CountAll(ctx context.Context) (int, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
