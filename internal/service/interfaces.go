package service

import (
	"context"
	"time"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/repository"
)

// PlannedExercise is one slot of a planned session: the exercise to perform
// plus the progression context shown to the user.
type PlannedExercise struct {
	Exercise domain.Exercise
	Progress domain.CategoryProgress
	MaxLevel int
	// Previous is the next-easier reachable rung, nil at the bottom.
	Previous *domain.Exercise
}

// ExerciseResult is the rep count the user reports for one planned exercise.
type ExerciseResult struct {
	Exercise domain.Exercise
	Reps     int
}

// ProgressionOutcome describes what recording one result did to its category.
type ProgressionOutcome struct {
	Category        domain.Category
	ExerciseName    string
	Reps            int
	NewPersonalBest bool
	Advanced        bool
	NewLevel        int
	NewMaxReps      int
}

// RecordedSession is the committed session plus per-exercise outcomes.
type RecordedSession struct {
	Session  *domain.WorkoutSession
	Outcomes []ProgressionOutcome
}

type WorkoutService interface {
	// PlanSession selects the exercises for a session using the stored
	// equipment profile and progression state.
	PlanSession(ctx context.Context) ([]PlannedExercise, error)
	// RecordSession atomically persists a session, its exercises, and the
	// progression updates they trigger.
	RecordSession(ctx context.Context, results []ExerciseResult, durationMinutes int) (*RecordedSession, error)
}

// CategoryStatus summarizes one category for the progress view.
type CategoryStatus struct {
	Category     domain.Category
	ExerciseName string
	CurrentLevel int
	MaxLevel     int
	MaxReps      int
}

// StatusReport is everything the progress view renders.
type StatusReport struct {
	Categories   []CategoryStatus
	Daily        []repository.DailyCount
	RecentDays   int
	TotalRecent  int
	TotalAllTime int
	// LastWorkout is nil when no session was ever recorded.
	LastWorkout *time.Time
}

type StatusService interface {
	// GetProgress returns a category's stored progression state, or the
	// level-1 baseline when the category was never trained.
	GetProgress(ctx context.Context, c domain.Category) (domain.CategoryProgress, error)
	GetStatus(ctx context.Context, recentDays int) (*StatusReport, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, equipment domain.EquipmentSet, sessionSize int) error
}
