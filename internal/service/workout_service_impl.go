package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/progression"
	"github.com/alexanderramin/snacks/internal/repository"
	"github.com/google/uuid"
)

type workoutService struct {
	exercises repository.ExerciseRepo
	progress  repository.ProgressRepo
	profiles  repository.ProfileRepo
	uow       db.UnitOfWork
}

func NewWorkoutService(
	exercises repository.ExerciseRepo,
	progress repository.ProgressRepo,
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
) WorkoutService {
	return &workoutService{exercises: exercises, progress: progress, profiles: profiles, uow: uow}
}

func (s *workoutService) PlanSession(ctx context.Context) ([]PlannedExercise, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	catalog, err := s.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	progressByCategory, err := s.progressMap(ctx)
	if err != nil {
		return nil, err
	}

	size := profile.SessionSize
	if size < 1 {
		size = progression.DefaultSessionSize
	}

	selected := progression.SelectExercises(catalog, progressByCategory, profile.Equipment, size)
	if len(selected) == 0 {
		return nil, ErrNoExercises
	}

	planned := make([]PlannedExercise, 0, len(selected))
	for _, ex := range selected {
		p, ok := progressByCategory[ex.Category]
		if !ok {
			p = domain.BaselineProgress(ex.Category)
		}
		planned = append(planned, PlannedExercise{
			Exercise: ex,
			Progress: p,
			MaxLevel: progression.MaxLevel(catalog, ex.Category),
			Previous: progression.PreviousRung(catalog, ex, profile.Equipment),
		})
	}
	return planned, nil
}

func (s *workoutService) RecordSession(ctx context.Context, results []ExerciseResult, durationMinutes int) (*RecordedSession, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("recording session: no exercises performed")
	}
	for _, res := range results {
		if res.Reps < 0 {
			return nil, fmt.Errorf("%q: %w", res.Exercise.Name, ErrInvalidReps)
		}
	}

	session := &domain.WorkoutSession{
		ID:              uuid.New().String(),
		Timestamp:       time.Now().UTC(),
		DurationMinutes: durationMinutes,
	}

	var outcomes []ProgressionOutcome
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txExercises := repository.NewSQLiteExerciseRepo(tx)

		if err := txSessions.Create(ctx, session); err != nil {
			return err
		}

		for _, res := range results {
			if err := txSessions.AddExercise(ctx, &domain.SessionExercise{
				SessionID:    session.ID,
				ExerciseName: res.Exercise.Name,
				Reps:         res.Reps,
			}); err != nil {
				return err
			}

			outcome, err := s.applyProgression(ctx, txProgress, txExercises, res)
			if err != nil {
				return err
			}
			outcomes = append(outcomes, outcome)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording session: %w", err)
	}

	return &RecordedSession{Session: session, Outcomes: outcomes}, nil
}

// applyProgression runs the progression engine for one result and persists
// the category's new state. Must be called within the session transaction.
func (s *workoutService) applyProgression(
	ctx context.Context,
	txProgress repository.ProgressRepo,
	txExercises repository.ExerciseRepo,
	res ExerciseResult,
) (ProgressionOutcome, error) {
	c := res.Exercise.Category

	prior, err := txProgress.Get(ctx, c)
	if err != nil {
		if !repository.IsNotFound(err) {
			return ProgressionOutcome{}, err
		}
		baseline := domain.BaselineProgress(c)
		prior = &baseline
	}

	maxLevel, err := txExercises.MaxLevel(ctx, c)
	if err != nil {
		return ProgressionOutcome{}, err
	}

	newLevel, newMaxReps := progression.NextLevel(prior.Level, prior.MaxReps, res.Reps, maxLevel)
	updated := &domain.CategoryProgress{Category: c, Level: newLevel, MaxReps: newMaxReps}
	if err := txProgress.Upsert(ctx, updated); err != nil {
		return ProgressionOutcome{}, err
	}

	return ProgressionOutcome{
		Category:        c,
		ExerciseName:    res.Exercise.Name,
		Reps:            res.Reps,
		NewPersonalBest: res.Reps > prior.MaxReps,
		Advanced:        newLevel > prior.Level,
		NewLevel:        newLevel,
		NewMaxReps:      newMaxReps,
	}, nil
}

func (s *workoutService) progressMap(ctx context.Context) (map[domain.Category]domain.CategoryProgress, error) {
	all, err := s.progress.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	m := make(map[domain.Category]domain.CategoryProgress, len(all))
	for _, p := range all {
		m[p.Category] = p
	}
	return m, nil
}
