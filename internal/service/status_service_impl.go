package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/repository"
)

type statusService struct {
	exercises repository.ExerciseRepo
	progress  repository.ProgressRepo
	sessions  repository.SessionRepo
}

func NewStatusService(
	exercises repository.ExerciseRepo,
	progress repository.ProgressRepo,
	sessions repository.SessionRepo,
) StatusService {
	return &statusService{exercises: exercises, progress: progress, sessions: sessions}
}

func (s *statusService) GetProgress(ctx context.Context, c domain.Category) (domain.CategoryProgress, error) {
	p, err := s.progress.Get(ctx, c)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.BaselineProgress(c), nil
		}
		return domain.CategoryProgress{}, err
	}
	return *p, nil
}

func (s *statusService) GetStatus(ctx context.Context, recentDays int) (*StatusReport, error) {
	report := &StatusReport{RecentDays: recentDays}

	for _, c := range domain.Categories {
		ladder, err := s.exercises.ListByCategory(ctx, c)
		if err != nil {
			return nil, err
		}
		if len(ladder) == 0 {
			continue
		}

		p, err := s.GetProgress(ctx, c)
		if err != nil {
			return nil, err
		}

		report.Categories = append(report.Categories, CategoryStatus{
			Category:     c,
			ExerciseName: exerciseAtLevel(ladder, p.Level).Name,
			CurrentLevel: p.Level,
			MaxLevel:     ladder[len(ladder)-1].Level,
			MaxReps:      p.MaxReps,
		})
	}

	daily, err := s.sessions.CountByDay(ctx, recentDays)
	if err != nil {
		return nil, err
	}
	report.Daily = daily
	for _, d := range daily {
		report.TotalRecent += d.Count
	}

	total, err := s.sessions.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	report.TotalAllTime = total

	last, err := s.sessions.Latest(ctx)
	switch {
	case err == nil:
		report.LastWorkout = &last.Timestamp
	case repository.IsNotFound(err):
		// Never worked out; leave nil.
	default:
		return nil, fmt.Errorf("loading last workout: %w", err)
	}

	return report, nil
}

// exerciseAtLevel returns the ladder entry at the given level, or the
// hardest entry below it when the exact level has no row. The ladder is
// ordered by level and non-empty.
func exerciseAtLevel(ladder []domain.Exercise, level int) domain.Exercise {
	best := ladder[0]
	for _, ex := range ladder {
		if ex.Level == level {
			return ex
		}
		if ex.Level < level && ex.Level > best.Level {
			best = ex
		}
	}
	return best
}
