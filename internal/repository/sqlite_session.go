package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkoutSession) error {
	// Normalized to UTC so stored stamps stay range-comparable as strings.
	query := `INSERT INTO workout_sessions (id, timestamp, duration_minutes) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Timestamp.UTC().Format(time.RFC3339),
		s.DurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("inserting workout session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) AddExercise(ctx context.Context, e *domain.SessionExercise) error {
	query := `INSERT INTO workout_exercises (session_id, exercise_name, reps_completed) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.SessionID, e.ExerciseName, e.Reps)
	if err != nil {
		return fmt.Errorf("inserting session exercise: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	query := `SELECT id, timestamp, duration_minutes FROM workout_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) ListExercises(ctx context.Context, sessionID string) ([]domain.SessionExercise, error) {
	query := `SELECT session_id, exercise_name, reps_completed
		FROM workout_exercises WHERE session_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing session exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.SessionExercise
	for rows.Next() {
		var e domain.SessionExercise
		if err := rows.Scan(&e.SessionID, &e.ExerciseName, &e.Reps); err != nil {
			return nil, fmt.Errorf("scanning session exercise row: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session exercises: %w", err)
	}
	return exercises, nil
}

func (r *SQLiteSessionRepo) Latest(ctx context.Context) (*domain.WorkoutSession, error) {
	query := `SELECT id, timestamp, duration_minutes FROM workout_sessions
		ORDER BY timestamp DESC LIMIT 1`
	return r.scanSession(r.db.QueryRowContext(ctx, query))
}

// CountByDay buckets sessions by local calendar day over the last days
// days, today included. Timestamps are stored in UTC, so bucketing in SQL
// would split days at the UTC boundary; grouping happens here instead, in
// the same zone the progress view renders.
func (r *SQLiteSessionRepo) CountByDay(ctx context.Context, days int) ([]DailyCount, error) {
	return r.countByDayIn(ctx, days, time.Now(), time.Local)
}

func (r *SQLiteSessionRepo) countByDayIn(ctx context.Context, days int, now time.Time, loc *time.Location) ([]DailyCount, error) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -(days - 1))

	// Stored timestamps are UTC RFC3339, so they compare lexicographically.
	query := `SELECT timestamp FROM workout_sessions WHERE timestamp >= ?`
	rows, err := r.db.QueryContext(ctx, query, start.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("counting sessions by day: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string]int)
	for rows.Next() {
		var stamp string
		if err := rows.Scan(&stamp); err != nil {
			return nil, fmt.Errorf("scanning session timestamp: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		byDay[ts.In(loc).Format("2006-01-02")]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily counts: %w", err)
	}

	counts := make([]DailyCount, 0, len(byDay))
	for day, n := range byDay {
		counts = append(counts, DailyCount{Day: day, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Day > counts[j].Day })
	return counts, nil
}

func (r *SQLiteSessionRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout_sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return count, nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkoutSession, error) {
	var s domain.WorkoutSession
	var timestampStr string

	err := row.Scan(&s.ID, &timestampStr, &s.DurationMinutes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout session: %w", err)
	}

	s.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", err)
	}
	return &s, nil
}
