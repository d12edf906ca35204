package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// One row per category; absence of a row means the category is untrained.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, c domain.Category) (*domain.CategoryProgress, error) {
	query := `SELECT category, current_level, max_reps_achieved
		FROM exercise_progress WHERE category = ?`
	row := r.db.QueryRowContext(ctx, query, string(c))

	var p domain.CategoryProgress
	var category string
	err := row.Scan(&category, &p.Level, &p.MaxReps)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("progress for %s: %w", c, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress: %w", err)
	}
	p.Category = domain.Category(category)
	return &p, nil
}

func (r *SQLiteProgressRepo) List(ctx context.Context) ([]domain.CategoryProgress, error) {
	query := `SELECT category, current_level, max_reps_achieved
		FROM exercise_progress ORDER BY category`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing progress: %w", err)
	}
	defer rows.Close()

	var all []domain.CategoryProgress
	for rows.Next() {
		var p domain.CategoryProgress
		var category string
		if err := rows.Scan(&category, &p.Level, &p.MaxReps); err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}
		p.Category = domain.Category(category)
		all = append(all, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress: %w", err)
	}
	return all, nil
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.CategoryProgress) error {
	query := `INSERT OR REPLACE INTO exercise_progress (category, current_level, max_reps_achieved)
		VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, string(p.Category), p.Level, p.MaxReps)
	if err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}
	return nil
}
