package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/domain"
)

// SQLiteExerciseRepo implements ExerciseRepo using a SQLite database.
type SQLiteExerciseRepo struct {
	db db.DBTX
}

// NewSQLiteExerciseRepo creates a new SQLiteExerciseRepo.
func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	query := `SELECT category, name, difficulty_level, equipment_required, description
		FROM exercises ORDER BY category, difficulty_level, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()
	return r.scanExercises(rows)
}

func (r *SQLiteExerciseRepo) ListByCategory(ctx context.Context, c domain.Category) ([]domain.Exercise, error) {
	query := `SELECT category, name, difficulty_level, equipment_required, description
		FROM exercises WHERE category = ? ORDER BY difficulty_level, name`
	rows, err := r.db.QueryContext(ctx, query, string(c))
	if err != nil {
		return nil, fmt.Errorf("listing exercises by category: %w", err)
	}
	defer rows.Close()
	return r.scanExercises(rows)
}

func (r *SQLiteExerciseRepo) MaxLevel(ctx context.Context, c domain.Category) (int, error) {
	query := `SELECT COALESCE(MAX(difficulty_level), 0) FROM exercises WHERE category = ?`
	var max int
	if err := r.db.QueryRowContext(ctx, query, string(c)).Scan(&max); err != nil {
		return 0, fmt.Errorf("querying max level: %w", err)
	}
	return max, nil
}

func (r *SQLiteExerciseRepo) scanExercises(rows *sql.Rows) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		var category, equipment string

		if err := rows.Scan(&category, &e.Name, &e.Level, &equipment, &e.Description); err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		e.Category = domain.Category(category)
		e.Equipment = domain.ParseEquipmentSet(equipment)
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}
