package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{

	`CREATE TABLE IF NOT EXISTS exercises (
		category           TEXT NOT NULL
		                   CHECK(category IN ('pushups','squats','pullups','core','dips','cardio','yoga','stretches')),
		name               TEXT NOT NULL,
		difficulty_level   INTEGER NOT NULL CHECK(difficulty_level >= 1),
		equipment_required TEXT NOT NULL DEFAULT '',
		description        TEXT NOT NULL DEFAULT '',
		UNIQUE(category, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercises_category_level ON exercises(category, difficulty_level)`,

	`CREATE TABLE IF NOT EXISTS exercise_progress (
		category          TEXT PRIMARY KEY
		                  CHECK(category IN ('pushups','squats','pullups','core','dips','cardio','yoga','stretches')),
		current_level     INTEGER NOT NULL DEFAULT 1 CHECK(current_level >= 1),
		max_reps_achieved INTEGER NOT NULL DEFAULT 0 CHECK(max_reps_achieved >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id               TEXT PRIMARY KEY,
		timestamp        TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 3
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON workout_sessions(timestamp)`,

	`CREATE TABLE IF NOT EXISTS workout_exercises (
		session_id     TEXT NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
		exercise_name  TEXT NOT NULL,
		reps_completed INTEGER NOT NULL CHECK(reps_completed >= 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_session ON workout_exercises(session_id)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id           TEXT PRIMARY KEY DEFAULT 'default',
		equipment    TEXT NOT NULL DEFAULT '',
		session_size INTEGER NOT NULL DEFAULT 4 CHECK(session_size >= 1)
	)`,

	// Seed default user profile
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,
}
