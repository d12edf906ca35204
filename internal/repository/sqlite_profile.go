package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/snacks/internal/db"
	"github.com/alexanderramin/snacks/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, equipment, session_size FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	var equipment string
	err := row.Scan(&p.ID, &equipment, &p.SessionSize)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.Equipment = domain.ParseEquipmentSet(equipment)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT OR REPLACE INTO user_profile (id, equipment, session_size) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Equipment.String(), p.SessionSize)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
