package db

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql shared by *sql.DB and *sql.Tx.
// Repositories take a DBTX so the same code serves standalone reads and
// the transaction that records a workout.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
