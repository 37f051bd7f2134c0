package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"digiraksha/internal/apperr"
)

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

// CountTablesDB counts the tables of the public schema; it doubles as the
// database liveness probe for /health.
func (r *tablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)
	if err != nil {
		return 0, apperr.Upstream("Database is unavailable", err)
	}

	return count, nil
}
