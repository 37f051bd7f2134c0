package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
)

type missingPersonRepository struct {
	db *sqlx.DB
}

func NewMissingPersonRepository(db *sqlx.DB) MissingPersonRepository {
	return &missingPersonRepository{db: db}
}

func (r *missingPersonRepository) Create(ctx context.Context, person *models.MissingPerson) error {
	query := `
		INSERT INTO missing_persons (id, user_id, name, age, last_seen_location, description,
			reporter_contact, photo_url, status, created_at)
		VALUES (:id, :user_id, :name, :age, :last_seen_location, :description,
			:reporter_contact, :photo_url, :status, :created_at)
	`

	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.CreatedAt.IsZero() {
		person.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, person); err != nil {
		return apperr.Upstream("Failed to report missing person", err)
	}

	return nil
}

func (r *missingPersonRepository) GetByID(ctx context.Context, personID string) (*models.MissingPerson, error) {
	var person models.MissingPerson

	query := `SELECT * FROM missing_persons WHERE id = $1`

	err := r.db.GetContext(ctx, &person, query, personID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Missing person report not found")
		}
		return nil, apperr.Upstream("Failed to fetch missing person report", err)
	}

	return &person, nil
}

// List filters by a case-insensitive substring of name and by status when set.
func (r *missingPersonRepository) List(ctx context.Context, filter MissingPersonFilter) ([]models.MissingPerson, error) {
	page := filter.Page.Normalize()

	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, containsPattern(filter.Search))
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT * FROM missing_persons`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	args = append(args, page.Skip, page.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC OFFSET $%d LIMIT $%d`, len(args)-1, len(args))

	persons := []models.MissingPerson{}
	if err := r.db.SelectContext(ctx, &persons, query, args...); err != nil {
		return nil, apperr.Upstream("Failed to fetch missing persons", err)
	}

	return persons, nil
}

func (r *missingPersonRepository) UpdateStatus(ctx context.Context, personID string, status models.MissingPersonStatus) error {
	query := `UPDATE missing_persons SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), personID)
	if err != nil {
		return apperr.Upstream("Failed to update missing person status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Upstream("Failed to update missing person status", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("Missing person report not found")
	}

	return nil
}
