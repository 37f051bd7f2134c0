package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
)

type incidentRepository struct {
	db *sqlx.DB
}

func NewIncidentRepository(db *sqlx.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (id, user_id, incident_type, description, location,
			latitude, longitude, photo_url, status, created_at)
		VALUES (:id, :user_id, :incident_type, :description, :location,
			:latitude, :longitude, :photo_url, :status, :created_at)
	`

	if incident.ID == "" {
		incident.ID = uuid.New().String()
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, incident); err != nil {
		return apperr.Upstream("Failed to create incident report", err)
	}

	return nil
}

func (r *incidentRepository) GetByID(ctx context.Context, incidentID string) (*models.Incident, error) {
	var incident models.Incident

	query := `SELECT * FROM incidents WHERE id = $1`

	err := r.db.GetContext(ctx, &incident, query, incidentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Incident not found")
		}
		return nil, apperr.Upstream("Failed to fetch incident", err)
	}

	return &incident, nil
}

func (r *incidentRepository) List(ctx context.Context, page Page) ([]models.Incident, error) {
	page = page.Normalize()

	query := `SELECT * FROM incidents ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	incidents := []models.Incident{}
	if err := r.db.SelectContext(ctx, &incidents, query, page.Skip, page.Limit); err != nil {
		return nil, apperr.Upstream("Failed to fetch incidents", err)
	}

	return incidents, nil
}

func (r *incidentRepository) UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) error {
	query := `UPDATE incidents SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), incidentID)
	if err != nil {
		return apperr.Upstream("Failed to update incident status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Upstream("Failed to update incident status", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("Incident not found")
	}

	return nil
}
