package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
)

const activeSOSMessage = "You already have an active SOS alert"

type sosRepository struct {
	db *sqlx.DB
}

func NewSOSRepository(db *sqlx.DB) SOSRepository {
	return &sosRepository{db: db}
}

func (r *sosRepository) Create(ctx context.Context, alert *models.SOSAlert) error {
	query := `
		INSERT INTO sos_alerts (id, user_id, user_name, latitude, longitude,
			location_description, emergency_type, status, created_at)
		VALUES (:id, :user_id, :user_name, :latitude, :longitude,
			:location_description, :emergency_type, :status, :created_at)
	`

	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, alert); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(activeSOSMessage)
		}
		return apperr.Upstream("Failed to create SOS alert", err)
	}

	return nil
}

func (r *sosRepository) HasActive(ctx context.Context, userID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM sos_alerts WHERE user_id = $1 AND status = 'active')`

	if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, apperr.Upstream("Failed to check SOS alerts", err)
	}

	return exists, nil
}

func (r *sosRepository) ListActive(ctx context.Context, page Page) ([]models.SOSAlert, error) {
	page = page.Normalize()

	query := `SELECT * FROM sos_alerts WHERE status = 'active' ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	alerts := []models.SOSAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query, page.Skip, page.Limit); err != nil {
		return nil, apperr.Upstream("Failed to fetch SOS alerts", err)
	}

	return alerts, nil
}

// ListAllActive returns every active alert without pagination.
func (r *sosRepository) ListAllActive(ctx context.Context) ([]models.SOSAlert, error) {
	query := `SELECT * FROM sos_alerts WHERE status = 'active' ORDER BY created_at DESC`

	alerts := []models.SOSAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query); err != nil {
		return nil, apperr.Upstream("Failed to fetch SOS alerts", err)
	}

	return alerts, nil
}

func (r *sosRepository) ResolveActive(ctx context.Context, userID string) (int64, error) {
	query := `UPDATE sos_alerts SET status = 'resolved', updated_at = $1 WHERE user_id = $2 AND status = 'active'`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		return 0, apperr.Upstream("Failed to resolve SOS alerts", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperr.Upstream("Failed to resolve SOS alerts", err)
	}

	return rowsAffected, nil
}

func (r *sosRepository) UpdateStatus(ctx context.Context, alertID string, status models.SOSStatus) error {
	query := `UPDATE sos_alerts SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), alertID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("This user already has another active SOS alert")
		}
		return apperr.Upstream("Failed to update SOS alert status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Upstream("Failed to update SOS alert status", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("SOS alert not found")
	}

	return nil
}

type safeStatusRepository struct {
	db *sqlx.DB
}

func NewSafeStatusRepository(db *sqlx.DB) SafeStatusRepository {
	return &safeStatusRepository{db: db}
}

func (r *safeStatusRepository) Create(ctx context.Context, record *models.SafeStatus) error {
	query := `
		INSERT INTO safe_status (id, user_id, user_name, latitude, longitude, message, created_at)
		VALUES (:id, :user_id, :user_name, :latitude, :longitude, :message, :created_at)
	`

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return apperr.Upstream("Failed to mark as safe", err)
	}

	return nil
}
