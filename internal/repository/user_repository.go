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

const duplicateGovIDMessage = "User with this government ID already exists"

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, first_name, middle_name, last_name, city, phone_number,
			gov_id_type, gov_id_number, password_hash, photo_url, created_at)
		VALUES (:id, :first_name, :middle_name, :last_name, :city, :phone_number,
			:gov_id_type, :gov_id_number, :password_hash, :photo_url, :created_at)
	`

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(duplicateGovIDMessage)
		}
		return apperr.Upstream("Failed to create user", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Upstream("Failed to fetch user", err)
	}

	return &user, nil
}

func (r *userRepository) GetByGovID(ctx context.Context, govIDNumber string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE gov_id_number = $1`

	err := r.db.GetContext(ctx, &user, query, govIDNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Upstream("Failed to fetch user", err)
	}

	return &user, nil
}

func (r *userRepository) ExistsByGovID(ctx context.Context, govIDNumber string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE gov_id_number = $1)`

	if err := r.db.GetContext(ctx, &exists, query, govIDNumber); err != nil {
		return false, apperr.Upstream("Failed to check user", err)
	}

	return exists, nil
}

func (r *userRepository) UpdatePhoto(ctx context.Context, userID, photoURL string) error {
	query := `UPDATE users SET photo_url = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, photoURL, time.Now().UTC(), userID)
	if err != nil {
		return apperr.Upstream("Failed to update user photo", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Upstream("Failed to update user photo", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("User not found")
	}

	return nil
}

func (r *userRepository) List(ctx context.Context, page Page) ([]models.User, error) {
	page = page.Normalize()

	query := `SELECT * FROM users ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, page.Skip, page.Limit); err != nil {
		return nil, apperr.Upstream("Failed to fetch users", err)
	}

	return users, nil
}
