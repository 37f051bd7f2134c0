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

type communityPostRepository struct {
	db *sqlx.DB
}

func NewCommunityPostRepository(db *sqlx.DB) CommunityPostRepository {
	return &communityPostRepository{db: db}
}

func (r *communityPostRepository) Create(ctx context.Context, post *models.CommunityPost) error {
	query := `
		INSERT INTO community_posts (id, user_id, user_name, category, message, location, image_url, created_at)
		VALUES (:id, :user_id, :user_name, :category, :message, :location, :image_url, :created_at)
	`

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return apperr.Upstream("Failed to create community post", err)
	}

	return nil
}

func (r *communityPostRepository) GetByID(ctx context.Context, postID string) (*models.CommunityPost, error) {
	var post models.CommunityPost

	query := `SELECT * FROM community_posts WHERE id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Community post not found")
		}
		return nil, apperr.Upstream("Failed to fetch community post", err)
	}

	return &post, nil
}

func (r *communityPostRepository) List(ctx context.Context, category models.PostCategory, page Page) ([]models.CommunityPost, error) {
	page = page.Normalize()

	posts := []models.CommunityPost{}
	var err error

	if category != "" {
		query := `SELECT * FROM community_posts WHERE category = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
		err = r.db.SelectContext(ctx, &posts, query, category, page.Skip, page.Limit)
	} else {
		query := `SELECT * FROM community_posts ORDER BY created_at DESC OFFSET $1 LIMIT $2`
		err = r.db.SelectContext(ctx, &posts, query, page.Skip, page.Limit)
	}

	if err != nil {
		return nil, apperr.Upstream("Failed to fetch community posts", err)
	}

	return posts, nil
}

// DeleteByAuthor removes the post only when userID wrote it. A foreign post
// is indistinguishable from a missing one.
func (r *communityPostRepository) DeleteByAuthor(ctx context.Context, postID, userID string) error {
	query := `DELETE FROM community_posts WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return apperr.Upstream("Failed to delete community post", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Upstream("Failed to delete community post", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("Community post not found or you don't have permission to delete it")
	}

	return nil
}
