package service

import (
	"context"
	"sort"
	"strings"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

const (
	feedSourceLimit = 25

	feedIncidentUserName = "Emergency Report"
	feedIncidentCategory = "Alert"
)

type CreatePostInput struct {
	Category models.PostCategory
	Message  string
	Location string
	Photo    *storage.Object
}

type CommunityService interface {
	Create(ctx context.Context, author *models.User, in CreatePostInput) (*models.CommunityPost, MediaOutcome, error)
	List(ctx context.Context, category models.PostCategory, page repository.Page) ([]models.CommunityPost, error)
	// Feed merges the newest posts and incidents, newest first.
	Feed(ctx context.Context) ([]models.FeedItem, error)
	Get(ctx context.Context, postID string) (*models.CommunityPost, error)
	Delete(ctx context.Context, author *models.User, postID string) error
}

type communityService struct {
	postRepo     repository.CommunityPostRepository
	incidentRepo repository.IncidentRepository
	media        *MediaUploader
}

func NewCommunityService(postRepo repository.CommunityPostRepository, incidentRepo repository.IncidentRepository, media *MediaUploader) CommunityService {
	return &communityService{
		postRepo:     postRepo,
		incidentRepo: incidentRepo,
		media:        media,
	}
}

func (s *communityService) Create(ctx context.Context, author *models.User, in CreatePostInput) (*models.CommunityPost, MediaOutcome, error) {
	if !in.Category.Valid() {
		return nil, MediaOutcome{}, apperr.Validationf("Invalid category: %s", in.Category)
	}
	if err := s.media.Validate(in.Photo); err != nil {
		return nil, MediaOutcome{}, err
	}

	photo, err := s.media.Upload(ctx, in.Photo, storage.BucketCommunityPhoto, "posts/"+author.ID, AbortOnFailure)
	if err != nil {
		return nil, photo, err
	}

	post := &models.CommunityPost{
		UserID:   author.ID,
		UserName: author.FullName(),
		Category: in.Category,
		Message:  in.Message,
		ImageURL: photo.URLPtr(),
	}
	if location := strings.TrimSpace(in.Location); location != "" {
		post.Location = &location
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.media.Discard(ctx, storage.BucketCommunityPhoto, photo)
		return nil, photo, err
	}

	return post, photo, nil
}

func (s *communityService) List(ctx context.Context, category models.PostCategory, page repository.Page) ([]models.CommunityPost, error) {
	if category != "" && !category.Valid() {
		return nil, apperr.Validationf("Invalid category: %s", category)
	}
	return s.postRepo.List(ctx, category, page)
}

func (s *communityService) Feed(ctx context.Context) ([]models.FeedItem, error) {
	page := repository.Page{Limit: feedSourceLimit}

	posts, err := s.postRepo.List(ctx, "", page)
	if err != nil {
		return nil, err
	}

	incidents, err := s.incidentRepo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	return mergeFeed(posts, incidents), nil
}

func (s *communityService) Get(ctx context.Context, postID string) (*models.CommunityPost, error) {
	return s.postRepo.GetByID(ctx, postID)
}

func (s *communityService) Delete(ctx context.Context, author *models.User, postID string) error {
	return s.postRepo.DeleteByAuthor(ctx, postID, author.ID)
}

func mergeFeed(posts []models.CommunityPost, incidents []models.Incident) []models.FeedItem {
	feed := make([]models.FeedItem, 0, len(posts)+len(incidents))

	for _, p := range posts {
		feed = append(feed, models.FeedItem{
			ID:        p.ID,
			UserID:    p.UserID,
			UserName:  p.UserName,
			Category:  string(p.Category),
			Message:   p.Message,
			Location:  p.Location,
			ImageURL:  p.ImageURL,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			PostType:  models.PostTypeCommunity,
		})
	}

	for _, inc := range incidents {
		location := inc.Location
		feed = append(feed, models.FeedItem{
			ID:           "incident_" + inc.ID,
			UserName:     feedIncidentUserName,
			Category:     feedIncidentCategory,
			Message:      "🚨 " + string(inc.Type) + ": " + inc.Description,
			Location:     &location,
			ImageURL:     inc.PhotoURL,
			CreatedAt:    inc.CreatedAt,
			PostType:     models.PostTypeIncident,
			IncidentType: string(inc.Type),
			Status:       string(inc.Status),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	return feed
}
