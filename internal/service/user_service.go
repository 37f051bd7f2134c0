package service

import (
	"context"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

type UserService interface {
	List(ctx context.Context, page repository.Page) ([]models.User, error)
	// UploadPhoto replaces the profile photo of user and returns the new URL.
	UploadPhoto(ctx context.Context, user *models.User, photo *storage.Object) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	media    *MediaUploader
}

func NewUserService(userRepo repository.UserRepository, media *MediaUploader) UserService {
	return &userService{
		userRepo: userRepo,
		media:    media,
	}
}

func (s *userService) List(ctx context.Context, page repository.Page) ([]models.User, error) {
	return s.userRepo.List(ctx, page)
}

func (s *userService) UploadPhoto(ctx context.Context, user *models.User, photo *storage.Object) (string, error) {
	if photo == nil {
		return "", apperr.Validation("Photo is required")
	}
	if err := s.media.Validate(photo); err != nil {
		return "", err
	}

	outcome, err := s.media.Upload(ctx, photo, storage.BucketProfilePhotos, "users/"+storage.FolderSegment(user.GovIDNumber), AbortOnFailure)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdatePhoto(ctx, user.ID, outcome.URL); err != nil {
		s.media.Discard(ctx, storage.BucketProfilePhotos, outcome)
		return "", err
	}
	user.PhotoURL = outcome.URLPtr()

	return outcome.URL, nil
}
