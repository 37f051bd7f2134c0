package service

import (
	"context"
	"strings"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

type ReportMissingInput struct {
	Name             string
	Age              int
	LastSeenLocation string
	Description      string
	ReporterContact  string
	Photo            *storage.Object
}

type MissingPersonService interface {
	Report(ctx context.Context, reporter *models.User, in ReportMissingInput) (*models.MissingPerson, MediaOutcome, error)
	List(ctx context.Context, filter repository.MissingPersonFilter) ([]models.MissingPerson, error)
	Get(ctx context.Context, personID string) (*models.MissingPerson, error)
	UpdateStatus(ctx context.Context, personID string, status models.MissingPersonStatus) error
}

type missingPersonService struct {
	missingRepo repository.MissingPersonRepository
	media       *MediaUploader
}

func NewMissingPersonService(missingRepo repository.MissingPersonRepository, media *MediaUploader) MissingPersonService {
	return &missingPersonService{
		missingRepo: missingRepo,
		media:       media,
	}
}

func (s *missingPersonService) Report(ctx context.Context, reporter *models.User, in ReportMissingInput) (*models.MissingPerson, MediaOutcome, error) {
	if in.Age < 0 {
		return nil, MediaOutcome{}, apperr.Validation("Age must not be negative")
	}
	if err := s.media.Validate(in.Photo); err != nil {
		return nil, MediaOutcome{}, err
	}

	photo, err := s.media.Upload(ctx, in.Photo, storage.BucketMissingPhotos, "missing/"+reporter.ID, AbortOnFailure)
	if err != nil {
		return nil, photo, err
	}

	person := &models.MissingPerson{
		UserID:           reporter.ID,
		Name:             in.Name,
		Age:              in.Age,
		LastSeenLocation: in.LastSeenLocation,
		Description:      in.Description,
		ReporterContact:  in.ReporterContact,
		PhotoURL:         photo.URLPtr(),
		Status:           models.MissingPersonMissing,
	}

	if err := s.missingRepo.Create(ctx, person); err != nil {
		s.media.Discard(ctx, storage.BucketMissingPhotos, photo)
		return nil, photo, err
	}

	return person, photo, nil
}

func (s *missingPersonService) List(ctx context.Context, filter repository.MissingPersonFilter) ([]models.MissingPerson, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperr.Validationf("Invalid status: %s", filter.Status)
	}
	return s.missingRepo.List(ctx, filter)
}

func (s *missingPersonService) Get(ctx context.Context, personID string) (*models.MissingPerson, error) {
	return s.missingRepo.GetByID(ctx, personID)
}

func (s *missingPersonService) UpdateStatus(ctx context.Context, personID string, status models.MissingPersonStatus) error {
	if !status.Valid() {
		return apperr.Validationf("Invalid status: %s", status)
	}
	return s.missingRepo.UpdateStatus(ctx, personID, status)
}
