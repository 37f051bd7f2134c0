package service

import (
	"context"

	"digiraksha/internal/apperr"
	"digiraksha/internal/logger"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

type CreateIncidentInput struct {
	Type        models.IncidentType
	Description string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Photo       *storage.Object
}

type IncidentService interface {
	Create(ctx context.Context, reporter *models.User, in CreateIncidentInput) (*models.Incident, MediaOutcome, error)
	List(ctx context.Context, page repository.Page) ([]models.Incident, error)
	Get(ctx context.Context, incidentID string) (*models.Incident, error)
	UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) error
}

type incidentService struct {
	incidentRepo repository.IncidentRepository
	media        *MediaUploader
}

func NewIncidentService(incidentRepo repository.IncidentRepository, media *MediaUploader) IncidentService {
	return &incidentService{
		incidentRepo: incidentRepo,
		media:        media,
	}
}

func (s *incidentService) Create(ctx context.Context, reporter *models.User, in CreateIncidentInput) (*models.Incident, MediaOutcome, error) {
	if !in.Type.Valid() {
		return nil, MediaOutcome{}, apperr.Validationf("Invalid incident type: %s", in.Type)
	}
	if err := s.media.Validate(in.Photo); err != nil {
		return nil, MediaOutcome{}, err
	}

	photo, err := s.media.Upload(ctx, in.Photo, storage.BucketIncidentPhotos, "incidents/"+reporter.ID, AbortOnFailure)
	if err != nil {
		return nil, photo, err
	}

	incident := &models.Incident{
		UserID:      reporter.ID,
		Type:        in.Type,
		Description: in.Description,
		Location:    in.Location,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		PhotoURL:    photo.URLPtr(),
		Status:      models.IncidentReported,
	}

	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		s.media.Discard(ctx, storage.BucketIncidentPhotos, photo)
		return nil, photo, err
	}

	logger.FromContext(ctx).
		WithField("incidentID", incident.ID).
		WithField("type", incident.Type).
		Info("incident reported")

	return incident, photo, nil
}

func (s *incidentService) List(ctx context.Context, page repository.Page) ([]models.Incident, error) {
	return s.incidentRepo.List(ctx, page)
}

func (s *incidentService) Get(ctx context.Context, incidentID string) (*models.Incident, error) {
	return s.incidentRepo.GetByID(ctx, incidentID)
}

func (s *incidentService) UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) error {
	if !status.Valid() {
		return apperr.Validationf("Invalid status: %s", status)
	}
	return s.incidentRepo.UpdateStatus(ctx, incidentID, status)
}
