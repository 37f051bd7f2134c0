package service

import (
	"context"
	"math"
	"strings"

	"digiraksha/internal/apperr"
	"digiraksha/internal/logger"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
)

const (
	DefaultEmergencyType = "general"
	DefaultSafeMessage   = "User marked as safe"
	DefaultRadiusKm      = 10.0

	// kmPerDegree is the rough length of one degree used by the nearby search.
	kmPerDegree = 111.0
)

type CreateSOSInput struct {
	Latitude            float64
	Longitude           float64
	LocationDescription string
	EmergencyType       string
}

type MarkSafeInput struct {
	Latitude  float64
	Longitude float64
	Message   string
}

type MarkSafeResult struct {
	ResolvedAlerts int64
	Record         *models.SafeStatus
}

type SOSService interface {
	Create(ctx context.Context, user *models.User, in CreateSOSInput) (*models.SOSAlert, error)
	ListActive(ctx context.Context, page repository.Page) ([]models.SOSAlert, error)
	// Nearby returns active alerts inside a square of radiusKm around the point.
	Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.SOSAlert, error)
	// MarkSafe resolves every active alert of user and records a safe status.
	MarkSafe(ctx context.Context, user *models.User, in MarkSafeInput) (*MarkSafeResult, error)
	UpdateStatus(ctx context.Context, alertID string, status models.SOSStatus) error
}

type sosService struct {
	sosRepo  repository.SOSRepository
	safeRepo repository.SafeStatusRepository
}

func NewSOSService(sosRepo repository.SOSRepository, safeRepo repository.SafeStatusRepository) SOSService {
	return &sosService{
		sosRepo:  sosRepo,
		safeRepo: safeRepo,
	}
}

func (s *sosService) Create(ctx context.Context, user *models.User, in CreateSOSInput) (*models.SOSAlert, error) {
	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	active, err := s.sosRepo.HasActive(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperr.Conflict("You already have an active SOS alert")
	}

	emergencyType := strings.TrimSpace(in.EmergencyType)
	if emergencyType == "" {
		emergencyType = DefaultEmergencyType
	}

	alert := &models.SOSAlert{
		UserID:        user.ID,
		UserName:      user.FullName(),
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		EmergencyType: &emergencyType,
		Status:        models.SOSActive,
	}
	if desc := strings.TrimSpace(in.LocationDescription); desc != "" {
		alert.LocationDescription = &desc
	}

	if err := s.sosRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).
		WithField("alertID", alert.ID).
		WithField("emergencyType", emergencyType).
		Info("SOS alert raised")

	return alert, nil
}

func (s *sosService) ListActive(ctx context.Context, page repository.Page) ([]models.SOSAlert, error) {
	return s.sosRepo.ListActive(ctx, page)
}

func (s *sosService) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.SOSAlert, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	alerts, err := s.sosRepo.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}

	return filterNearby(alerts, latitude, longitude, radiusKm), nil
}

func (s *sosService) MarkSafe(ctx context.Context, user *models.User, in MarkSafeInput) (*MarkSafeResult, error) {
	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return nil, err
	}

	resolved, err := s.sosRepo.ResolveActive(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		message = DefaultSafeMessage
	}

	record := &models.SafeStatus{
		UserID:    user.ID,
		UserName:  user.FullName(),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Message:   message,
	}

	if err := s.safeRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &MarkSafeResult{ResolvedAlerts: resolved, Record: record}, nil
}

func (s *sosService) UpdateStatus(ctx context.Context, alertID string, status models.SOSStatus) error {
	if !status.Valid() {
		return apperr.Validationf("Invalid status: %s", status)
	}
	return s.sosRepo.UpdateStatus(ctx, alertID, status)
}

// withinBox is a flat bounding-box test, not a geodesic distance: both the
// latitude and longitude offsets must be within radiusKm/111 degrees.
func withinBox(alert models.SOSAlert, latitude, longitude, radiusKm float64) bool {
	limit := radiusKm / kmPerDegree
	return math.Abs(alert.Latitude-latitude) <= limit && math.Abs(alert.Longitude-longitude) <= limit
}

func filterNearby(alerts []models.SOSAlert, latitude, longitude, radiusKm float64) []models.SOSAlert {
	nearby := []models.SOSAlert{}
	for _, alert := range alerts {
		if withinBox(alert, latitude, longitude, radiusKm) {
			nearby = append(nearby, alert)
		}
	}
	return nearby
}

func validateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return apperr.Validation("Latitude must be between -90 and 90")
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return apperr.Validation("Longitude must be between -180 and 180")
	}
	return nil
}
