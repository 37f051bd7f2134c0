package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/service"
	"digiraksha/internal/storage"
)

var mockCtx = mock.Anything

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.RegisterResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RegisterResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, govIDNumber, password string) (*models.User, string, error) {
	args := m.Called(ctx, govIDNumber, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, page repository.Page) ([]models.User, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) UploadPhoto(ctx context.Context, user *models.User, photo *storage.Object) (string, error) {
	args := m.Called(ctx, user, photo)
	return args.String(0), args.Error(1)
}

type MockIncidentService struct {
	mock.Mock
}

func (m *MockIncidentService) Create(ctx context.Context, reporter *models.User, in service.CreateIncidentInput) (*models.Incident, service.MediaOutcome, error) {
	args := m.Called(ctx, reporter, in)
	if args.Get(0) == nil {
		return nil, args.Get(1).(service.MediaOutcome), args.Error(2)
	}
	return args.Get(0).(*models.Incident), args.Get(1).(service.MediaOutcome), args.Error(2)
}

func (m *MockIncidentService) List(ctx context.Context, page repository.Page) ([]models.Incident, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentService) Get(ctx context.Context, incidentID string) (*models.Incident, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Incident), args.Error(1)
}

func (m *MockIncidentService) UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) error {
	args := m.Called(ctx, incidentID, status)
	return args.Error(0)
}

type MockMissingPersonService struct {
	mock.Mock
}

func (m *MockMissingPersonService) Report(ctx context.Context, reporter *models.User, in service.ReportMissingInput) (*models.MissingPerson, service.MediaOutcome, error) {
	args := m.Called(ctx, reporter, in)
	if args.Get(0) == nil {
		return nil, args.Get(1).(service.MediaOutcome), args.Error(2)
	}
	return args.Get(0).(*models.MissingPerson), args.Get(1).(service.MediaOutcome), args.Error(2)
}

func (m *MockMissingPersonService) List(ctx context.Context, filter repository.MissingPersonFilter) ([]models.MissingPerson, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MissingPerson), args.Error(1)
}

func (m *MockMissingPersonService) Get(ctx context.Context, personID string) (*models.MissingPerson, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MissingPerson), args.Error(1)
}

func (m *MockMissingPersonService) UpdateStatus(ctx context.Context, personID string, status models.MissingPersonStatus) error {
	args := m.Called(ctx, personID, status)
	return args.Error(0)
}

type MockCommunityService struct {
	mock.Mock
}

func (m *MockCommunityService) Create(ctx context.Context, author *models.User, in service.CreatePostInput) (*models.CommunityPost, service.MediaOutcome, error) {
	args := m.Called(ctx, author, in)
	if args.Get(0) == nil {
		return nil, args.Get(1).(service.MediaOutcome), args.Error(2)
	}
	return args.Get(0).(*models.CommunityPost), args.Get(1).(service.MediaOutcome), args.Error(2)
}

func (m *MockCommunityService) List(ctx context.Context, category models.PostCategory, page repository.Page) ([]models.CommunityPost, error) {
	args := m.Called(ctx, category, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

func (m *MockCommunityService) Feed(ctx context.Context) ([]models.FeedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

func (m *MockCommunityService) Get(ctx context.Context, postID string) (*models.CommunityPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *MockCommunityService) Delete(ctx context.Context, author *models.User, postID string) error {
	args := m.Called(ctx, author, postID)
	return args.Error(0)
}

type MockSOSService struct {
	mock.Mock
}

func (m *MockSOSService) Create(ctx context.Context, user *models.User, in service.CreateSOSInput) (*models.SOSAlert, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SOSAlert), args.Error(1)
}

func (m *MockSOSService) ListActive(ctx context.Context, page repository.Page) ([]models.SOSAlert, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SOSAlert), args.Error(1)
}

func (m *MockSOSService) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.SOSAlert, error) {
	args := m.Called(ctx, latitude, longitude, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SOSAlert), args.Error(1)
}

func (m *MockSOSService) MarkSafe(ctx context.Context, user *models.User, in service.MarkSafeInput) (*service.MarkSafeResult, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MarkSafeResult), args.Error(1)
}

func (m *MockSOSService) UpdateStatus(ctx context.Context, alertID string, status models.SOSStatus) error {
	args := m.Called(ctx, alertID, status)
	return args.Error(0)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
