package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"digiraksha/internal/apperr"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

var pngHeader = []byte{
	0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x02, 0x00, 0x00, 0x00,
}

func pngObject() *storage.Object {
	return &storage.Object{
		Body:        bytes.NewReader(pngHeader),
		Size:        int64(len(pngHeader)),
		FileName:    "photo.png",
		ContentType: "image/png",
	}
}

func textObject() *storage.Object {
	body := []byte("name,age\nAna,7\n")
	return &storage.Object{
		Body:        bytes.NewReader(body),
		Size:        int64(len(body)),
		FileName:    "notes.csv",
		ContentType: "text/csv",
	}
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, obj storage.Object, bucket, folder string) (string, error) {
	args := m.Called(ctx, obj, bucket, folder)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteFile(ctx context.Context, bucket, objectPath string) error {
	args := m.Called(ctx, bucket, objectPath)
	return args.Error(0)
}

func (m *MockStorage) EnsureBucketsExist(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorage) FileURL(bucket, objectPath string) string {
	args := m.Called(bucket, objectPath)
	return args.String(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByGovID(ctx context.Context, govIDNumber string) (*models.User, error) {
	args := m.Called(ctx, govIDNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByGovID(ctx context.Context, govIDNumber string) (bool, error) {
	args := m.Called(ctx, govIDNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePhoto(ctx context.Context, userID, photoURL string) error {
	args := m.Called(ctx, userID, photoURL)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, page repository.Page) ([]models.User, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.User), args.Error(1)
}

type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *MockIncidentRepository) GetByID(ctx context.Context, incidentID string) (*models.Incident, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) List(ctx context.Context, page repository.Page) ([]models.Incident, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Incident), args.Error(1)
}

func (m *MockIncidentRepository) UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) error {
	args := m.Called(ctx, incidentID, status)
	return args.Error(0)
}

type MockMissingPersonRepository struct {
	mock.Mock
}

func (m *MockMissingPersonRepository) Create(ctx context.Context, person *models.MissingPerson) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockMissingPersonRepository) GetByID(ctx context.Context, personID string) (*models.MissingPerson, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MissingPerson), args.Error(1)
}

func (m *MockMissingPersonRepository) List(ctx context.Context, filter repository.MissingPersonFilter) ([]models.MissingPerson, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.MissingPerson), args.Error(1)
}

func (m *MockMissingPersonRepository) UpdateStatus(ctx context.Context, personID string, status models.MissingPersonStatus) error {
	args := m.Called(ctx, personID, status)
	return args.Error(0)
}

type MockCommunityPostRepository struct {
	mock.Mock
}

func (m *MockCommunityPostRepository) Create(ctx context.Context, post *models.CommunityPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockCommunityPostRepository) GetByID(ctx context.Context, postID string) (*models.CommunityPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityPost), args.Error(1)
}

func (m *MockCommunityPostRepository) List(ctx context.Context, category models.PostCategory, page repository.Page) ([]models.CommunityPost, error) {
	args := m.Called(ctx, category, page)
	return args.Get(0).([]models.CommunityPost), args.Error(1)
}

func (m *MockCommunityPostRepository) DeleteByAuthor(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

// fakeUserRepository is an in-memory user table keyed by government ID.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*models.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.GovIDNumber]; ok {
		return apperr.Conflict("User with this government ID already exists")
	}
	user.ID = "u-" + user.GovIDNumber
	stored := *user
	f.users[user.GovIDNumber] = &stored
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (f *fakeUserRepository) GetByGovID(_ context.Context, govIDNumber string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.users[govIDNumber]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (f *fakeUserRepository) ExistsByGovID(_ context.Context, govIDNumber string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.users[govIDNumber]
	return ok, nil
}

func (f *fakeUserRepository) UpdatePhoto(_ context.Context, userID, photoURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == userID {
			u.PhotoURL = &photoURL
			return nil
		}
	}
	return apperr.NotFound("User not found")
}

func (f *fakeUserRepository) List(_ context.Context, _ repository.Page) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := []models.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

// fakeSOSRepository keeps alerts and safe records in memory and enforces one
// active alert per user like the partial unique index does.
type fakeSOSRepository struct {
	mu     sync.Mutex
	alerts []*models.SOSAlert
	safe   []*models.SafeStatus
	nextID int
}

func (f *fakeSOSRepository) Create(_ context.Context, alert *models.SOSAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.alerts {
		if a.UserID == alert.UserID && a.Status == models.SOSActive {
			return apperr.Conflict("You already have an active SOS alert")
		}
	}
	f.nextID++
	alert.ID = fmt.Sprintf("s-%d", f.nextID)
	stored := *alert
	f.alerts = append(f.alerts, &stored)
	return nil
}

func (f *fakeSOSRepository) HasActive(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.alerts {
		if a.UserID == userID && a.Status == models.SOSActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSOSRepository) ListActive(ctx context.Context, _ repository.Page) ([]models.SOSAlert, error) {
	return f.ListAllActive(ctx)
}

func (f *fakeSOSRepository) ListAllActive(_ context.Context) ([]models.SOSAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	active := []models.SOSAlert{}
	for _, a := range f.alerts {
		if a.Status == models.SOSActive {
			active = append(active, *a)
		}
	}
	return active, nil
}

func (f *fakeSOSRepository) ResolveActive(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, a := range f.alerts {
		if a.UserID == userID && a.Status == models.SOSActive {
			a.Status = models.SOSResolved
			n++
		}
	}
	return n, nil
}

func (f *fakeSOSRepository) UpdateStatus(_ context.Context, alertID string, status models.SOSStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.alerts {
		if a.ID == alertID {
			a.Status = status
			return nil
		}
	}
	return apperr.NotFound("SOS alert not found")
}

func (f *fakeSOSRepository) safeRepo() repository.SafeStatusRepository {
	return safeRecorder{f}
}

type safeRecorder struct {
	f *fakeSOSRepository
}

func (s safeRecorder) Create(_ context.Context, record *models.SafeStatus) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	record.ID = fmt.Sprintf("safe-%d", len(s.f.safe)+1)
	stored := *record
	s.f.safe = append(s.f.safe, &stored)
	return nil
}
