package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"digiraksha/internal/models"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Page is skip/limit pagination as accepted by the listing endpoints.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps skip to >= 0 and limit to 1..MaxLimit (DefaultLimit when unset).
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

type MissingPersonFilter struct {
	Page   Page
	Search string
	Status models.MissingPersonStatus
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByGovID(ctx context.Context, govIDNumber string) (*models.User, error)
	ExistsByGovID(ctx context.Context, govIDNumber string) (bool, error)
	UpdatePhoto(ctx context.Context, userID, photoURL string) error
	List(ctx context.Context, page Page) ([]models.User, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, incidentID string) (*models.Incident, error)
	List(ctx context.Context, page Page) ([]models.Incident, error)
	UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) error
}

type MissingPersonRepository interface {
	Create(ctx context.Context, person *models.MissingPerson) error
	GetByID(ctx context.Context, personID string) (*models.MissingPerson, error)
	List(ctx context.Context, filter MissingPersonFilter) ([]models.MissingPerson, error)
	UpdateStatus(ctx context.Context, personID string, status models.MissingPersonStatus) error
}

type CommunityPostRepository interface {
	Create(ctx context.Context, post *models.CommunityPost) error
	GetByID(ctx context.Context, postID string) (*models.CommunityPost, error)
	List(ctx context.Context, category models.PostCategory, page Page) ([]models.CommunityPost, error)
	DeleteByAuthor(ctx context.Context, postID, userID string) error
}

type SOSRepository interface {
	Create(ctx context.Context, alert *models.SOSAlert) error
	HasActive(ctx context.Context, userID string) (bool, error)
	ListActive(ctx context.Context, page Page) ([]models.SOSAlert, error)
	ListAllActive(ctx context.Context) ([]models.SOSAlert, error)
	ResolveActive(ctx context.Context, userID string) (int64, error)
	UpdateStatus(ctx context.Context, alertID string, status models.SOSStatus) error
}

type SafeStatusRepository interface {
	Create(ctx context.Context, record *models.SafeStatus) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User      UserRepository
	Incident  IncidentRepository
	Missing   MissingPersonRepository
	Community CommunityPostRepository
	SOS       SOSRepository
	Safe      SafeStatusRepository
	Tables    TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:      NewUserRepository(db),
		Incident:  NewIncidentRepository(db),
		Missing:   NewMissingPersonRepository(db),
		Community: NewCommunityPostRepository(db),
		SOS:       NewSOSRepository(db),
		Safe:      NewSafeStatusRepository(db),
		Tables:    NewTablesRepository(db),
	}
}

// isUniqueViolation reports a Postgres unique_violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
