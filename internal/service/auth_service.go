package service

import (
	"context"
	"strings"

	"digiraksha/internal/apperr"
	"digiraksha/internal/auth"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

const invalidCredentialsMessage = "Invalid credentials"

type RegisterInput struct {
	FirstName   string
	MiddleName  string
	LastName    string
	City        string
	PhoneNumber string
	GovIDType   string
	GovIDNumber string
	Password    string
	Photo       *storage.Object
}

type RegisterResult struct {
	User        *models.User
	AccessToken string
	Photo       MediaOutcome
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, govIDNumber, password string) (*models.User, string, error)
	// Authenticate resolves a bearer token to the stored user.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
	media    *MediaUploader
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenIssuer, media *MediaUploader) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		media:    media,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if err := s.media.Validate(in.Photo); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByGovID(ctx, in.GovIDNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("User with this government ID already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Upstream("Failed to create user", err)
	}

	photo, err := s.media.Upload(ctx, in.Photo, storage.BucketProfilePhotos, "users/"+storage.FolderSegment(in.GovIDNumber), ContinueWithoutMedia)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		City:         in.City,
		PhoneNumber:  in.PhoneNumber,
		GovIDType:    in.GovIDType,
		GovIDNumber:  in.GovIDNumber,
		PasswordHash: hash,
		PhotoURL:     photo.URLPtr(),
	}
	if middle := strings.TrimSpace(in.MiddleName); middle != "" {
		user.MiddleName = &middle
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.media.Discard(ctx, storage.BucketProfilePhotos, photo)
		return nil, err
	}

	token, err := s.tokens.Issue(user.GovIDNumber, 0)
	if err != nil {
		return nil, apperr.Upstream("Failed to create user", err)
	}

	return &RegisterResult{User: user, AccessToken: token, Photo: photo}, nil
}

func (s *authService) Login(ctx context.Context, govIDNumber, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByGovID(ctx, govIDNumber)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, "", apperr.Unauthenticated(invalidCredentialsMessage, nil)
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", apperr.Unauthenticated(invalidCredentialsMessage, nil)
	}

	token, err := s.tokens.Issue(user.GovIDNumber, 0)
	if err != nil {
		return nil, "", apperr.Upstream("Login failed", err)
	}

	return user, token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	govIDNumber, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByGovID(ctx, govIDNumber)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Unauthenticated("Could not validate credentials", nil)
		}
		return nil, err
	}

	return user, nil
}
