package service

import (
	"digiraksha/internal/auth"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Incident  IncidentService
	Missing   MissingPersonService
	Community CommunityService
	SOS       SOSService
	Health    HealthService
}

func NewService(rep *repository.Repository, tokens *auth.TokenIssuer, store storage.Storage) *Service {
	media := NewMediaUploader(store)

	return &Service{
		Auth:      NewAuthService(rep.User, tokens, media),
		User:      NewUserService(rep.User, media),
		Incident:  NewIncidentService(rep.Incident, media),
		Missing:   NewMissingPersonService(rep.Missing, media),
		Community: NewCommunityService(rep.Community, rep.Incident, media),
		SOS:       NewSOSService(rep.SOS, rep.Safe),
		Health:    NewHealthService(rep.Tables),
	}
}
