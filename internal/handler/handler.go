package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"digiraksha/internal/config"
	"digiraksha/internal/service"
)

type Handlers struct {
	AuthService      service.AuthService
	UserService      service.UserService
	IncidentService  service.IncidentService
	MissingService   service.MissingPersonService
	CommunityService service.CommunityService
	SOSService       service.SOSService
	HealthService    service.HealthService
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		UserService:      service.User,
		IncidentService:  service.Incident,
		MissingService:   service.Missing,
		CommunityService: service.Community,
		SOSService:       service.SOS,
		HealthService:    service.Health,
		Cfg:              config,
		Validate:         NewValidator(),
	}
}

// NewValidator reports field errors under their form names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
