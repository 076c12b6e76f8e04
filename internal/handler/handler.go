package handlers

import (
	"github.com/go-playground/validator/v10"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/repository"
	"devconnect/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	ProfileService service.ProfileService
	PostService    service.PostService
	UserRepo       repository.UserRepository
	ProfileRepo    repository.ProfileRepository
	PostRepo       repository.PostRepository
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		UserService:    service.User,
		ProfileService: service.Profile,
		PostService:    service.Post,
		UserRepo:       repo.User,
		ProfileRepo:    repo.Profile,
		PostRepo:       repo.Post,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
