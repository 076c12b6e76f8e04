package service

import (
	"devconnect/internal/config"
	"devconnect/internal/repository"
	"devconnect/internal/storage"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Profile ProfileService
	Post    PostService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, cfg),
		User:    NewUserService(repo.User, storage),
		Profile: NewProfileService(repo.Profile, repo.Post, repo.User),
		Post:    NewPostService(repo.Post, repo.User),
	}
}
