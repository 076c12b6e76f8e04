package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"devconnect/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatar string) error
	DeleteUser(ctx context.Context, userID string) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type Repository struct {
	User    UserRepository
	Profile ProfileRepository
	Post    PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Profile: NewProfileRepository(db),
		Post:    NewPostRepository(db),
	}
}
