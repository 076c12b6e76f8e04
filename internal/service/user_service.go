package service

import (
	"context"
	"fmt"
	"io"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/storage"
)

type UserService interface {
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
	}
}

// UploadAvatar stores the uploaded file and points the user's avatar at
// it, replacing the gravatar derived at registration. Posts created
// before the upload keep their old snapshot.
func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, user.UserID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.userRepo.UpdateAvatar(ctx, user.UserID, avatarURL); err != nil {
		// The object is unreachable without the row update.
		s.storage.DeleteAvatar(ctx, objectName)
		return nil, err
	}

	user.Avatar = avatarURL
	return user, nil
}
