package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"devconnect/internal/models"
	"devconnect/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ParseToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.User, error) {
	args := m.Called(ctx, userID, fileName, file, size)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) UpsertProfile(ctx context.Context, userID string, input service.ProfileInput) (*models.Profile, error) {
	args := m.Called(ctx, userID, input)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) AddExperience(ctx context.Context, userID string, input service.ExperienceInput) (*models.Profile, error) {
	args := m.Called(ctx, userID, input)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) DeleteExperience(ctx context.Context, userID, experienceID string) (*models.Profile, error) {
	args := m.Called(ctx, userID, experienceID)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileService) DeleteAccount(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, userID, text string) (*models.Post, error) {
	args := m.Called(ctx, userID, text)
	if post := args.Get(0); post != nil {
		return post.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, userID, postID string) (*models.Post, error) {
	args := m.Called(ctx, userID, postID)
	if post := args.Get(0); post != nil {
		return post.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) LikePost(ctx context.Context, userID, postID string) (models.LikeList, error) {
	args := m.Called(ctx, userID, postID)
	if likes := args.Get(0); likes != nil {
		return likes.(models.LikeList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) UnlikePost(ctx context.Context, userID, postID string) (models.LikeList, error) {
	args := m.Called(ctx, userID, postID)
	if likes := args.Get(0); likes != nil {
		return likes.(models.LikeList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) AddComment(ctx context.Context, userID, postID, text string) (models.CommentList, error) {
	args := m.Called(ctx, userID, postID, text)
	if comments := args.Get(0); comments != nil {
		return comments.(models.CommentList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.CommentList, error) {
	args := m.Called(ctx, userID, postID, commentID)
	if comments := args.Get(0); comments != nil {
		return comments.(models.CommentList), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID, avatar string) error {
	args := m.Called(ctx, userID, avatar)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if profiles := args.Get(0); profiles != nil {
		return profiles.([]models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if post := args.Get(0); post != nil {
		return post.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if posts := args.Get(0); posts != nil {
		return posts.([]models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
