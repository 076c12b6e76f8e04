package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// In-memory repository fakes. The sub-collection behavior under test
// lives in the services, so the fakes only store and return documents.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User, password string) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.UserID = uuid.New().String()
	user.PasswordHash = password
	copied := *user
	f.users[user.UserID] = &copied
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.PasswordHash != password {
		return nil, repository.ErrInvalidPassword
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateAvatar(_ context.Context, userID, avatar string) error {
	user, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	user.Avatar = avatar
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, userID)
	return nil
}

type fakePostRepo struct {
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.PostID = uuid.New().String()
	if post.Likes == nil {
		post.Likes = models.LikeList{}
	}
	if post.Comments == nil {
		post.Comments = models.CommentList{}
	}
	copied := *post
	f.posts[post.PostID] = &copied
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, postID string) (*models.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) GetAll(_ context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(f.posts))
	for _, post := range f.posts {
		posts = append(posts, *post)
	}
	return posts, nil
}

func (f *fakePostRepo) Update(_ context.Context, post *models.Post) error {
	if _, ok := f.posts[post.PostID]; !ok {
		return repository.ErrNotFound
	}
	copied := *post
	f.posts[post.PostID] = &copied
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, postID string) error {
	if _, ok := f.posts[postID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, postID)
	return nil
}

func (f *fakePostRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, post := range f.posts {
		if post.UserID == userID {
			delete(f.posts, id)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	profile.ProfileID = uuid.New().String()
	copied := *profile
	f.profiles[profile.UserID] = &copied
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) GetAll(_ context.Context) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(f.profiles))
	for _, profile := range f.profiles {
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *models.Profile) error {
	if _, ok := f.profiles[profile.UserID]; !ok {
		return repository.ErrNotFound
	}
	copied := *profile
	f.profiles[profile.UserID] = &copied
	return nil
}

func (f *fakeProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(f.profiles, userID)
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) UploadAvatar(_ context.Context, userID, fileName string, file io.Reader, _ int64) (string, string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", err
	}
	objectName := "avatars/" + userID + "/" + fileName
	f.objects[objectName] = data
	return objectName, "http://localhost:9000/avatars/" + objectName, nil
}

func (f *fakeStorage) DeleteAvatar(_ context.Context, objectName string) error {
	delete(f.objects, objectName)
	return nil
}
